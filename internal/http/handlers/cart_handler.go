package handlers

import (
	"github.com/gofiber/fiber/v2"

	"vitrine/internal/cart"
	"vitrine/internal/catalog"
	"vitrine/internal/kv"
	applog "vitrine/internal/log"
	"vitrine/internal/validate"
	"vitrine/internal/variant"
)

type CartHandler struct {
	Catalog *catalog.Client
	KV      kv.Store
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	data, handled, err := tenantData(c, h.Catalog)
	if handled {
		return err
	}

	cv := sessionCarts(c, h.KV).Load(c.UserContext(), data.Config.CompanyID)
	shipping := data.Config.ShippingPrice

	return render(c, "cart", fiber.Map{
		"Config":    data.Config,
		"Slug":      data.Config.Slug,
		"Cart":      cv,
		"Shipping":  shipping,
		"Total":     cv.Subtotal.Add(shipping),
		"CartCount": cv.ItemCount,
	})
}

// Add puts a product (and optional variant) in the cart. Price, name and
// stock cap come from the catalog API, never from the form.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	data, handled, err := tenantData(c, h.Catalog)
	if handled {
		return err
	}

	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	variantID := c.FormValue("variantId")
	qty := validate.Qty(c.FormValue("qty"))

	p, err := h.Catalog.Product(c.UserContext(), data.Config.Slug, productID)
	if err != nil {
		applog.Error(c, "cart.add.fetch", err, map[string]any{"product": productID})
		return c.Status(fiber.StatusInternalServerError).SendString("could not add to cart")
	}
	if p == nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}

	v := variant.ByID(p.Variants, variantID)
	if variantID != "" && v == nil {
		applog.Security(c, "cart.add.unknown_variant", map[string]any{"product": productID, "variant": variantID})
		return c.Status(fiber.StatusBadRequest).SendString("unknown variant")
	}

	stock := variant.Stock(p, v)
	if stock <= 0 {
		return c.Redirect("/" + data.Config.Slug + "/products/" + productID)
	}

	item := cart.LineItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		VariantID:   variantID,
		UnitPrice:   variant.Price(p, v),
		ImageURL:    variant.Image(p, v),
		MaxQuantity: stock,
	}
	if v != nil {
		item.VariantName = v.Name
	}

	carts := sessionCarts(c, h.KV)
	cur := carts.Load(c.UserContext(), data.Config.CompanyID)
	next := carts.AddItem(c.UserContext(), data.Config.CompanyID, cur, item, qty)

	applog.Info(c, "cart.add", map[string]any{
		"product": productID, "variant": variantID, "qty": qty, "count": next.ItemCount,
	})
	return c.Redirect("/" + data.Config.Slug + "/cart")
}

func (h *CartHandler) Update(c *fiber.Ctx) error {
	data, handled, err := tenantData(c, h.Catalog)
	if handled {
		return err
	}

	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	variantID := c.FormValue("variantId")
	n := validate.UpdateQty(c.FormValue("qty")) // 0 removes the line

	carts := sessionCarts(c, h.KV)
	cur := carts.Load(c.UserContext(), data.Config.CompanyID)
	carts.UpdateQuantity(c.UserContext(), data.Config.CompanyID, cur, productID, variantID, n)

	return c.Redirect("/" + data.Config.Slug + "/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	data, handled, err := tenantData(c, h.Catalog)
	if handled {
		return err
	}

	productID, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	variantID := c.FormValue("variantId")

	carts := sessionCarts(c, h.KV)
	cur := carts.Load(c.UserContext(), data.Config.CompanyID)
	carts.RemoveItem(c.UserContext(), data.Config.CompanyID, cur, productID, variantID)

	return c.Redirect("/" + data.Config.Slug + "/cart")
}
