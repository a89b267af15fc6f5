package handlers

import (
	"github.com/gofiber/fiber/v2"

	"vitrine/internal/cart"
	"vitrine/internal/catalog"
	"vitrine/internal/domain"
	"vitrine/internal/kv"
	applog "vitrine/internal/log"
	"vitrine/internal/validate"
)

type CheckoutHandler struct {
	Catalog *catalog.Client
	KV      kv.Store
}

// Form shows the checkout page; an empty cart bounces back to the cart view.
func (h *CheckoutHandler) Form(c *fiber.Ctx) error {
	data, handled, err := tenantData(c, h.Catalog)
	if handled {
		return err
	}

	cv := sessionCarts(c, h.KV).Load(c.UserContext(), data.Config.CompanyID)
	if len(cv.Items) == 0 {
		return c.Redirect("/" + data.Config.Slug + "/cart")
	}

	shipping := data.Config.ShippingPrice
	return render(c, "checkout", fiber.Map{
		"Config":    data.Config,
		"Slug":      data.Config.Slug,
		"Cart":      cv,
		"Shipping":  shipping,
		"Total":     cv.Subtotal.Add(shipping),
		"CartCount": cv.ItemCount,
	})
}

// Place submits the order to the catalog API. The cart is cleared only
// after the API confirms, so a failed submission keeps the shopper's items
// for retry.
func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	data, handled, err := tenantData(c, h.Catalog)
	if handled {
		return err
	}

	carts := sessionCarts(c, h.KV)
	cv := carts.Load(c.UserContext(), data.Config.CompanyID)
	if len(cv.Items) == 0 {
		return c.Redirect("/" + data.Config.Slug + "/cart")
	}

	name, ok := validate.Name(c.FormValue("customerName"))
	if !ok {
		return h.reject(c, data, cv, "Please enter your name.")
	}
	email, ok := validate.Email(c.FormValue("customerEmail"))
	if !ok {
		return h.reject(c, data, cv, "Please enter a valid email address.")
	}
	phone, ok := validate.Phone(c.FormValue("customerPhone"))
	if !ok {
		return h.reject(c, data, cv, "Please enter a valid phone number.")
	}
	postal, ok := validate.Postal(c.FormValue("postalCode"))
	if !ok {
		return h.reject(c, data, cv, "Please enter a valid postal code.")
	}
	city, _ := validate.City(c.FormValue("city"))
	street := c.FormValue("street")
	notes := validate.Notes(c.FormValue("customerNotes"))

	req := domain.CreateOrderRequest{
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: phone,
		CustomerNotes: notes,
	}
	if street != "" {
		req.ShippingAddress = &domain.ShippingAddress{
			Street:     street,
			City:       city,
			PostalCode: postal,
		}
	}
	for _, it := range cv.Items {
		req.Items = append(req.Items, domain.OrderItem{
			ProductID: it.ProductID,
			VariantID: it.VariantID,
			Quantity:  it.Quantity,
		})
	}

	resp, err := h.Catalog.CreateOrder(c.UserContext(), data.Config.CompanyID, req)
	if err != nil {
		applog.Error(c, "order.place.fail", err, map[string]any{"items": len(req.Items)})
		return h.reject(c, data, cv, "Could not place your order. Please try again.")
	}

	carts.Clear(c.UserContext(), data.Config.CompanyID)
	applog.Audit(c, "order.place", map[string]any{
		"order_id": resp.OrderID, "order_number": resp.OrderNumber, "items": len(req.Items),
	})

	return render(c, "order_success", fiber.Map{
		"Config":      data.Config,
		"Slug":        data.Config.Slug,
		"OrderNumber": resp.OrderNumber,
		"OrderID":     resp.OrderID,
	})
}

func (h *CheckoutHandler) reject(c *fiber.Ctx, data *domain.PublicWebsiteData, cv cart.State, msg string) error {
	shipping := data.Config.ShippingPrice
	c.Status(fiber.StatusBadRequest)
	return render(c, "checkout", fiber.Map{
		"Config":    data.Config,
		"Slug":      data.Config.Slug,
		"Cart":      cv,
		"Shipping":  shipping,
		"Total":     cv.Subtotal.Add(shipping),
		"CartCount": cv.ItemCount,
		"Err":       msg,
	})
}
