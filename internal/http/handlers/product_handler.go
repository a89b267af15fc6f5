package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"vitrine/internal/catalog"
	"vitrine/internal/kv"
	applog "vitrine/internal/log"
	"vitrine/internal/validate"
	"vitrine/internal/variant"
)

type ProductHandler struct {
	Catalog *catalog.Client
	KV      kv.Store
}

type attributeView struct {
	Name    string
	Options []optionView
}

type optionView struct {
	Value      string
	Selected   bool
	Selectable bool // some variant with this value has stock
	Available  bool // this value plus the current selection is in stock
	Href       string
}

// Detail renders the product page. The shopper's attribute selection rides
// in the query string, so changing one attribute is a plain link and the
// resolved variant drives price, stock and image.
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	data, handled, err := tenantData(c, h.Catalog)
	if handled {
		return err
	}

	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}

	p, err := h.Catalog.Product(c.UserContext(), data.Config.Slug, id)
	if err != nil {
		applog.Error(c, "product.fetch", err, map[string]any{"product": id})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "This item is temporarily unavailable"})
	}
	if p == nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}

	names := variant.AttributeNames(p.Variants)
	selected := selectionFromQuery(c, names)
	if len(selected) == 0 {
		if def := variant.ChooseDefault(p.Variants); def != nil {
			selected = def.Attributes
		}
	}

	resolved := variant.FindMatching(p.Variants, selected)
	price := variant.Price(p, resolved)
	stock := variant.Stock(p, resolved)
	image := variant.Image(p, resolved)

	attrs := make([]attributeView, 0, len(names))
	for _, name := range names {
		av := attributeView{Name: name}
		for _, value := range variant.AvailableValues(p.Variants, name) {
			av.Options = append(av.Options, optionView{
				Value:      value,
				Selected:   selected[name] == value,
				Selectable: variant.IsSelectable(p.Variants, name, value),
				Available:  variant.SelectionAvailable(p.Variants, selected, name, value),
				Href:       selectionHref(data.Config.Slug, p.ID, selected, name, value),
			})
		}
		attrs = append(attrs, av)
	}

	cv := sessionCarts(c, h.KV).Load(c.UserContext(), data.Config.CompanyID)

	return render(c, "product", fiber.Map{
		"Config":     data.Config,
		"Slug":       data.Config.Slug,
		"Categories": data.Categories,
		"P":          p,
		"Variant":    resolved,
		"Attributes": attrs,
		"Price":      price,
		"Stock":      stock,
		"InStock":    stock > 0,
		"Image":      image,
		"CartCount":  cv.ItemCount,
	})
}

func selectionFromQuery(c *fiber.Ctx, names []string) map[string]string {
	selected := make(map[string]string)
	for _, name := range names {
		if v := c.Query(name); v != "" {
			selected[name] = v
		}
	}
	return selected
}

func selectionHref(slug, productID string, selected map[string]string, name, value string) string {
	q := url.Values{}
	for k, v := range selected {
		q.Set(k, v)
	}
	q.Set(name, value)
	return "/" + slug + "/products/" + productID + "?" + q.Encode()
}
