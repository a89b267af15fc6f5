package handlers

import (
	"github.com/gofiber/fiber/v2"

	"vitrine/internal/catalog"
	"vitrine/internal/kv"
	"vitrine/internal/validate"
)

type StoreHandler struct {
	Catalog *catalog.Client
	KV      kv.Store
}

// Index renders the themed product catalog for one merchant, with category
// filter, text search and sorting.
func (h *StoreHandler) Index(c *fiber.Ctx) error {
	data, handled, err := tenantData(c, h.Catalog)
	if handled {
		return err
	}

	categoryID := ""
	if id, ok := validate.ID(c.Query("category")); ok {
		categoryID = id
	}
	query := c.Query("q")
	sortOpt := catalog.ParseSort(c.Query("sort"))

	products := catalog.Sort(catalog.Filter(data.Products, categoryID, query), sortOpt)
	featured := catalog.Featured(data.Products)

	cv := sessionCarts(c, h.KV).Load(c.UserContext(), data.Config.CompanyID)

	return render(c, "store", fiber.Map{
		"Config":     data.Config,
		"Slug":       data.Config.Slug,
		"Categories": data.Categories,
		"Products":   products,
		"Featured":   featured,
		"CartCount":  cv.ItemCount,
		"CategoryID": categoryID,
		"Query":      query,
		"Sort":       string(sortOpt),
	})
}
