package handlers

import (
	"github.com/gofiber/fiber/v2"

	"vitrine/internal/catalog"
	"vitrine/internal/domain"
	applog "vitrine/internal/log"
	"vitrine/internal/validate"
)

// tenantData resolves the slug to the tenant's website data, rendering the
// appropriate error page itself. handled=true means a response was already
// written.
func tenantData(c *fiber.Ctx, client *catalog.Client) (data *domain.PublicWebsiteData, handled bool, err error) {
	slug, ok := validate.Slug(c.Params("slug"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "slug"})
		return nil, true, c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Store not found"})
	}
	c.Locals("tenant", slug)

	data, ferr := client.WebsiteData(c.UserContext(), slug)
	if ferr != nil {
		applog.Error(c, "tenant.fetch", ferr, map[string]any{"slug": slug})
		return nil, true, c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "This store is temporarily unavailable. Please try again."})
	}
	if data == nil {
		return nil, true, c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Store not found"})
	}
	return data, false, nil
}
