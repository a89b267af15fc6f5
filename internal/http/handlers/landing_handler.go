package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"vitrine/internal/i18n"
)

// LandingHandler serves the localized marketing pages. Merchant storefronts
// live under /:slug and are not localized.
type LandingHandler struct{}

// Root redirects to the default-locale landing page.
func (h *LandingHandler) Root(c *fiber.Ctx) error {
	return c.Redirect("/"+string(i18n.DefaultLocale), fiber.StatusFound)
}

func (h *LandingHandler) Page(c *fiber.Ctx) error {
	loc := i18n.Locale(strings.Trim(c.Path(), "/"))
	if !i18n.Valid(string(loc)) {
		loc = i18n.DefaultLocale
	}
	return render(c, "landing", fiber.Map{
		"Locale":  string(loc),
		"Dir":     i18n.Dir(loc),
		"Locales": i18n.Locales(),
		"T":       i18n.Dict(loc),
	})
}
