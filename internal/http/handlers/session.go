package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vitrine/internal/cart"
	"vitrine/internal/kv"
)

// ensureSID gives every browser its own cart bucket. Two tabs share a
// session; two browsers do not, and concurrent writes are last-write-wins.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Secure:   false, // enable true behind TLS
		})
	}
	return sid
}

// sessionCarts returns the cart store scoped to this client's session.
// Within the session, keys stay "<namespace>_<tenantId>" so tenants never
// share a cart.
func sessionCarts(c *fiber.Ctx, base kv.Store) *cart.Store {
	sid := ensureSID(c)
	return cart.NewStore(kv.Prefixed(base, "sess:"+sid+":"), cart.DefaultNamespace)
}
