package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"

	"vitrine/internal/catalog"
	"vitrine/internal/config"
	"vitrine/internal/http/handlers"
	"vitrine/internal/i18n"
	"vitrine/internal/kv"
	applog "vitrine/internal/log"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	// Cart persistence: redis when configured, local sqlite otherwise.
	var store kv.Store
	if cfg.RedisAddr != "" {
		r, err := kv.ConnectRedis(cfg.RedisAddr, cfg.RedisPass, 0)
		if err != nil {
			log.Fatal(err)
		}
		store = r
	} else {
		s, err := kv.OpenSQLite(cfg.CartDB)
		if err != nil {
			log.Fatal(err)
		}
		store = s
	}

	client := catalog.NewClient(cfg.APIBaseURL)

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.AddFunc("price", func(d decimal.Decimal) string {
		return d.StringFixed(2) + " TND"
	})
	engine.AddFunc("lineTotal", func(p decimal.Decimal, qty int) string {
		return p.Mul(decimal.NewFromInt(int64(qty))).StringFixed(2) + " TND"
	})

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and show a friendly message
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return strings.HasPrefix(p, "/static/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	app.Static("/static", "./web/static")

	// ---------- App handlers ----------
	deps := handlers.NewDeps(client, store)

	// Localized landing site
	app.Get("/", deps.LandingHandler.Root)
	for _, l := range i18n.Locales() {
		app.Get("/"+string(l), deps.LandingHandler.Page)
	}

	// Health
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })

	// Merchant storefronts
	app.Get("/:slug", deps.StoreHandler.Index)
	app.Get("/:slug/products/:id", deps.ProductHandler.Detail)
	app.Get("/:slug/cart", deps.CartHandler.View)
	app.Post("/:slug/cart", deps.CartHandler.Add)
	app.Post("/:slug/cart/update", deps.CartHandler.Update)
	app.Post("/:slug/cart/remove", deps.CartHandler.Remove)
	app.Get("/:slug/checkout", deps.CheckoutHandler.Form)
	app.Post("/:slug/orders", deps.CheckoutHandler.Place)

	// 404
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
