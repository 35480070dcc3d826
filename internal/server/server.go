package server

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/iahmedraza4/translation-agent/internal/config"
	"github.com/iahmedraza4/translation-agent/internal/handlers"
	"github.com/iahmedraza4/translation-agent/internal/views"
)

// New wires middleware, templates and routes around h.
func New(cfg config.Config, h *handlers.TranslateHandler) *fiber.App {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")

	app := fiber.New(fiber.Config{
		ErrorHandler: h.PageErrorHandler,
		BodyLimit:    handlers.MaxBodyBytes,
		Views:        engine,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
	}))

	// Page
	app.Get("/", h.Index)
	app.Post("/translate", h.Submit)
	app.Get("/healthz", h.Health)

	// JSON API
	api := app.Group("/api/v1", cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURL,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST",
	}))
	api.Post("/translate", h.Translate)

	return app
}
