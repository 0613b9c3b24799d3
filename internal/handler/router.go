package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"keyword-insight/internal/service"
)

// NewRouter builds the fiber app with all routes registered.
func NewRouter(insight service.InsightService) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "keyword-insight",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())

	h := NewInsightHandler(insight)

	v1 := app.Group("/api/v1")
	v1.Get("/insight", h.Analyze)
	v1.Get("/insight/export", h.Export)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return app
}
