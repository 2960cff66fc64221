package routes

import (
	"github.com/gofiber/fiber/v2"

	"shopadmin/interfaces/api/handlers"
)

// SetupRoutes wires every route group. adminGate protects all category and
// product routes plus /upload; GET /orders stays open because order data is
// written by the external checkout flow and read by the storefront too.
func SetupRoutes(app *fiber.App, h *handlers.Handlers, adminGate fiber.Handler) {
	SetupHealthRoutes(app)

	api := app.Group("/api/v1")

	SetupCategoryRoutes(api, h, adminGate)
	SetupProductRoutes(api, h, adminGate)
	SetupOrderRoutes(api, h)
	SetupUploadRoutes(api, h, adminGate)
}
