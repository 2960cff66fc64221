package routes

import (
	"github.com/gofiber/fiber/v2"

	"shopadmin/interfaces/api/handlers"
)

func SetupProductRoutes(api fiber.Router, h *handlers.Handlers, adminGate fiber.Handler) {
	products := api.Group("/products", adminGate)

	products.Get("/", h.ProductHandler.List)
	products.Post("/", h.ProductHandler.Create)
	products.Put("/", h.ProductHandler.Update)
	products.Delete("/", h.ProductHandler.Delete)
}
