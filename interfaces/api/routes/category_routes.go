package routes

import (
	"github.com/gofiber/fiber/v2"

	"shopadmin/interfaces/api/handlers"
)

func SetupCategoryRoutes(api fiber.Router, h *handlers.Handlers, adminGate fiber.Handler) {
	categories := api.Group("/categories", adminGate)

	categories.Get("/", h.CategoryHandler.List)
	categories.Get("/properties", h.CategoryHandler.ResolveProperties)
	categories.Post("/", h.CategoryHandler.Create)
	categories.Put("/", h.CategoryHandler.Update)
	categories.Delete("/", h.CategoryHandler.Delete)
}
