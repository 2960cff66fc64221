package routes

import (
	"github.com/gofiber/fiber/v2"

	"shopadmin/interfaces/api/handlers"
)

func SetupOrderRoutes(api fiber.Router, h *handlers.Handlers) {
	orders := api.Group("/orders")

	orders.Get("/", h.OrderHandler.List)
}
