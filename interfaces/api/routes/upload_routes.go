package routes

import (
	"github.com/gofiber/fiber/v2"

	"shopadmin/interfaces/api/handlers"
)

func SetupUploadRoutes(api fiber.Router, h *handlers.Handlers, adminGate fiber.Handler) {
	api.Post("/upload", adminGate, h.UploadHandler.Upload)
}
