package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopadmin/domain/services"
	"shopadmin/pkg/logger"
	"shopadmin/pkg/utils"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// List returns all orders, newest first. Orders are created by the external
// checkout webhook; this API only reads them.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	orders, err := h.orderService.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list orders", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return c.JSON(orders)
}
