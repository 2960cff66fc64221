package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shopadmin/domain/dto"
	"shopadmin/domain/services"
	"shopadmin/pkg/logger"
	"shopadmin/pkg/utils"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// List returns the whole collection, or a single product when ?id= is
// present. A lookup of an unknown id answers JSON null, not 404: absence is
// a value in this contract.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if idParam := c.Query("id"); idParam != "" {
		id, err := uuid.Parse(idParam)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid product ID")
		}

		product, err := h.productService.GetByID(ctx, id)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to get product", "product_id", id, "error", err)
			return utils.InternalServerErrorResponse(c)
		}

		return c.JSON(product)
	}

	products, err := h.productService.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list products", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return c.JSON(products)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	product, err := h.productService.Create(ctx, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Product creation failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	if err := h.productService.Update(ctx, &req); err != nil {
		logger.ErrorContext(ctx, "Product update failed", "product_id", req.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return c.JSON(true)
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid product ID")
	}

	if err := h.productService.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Product delete failed", "product_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return c.JSON(true)
}
