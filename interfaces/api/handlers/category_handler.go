package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shopadmin/domain/dto"
	"shopadmin/domain/services"
	"shopadmin/pkg/logger"
	"shopadmin/pkg/utils"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// List returns every category as a bare array, parent populated one level
// deep, which is the shape the admin form consumes directly.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	categories, err := h.categoryService.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list categories", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return c.JSON(categories)
}

// ResolveProperties returns the accumulated property chain for ?id=,
// nearest ancestor first. Unknown ids yield an empty array.
func (h *CategoryHandler) ResolveProperties(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	properties, err := h.categoryService.ResolveProperties(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to resolve category properties", "category_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return c.JSON(properties)
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	category, err := h.categoryService.Create(ctx, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Category creation failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	ack, err := h.categoryService.Update(ctx, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Category update failed", "category_id", req.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return c.JSON(ack)
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Query("_id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid category ID")
	}

	if err := h.categoryService.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Category delete failed", "category_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return c.JSON("ok")
}
