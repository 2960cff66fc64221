package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shopadmin/domain/dto"
	"shopadmin/domain/services"
	"shopadmin/pkg/logger"
	"shopadmin/pkg/utils"
)

type UploadHandler struct {
	uploadService services.UploadService
}

func NewUploadHandler(uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// Upload accepts one or more files in the multipart field "files", forwards
// them to object storage and returns their public URLs in submission order.
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	ctx := c.UserContext()

	form, err := c.MultipartForm()
	if err != nil {
		logger.WarnContext(ctx, "Invalid multipart form", "error", err)
		return utils.BadRequestResponse(c, "Invalid multipart form")
	}

	files := form.File["files"]
	if len(files) == 0 {
		logger.WarnContext(ctx, "No files provided")
		return utils.BadRequestResponse(c, "No files provided")
	}

	links, err := h.uploadService.Upload(ctx, files)
	if err != nil {
		logger.ErrorContext(ctx, "Upload failed", "count", len(files), "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return c.JSON(dto.UploadResponse{Links: links})
}
