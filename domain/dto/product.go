package dto

import (
	"github.com/google/uuid"

	"shopadmin/domain/models"
)

// === Requests ===

type CreateProductRequest struct {
	Title       string             `json:"title" validate:"required,min=1,max=255"`
	Description string             `json:"description"`
	Price       *float64           `json:"price" validate:"required"`
	Images      models.ImageList   `json:"images"`
	Category    string             `json:"category"`
	Properties  models.PropertyMap `json:"properties"`
}

type UpdateProductRequest struct {
	ID          uuid.UUID          `json:"_id" validate:"required"`
	Title       string             `json:"title" validate:"required,min=1,max=255"`
	Description string             `json:"description"`
	Price       *float64           `json:"price" validate:"required"`
	Images      models.ImageList   `json:"images"`
	Category    string             `json:"category"`
	Properties  models.PropertyMap `json:"properties"`
}
