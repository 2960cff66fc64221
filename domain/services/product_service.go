package services

import (
	"context"

	"github.com/google/uuid"

	"shopadmin/domain/dto"
	"shopadmin/domain/models"
)

type ProductService interface {
	// List returns the entire collection, no pagination or filtering.
	List(ctx context.Context) ([]*models.Product, error)

	// GetByID returns (nil, nil) for an unknown id; absence is a value here,
	// not an error.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)

	Create(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error)

	// Update fully replaces every mutable field, including images and
	// properties. A nonexistent id is a silent no-op.
	Update(ctx context.Context, req *dto.UpdateProductRequest) error

	Delete(ctx context.Context, id uuid.UUID) error
}
