package repositories

import (
	"context"

	"github.com/google/uuid"

	"shopadmin/domain/models"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	// GetByID returns (nil, nil) when no product has the given id.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context) ([]*models.Product, error)
	// Replace overwrites every mutable field of the product with the given id
	// and reports how many rows matched. Zero matches is not an error.
	Replace(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
