package repositories

import (
	"context"

	"github.com/google/uuid"

	"shopadmin/domain/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	// List returns every category with its parent populated one level deep.
	// A dangling parent reference leaves Parent nil.
	List(ctx context.Context) ([]*models.Category, error)
	// Replace overwrites name, parent and properties of the category with the
	// given id and reports how many rows matched. Zero matches is not an error.
	Replace(ctx context.Context, id uuid.UUID, name string, parentID *uuid.UUID, properties models.PropertyGroups) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
