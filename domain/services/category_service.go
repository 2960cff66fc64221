package services

import (
	"context"

	"github.com/google/uuid"

	"shopadmin/domain/dto"
	"shopadmin/domain/models"
)

type CategoryService interface {
	// List returns all categories with parents populated one level deep.
	List(ctx context.Context) ([]*models.Category, error)

	// Create stores a new category. An empty parent is stored as absent.
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error)

	// Update fully replaces name, parent and properties. Updating a
	// nonexistent id is a silent no-op reflected in the ack counts.
	Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.UpdateAck, error)

	// Delete removes the category unconditionally. Children and referencing
	// products keep their now-dangling references.
	Delete(ctx context.Context, id uuid.UUID) error

	// ResolveProperties walks the parent chain of the given category and
	// returns the accumulated property groups, nearest ancestor first.
	// An unknown id yields an empty list, never an error.
	ResolveProperties(ctx context.Context, id uuid.UUID) (models.PropertyGroups, error)
}
