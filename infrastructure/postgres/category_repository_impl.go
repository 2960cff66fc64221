package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shopadmin/domain/models"
	"shopadmin/domain/repositories"
)

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	// Preload resolves the parent one level deep. A dangling parent_id simply
	// leaves Parent nil rather than failing the query.
	err := r.db.WithContext(ctx).Preload("Parent").Order("created_at ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepositoryImpl) Replace(ctx context.Context, id uuid.UUID, name string, parentID *uuid.UUID, properties models.PropertyGroups) (int64, error) {
	// Map-based Updates so zero values are written too: this is a full
	// replacement of name/parent/properties, not a patch.
	result := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       name,
		"parent_id":  parentID,
		"properties": properties,
	})
	return result.RowsAffected, result.Error
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	// Single-row delete only. Children keep their parent_id (now dangling).
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{}).Error
}
