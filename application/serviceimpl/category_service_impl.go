package serviceimpl

import (
	"context"

	"github.com/google/uuid"

	"shopadmin/domain/dto"
	"shopadmin/domain/models"
	"shopadmin/domain/repositories"
	"shopadmin/domain/services"
	"shopadmin/pkg/logger"
)

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) services.CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
	}
}

func (s *CategoryServiceImpl) List(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list categories", "error", err)
		return nil, err
	}
	return categories, nil
}

func (s *CategoryServiceImpl) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		ID:         uuid.New(),
		Name:       req.Name,
		ParentID:   dto.ParentRef(req.ParentCategory),
		Properties: req.Properties,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		logger.ErrorContext(ctx, "Failed to create category", "name", req.Name, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Category created", "category_id", category.ID, "name", category.Name)
	return category, nil
}

func (s *CategoryServiceImpl) Update(ctx context.Context, req *dto.UpdateCategoryRequest) (*dto.UpdateAck, error) {
	matched, err := s.categoryRepo.Replace(ctx, req.ID, req.Name, dto.ParentRef(req.ParentCategory), req.Properties)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update category", "category_id", req.ID, "error", err)
		return nil, err
	}

	if matched == 0 {
		logger.WarnContext(ctx, "Category update matched nothing", "category_id", req.ID)
	} else {
		logger.InfoContext(ctx, "Category updated", "category_id", req.ID)
	}

	return &dto.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  matched,
		ModifiedCount: matched,
	}, nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	// No cascade: children and products keep their dangling references.
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete category", "category_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Category deleted", "category_id", id)
	return nil
}

func (s *CategoryServiceImpl) ResolveProperties(ctx context.Context, id uuid.UUID) (models.PropertyGroups, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list categories for property resolution", "error", err)
		return nil, err
	}
	return accumulateProperties(categories, id), nil
}

// accumulateProperties walks the parent chain starting at id and collects
// each category's property groups, nearest ancestor first. An unknown id
// yields an empty result and a dangling parent reference truncates the walk
// at that point; neither is an error. Repeated property names along the chain
// are kept as-is, nearest-ancestor wins only if the consumer keys by name.
// The visited set bounds the walk so a corrupted parent cycle terminates.
func accumulateProperties(categories []*models.Category, id uuid.UUID) models.PropertyGroups {
	byID := make(map[uuid.UUID]*models.Category, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}

	groups := models.PropertyGroups{}
	visited := make(map[uuid.UUID]bool)

	current := byID[id]
	for current != nil && !visited[current.ID] {
		visited[current.ID] = true
		groups = append(groups, current.Properties...)

		if current.ParentID == nil {
			break
		}
		current = byID[*current.ParentID]
	}

	return groups
}
