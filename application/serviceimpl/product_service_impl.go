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

type ProductServiceImpl struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) services.ProductService {
	return &ProductServiceImpl{
		productRepo: productRepo,
	}
}

func (s *ProductServiceImpl) List(ctx context.Context) ([]*models.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list products", "error", err)
		return nil, err
	}
	return products, nil
}

func (s *ProductServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to get product", "product_id", id, "error", err)
		return nil, err
	}
	return product, nil
}

func (s *ProductServiceImpl) Create(ctx context.Context, req *dto.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Images:      req.Images,
		CategoryID:  dto.ParentRef(req.Category),
		Properties:  req.Properties,
	}

	// Category is a soft reference: no existence check on create or update.
	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.ErrorContext(ctx, "Failed to create product", "title", req.Title, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Product created", "product_id", product.ID, "title", product.Title)
	return product, nil
}

func (s *ProductServiceImpl) Update(ctx context.Context, req *dto.UpdateProductRequest) error {
	// Full replacement: every mutable field is written, including the ones
	// the caller left empty. Omitting images clears them.
	fields := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"price":       *req.Price,
		"images":      req.Images,
		"category_id": dto.ParentRef(req.Category),
		"properties":  req.Properties,
	}

	matched, err := s.productRepo.Replace(ctx, req.ID, fields)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to update product", "product_id", req.ID, "error", err)
		return err
	}

	if matched == 0 {
		logger.WarnContext(ctx, "Product update matched nothing", "product_id", req.ID)
	} else {
		logger.InfoContext(ctx, "Product updated", "product_id", req.ID)
	}
	return nil
}

func (s *ProductServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.ErrorContext(ctx, "Failed to delete product", "product_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Product deleted", "product_id", id)
	return nil
}
