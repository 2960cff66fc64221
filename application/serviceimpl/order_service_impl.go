package serviceimpl

import (
	"context"

	"shopadmin/domain/models"
	"shopadmin/domain/repositories"
	"shopadmin/domain/services"
	"shopadmin/pkg/logger"
)

type OrderServiceImpl struct {
	orderRepo repositories.OrderRepository
}

func NewOrderService(orderRepo repositories.OrderRepository) services.OrderService {
	return &OrderServiceImpl{
		orderRepo: orderRepo,
	}
}

func (s *OrderServiceImpl) List(ctx context.Context) ([]*models.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list orders", "error", err)
		return nil, err
	}
	return orders, nil
}
