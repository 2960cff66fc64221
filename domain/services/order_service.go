package services

import (
	"context"

	"shopadmin/domain/models"
)

type OrderService interface {
	// List returns all orders sorted by creation time descending.
	List(ctx context.Context) ([]*models.Order, error)
}
