package repositories

import (
	"context"

	"shopadmin/domain/models"
)

// OrderRepository is read-only: orders are written by the external checkout
// webhook, never by this service.
type OrderRepository interface {
	// List returns all orders, newest first.
	List(ctx context.Context) ([]*models.Order, error)
}
