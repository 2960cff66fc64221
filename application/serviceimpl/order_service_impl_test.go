package serviceimpl

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopadmin/domain/models"
)

type fakeOrderRepo struct {
	orders []*models.Order
}

func (r *fakeOrderRepo) List(_ context.Context) ([]*models.Order, error) {
	return r.orders, nil
}

func TestOrderServiceList(t *testing.T) {
	// The repo already sorts newest first; the service returns it untouched.
	newest := &models.Order{
		ID:        uuid.New(),
		LineItems: models.LineItems(`[{"quantity":2,"price_data":{"unit_amount":1990}}]`),
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Paid:      true,
	}
	oldest := &models.Order{ID: uuid.New(), Name: "John Doe", Paid: false}

	repo := &fakeOrderRepo{orders: []*models.Order{newest, oldest}}
	svc := NewOrderService(repo)

	orders, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newest.ID, orders[0].ID)
	assert.Equal(t, oldest.ID, orders[1].ID)
}

func TestOrderLineItemsPassThrough(t *testing.T) {
	// Line items are opaque: whatever the checkout webhook stored comes back
	// verbatim, including shapes this service knows nothing about.
	raw := `[{"quantity":1,"price_data":{"currency":"usd","unit_amount":4990,"product_data":{"name":"Red T-Shirt"}}}]`

	order := &models.Order{LineItems: models.LineItems(raw)}

	out, err := json.Marshal(order.LineItems)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestOrderEmptyLineItemsMarshalsNull(t *testing.T) {
	order := &models.Order{}

	out, err := json.Marshal(order.LineItems)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
