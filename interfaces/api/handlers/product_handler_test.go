package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopadmin/domain/dto"
	"shopadmin/domain/models"
)

type stubProductService struct {
	products map[uuid.UUID]*models.Product
	deleted  []uuid.UUID
	updated  []*dto.UpdateProductRequest
}

func newStubProductService() *stubProductService {
	return &stubProductService{products: make(map[uuid.UUID]*models.Product)}
}

func (s *stubProductService) List(context.Context) ([]*models.Product, error) {
	out := make([]*models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubProductService) GetByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	return s.products[id], nil
}

func (s *stubProductService) Create(_ context.Context, req *dto.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{ID: uuid.New(), Title: req.Title, Price: *req.Price}
	s.products[product.ID] = product
	return product, nil
}

func (s *stubProductService) Update(_ context.Context, req *dto.UpdateProductRequest) error {
	s.updated = append(s.updated, req)
	return nil
}

func (s *stubProductService) Delete(_ context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func productApp(svc *stubProductService) *fiber.App {
	app := fiber.New()
	h := NewProductHandler(svc)
	app.Get("/products", h.List)
	app.Post("/products", h.Create)
	app.Put("/products", h.Update)
	app.Delete("/products", h.Delete)
	return app
}

func TestProductGetByID(t *testing.T) {
	svc := newStubProductService()
	product := &models.Product{ID: uuid.New(), Title: "Red T-Shirt", Price: 19.90}
	svc.products[product.ID] = product
	app := productApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/products?id="+product.ID.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, product.ID.String(), got["_id"])
	assert.Equal(t, "Red T-Shirt", got["title"])
}

func TestProductGetUnknownIDAnswersNull(t *testing.T) {
	app := productApp(newStubProductService())

	resp, err := app.Test(httptest.NewRequest("GET", "/products?id="+uuid.New().String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "null", string(body))
}

func TestProductGetRejectsBadID(t *testing.T) {
	app := productApp(newStubProductService())

	resp, err := app.Test(httptest.NewRequest("GET", "/products?id=oops", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProductCreate(t *testing.T) {
	app := productApp(newStubProductService())

	body, _ := json.Marshal(fiber.Map{"title": "Red T-Shirt", "price": 19.90})
	req := httptest.NewRequest("POST", "/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var got map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.NotEmpty(t, got["_id"])
	assert.Equal(t, "Red T-Shirt", got["title"])
}

func TestProductCreateAcceptsZeroPrice(t *testing.T) {
	app := productApp(newStubProductService())

	// Price 0 is a valid price; only a missing price fails validation.
	body, _ := json.Marshal(fiber.Map{"title": "Freebie", "price": 0})
	req := httptest.NewRequest("POST", "/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestProductCreateValidation(t *testing.T) {
	app := productApp(newStubProductService())

	tests := []struct {
		name string
		body fiber.Map
	}{
		{"missing title", fiber.Map{"price": 10}},
		{"missing price", fiber.Map{"title": "No price"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest("POST", "/products", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			var got map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, false, got["success"])
		})
	}
}

func TestProductUpdateAnswersTrue(t *testing.T) {
	svc := newStubProductService()
	app := productApp(svc)

	body, _ := json.Marshal(fiber.Map{"_id": uuid.New().String(), "title": "Blue T-Shirt", "price": 24.90})
	req := httptest.NewRequest("PUT", "/products", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "true", string(raw))
	require.Len(t, svc.updated, 1)
	assert.Equal(t, "Blue T-Shirt", svc.updated[0].Title)
}

func TestProductDeleteAnswersTrue(t *testing.T) {
	svc := newStubProductService()
	app := productApp(svc)

	id := uuid.New()
	resp, err := app.Test(httptest.NewRequest("DELETE", "/products?id="+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "true", string(raw))
	assert.Equal(t, []uuid.UUID{id}, svc.deleted)
}
