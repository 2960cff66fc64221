package handlers

import (
	"shopadmin/domain/services"
)

// Services contains all the services needed for handlers
type Services struct {
	CategoryService services.CategoryService
	ProductService  services.ProductService
	OrderService    services.OrderService
	UploadService   services.UploadService
}

// Handlers contains all HTTP handlers
type Handlers struct {
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	OrderHandler    *OrderHandler
	UploadHandler   *UploadHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		CategoryHandler: NewCategoryHandler(services.CategoryService),
		ProductHandler:  NewProductHandler(services.ProductService),
		OrderHandler:    NewOrderHandler(services.OrderService),
		UploadHandler:   NewUploadHandler(services.UploadService),
	}
}
