package ports

import (
	"context"

	"github.com/mercadito/ecommerce-api/internal/core/domain"
)

// CreateProductInput carries the attributes of a new catalog entry.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
	Image       string
}

// UpdateProductInput carries a partial product update; nil fields are left
// untouched.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Stock       *int
	Image       *string
	IsActive    *bool
}

type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) (*domain.Product, error)
}
