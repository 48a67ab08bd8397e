package ports

import (
	"context"

	"github.com/mercadito/ecommerce-api/internal/core/domain"
)

// ListProductsFilter carries the query parameters for catalog listings.
type ListProductsFilter struct {
	Category string // optional: case-insensitive partial match
	Page     int    // 1-based
	Limit    int    // max rows per page (capped by the service)
}

// ProductRepository defines persistence for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// FindByID returns the product regardless of its active flag.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// FindActiveByID returns the product only when it exists and is active;
	// an inactive product is indistinguishable from a missing one.
	FindActiveByID(ctx context.Context, id string) (*domain.Product, error)
	// FindByIDs returns the products for the given ids, keyed by id. Missing
	// ids are simply absent from the map.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Product, error)
	Update(ctx context.Context, id string, p *domain.Product) (*domain.Product, error)
	// Deactivate soft-deletes the product.
	Deactivate(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, int64, error)
}

// ProductReader is the read-side subset used when joining product details
// onto cart items. The redis cache decorates exactly this surface.
type ProductReader interface {
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Product, error)
}
