package ports

import (
	"context"

	"github.com/mercadito/ecommerce-api/internal/core/domain"
)

// StockGuard is a read-only availability check against the live catalog.
//
// A missing and an inactive product are reported identically as
// domain.ErrProductNotFound. A quantity that exceeds the current stock fails
// with *domain.InsufficientStockError carrying the availability detail.
type StockGuard interface {
	CheckAvailable(ctx context.Context, productID string, requested int) (*domain.Product, error)
}
