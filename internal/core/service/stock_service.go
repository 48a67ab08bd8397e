package service

import (
	"context"

	"github.com/mercadito/ecommerce-api/internal/api/metrics"
	"github.com/mercadito/ecommerce-api/internal/core/domain"
	"github.com/mercadito/ecommerce-api/internal/core/ports"
)

// StockService implements ports.StockGuard against the live catalog. It
// always reads the product store directly, never a cache: the staleness
// accepted elsewhere in the read path is not acceptable when deciding a
// mutation.
type StockService struct {
	products ports.ProductRepository
}

func NewStockService(products ports.ProductRepository) *StockService {
	return &StockService{products: products}
}

func (s *StockService) CheckAvailable(ctx context.Context, productID string, requested int) (*domain.Product, error) {
	product, err := s.products.FindActiveByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if requested > product.Stock {
		metrics.StockRejectionsTotal.Inc()
		return nil, &domain.InsufficientStockError{
			Available: product.Stock,
			Requested: requested,
		}
	}

	return product, nil
}
