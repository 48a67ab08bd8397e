package ports

import (
	"context"

	"github.com/mercadito/ecommerce-api/internal/core/domain"
)

// CartRepository owns the single active cart per user.
//
// GetOrCreate is the only creation path for carts; every read filters on the
// active flag, so a deactivated cart is invisible and a fresh one appears on
// the next access.
type CartRepository interface {
	// GetOrCreate returns the user's active cart, creating an empty one when
	// none exists.
	GetOrCreate(ctx context.Context, userID string) (*domain.Cart, error)
	// FindActiveByUser returns the user's active cart or domain.ErrCartNotFound.
	FindActiveByUser(ctx context.Context, userID string) (*domain.Cart, error)
	// Save persists the cart's items conditionally on the version it was
	// loaded at, and bumps the version. A concurrent writer having moved the
	// version forward surfaces as domain.ErrCartConflict.
	Save(ctx context.Context, cart *domain.Cart) error
}
