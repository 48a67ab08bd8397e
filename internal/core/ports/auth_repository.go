package ports

import (
	"context"

	"github.com/mercadito/ecommerce-api/internal/core/domain"
)

// AuthRepository defines persistence for user accounts.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
