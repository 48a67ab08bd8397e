package ports

import (
	"context"

	"github.com/mercadito/ecommerce-api/internal/core/domain"
)

// TokenPair carries the two credentials minted at login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies the credentials and mints a fresh token pair.
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.User, error)
}
