package ports

import (
	"context"

	"github.com/mercadito/ecommerce-api/internal/core/domain"
)

// TokenAuthenticator resolves the caller's identity from the credential pair.
//
// Either token may be empty. When the access token is missing or no longer
// verifies but the refresh token does, a renewed access token is returned as
// the second value and must be handed back to the client by the transport
// layer; renewal is otherwise invisible to the request being served. When
// neither token verifies the only error is domain.ErrNotAuthenticated.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, accessToken, refreshToken string) (*domain.Identity, string, error)
}
