package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mercadito/ecommerce-api/internal/api/metrics"
	"github.com/mercadito/ecommerce-api/internal/core/domain"
	"github.com/mercadito/ecommerce-api/internal/core/ports"
)

// AccessClaims is the payload of the short-lived access token.
type AccessClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// RefreshClaims is the payload of the long-lived refresh token. It carries
// only the user id; email is resolved from the user store on renewal.
type RefreshClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenConfig carries the signing material and lifetimes for both token
// kinds. The secrets must differ and AccessTTL must stay below RefreshTTL;
// config.Load enforces both before this struct is ever built.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// TokenService mints and verifies the access/refresh credential pair and
// implements ports.TokenAuthenticator.
type TokenService struct {
	cfg   TokenConfig
	users ports.AuthRepository
}

func NewTokenService(cfg TokenConfig, users ports.AuthRepository) *TokenService {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 15 * time.Minute
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = 7 * 24 * time.Hour
	}
	return &TokenService{cfg: cfg, users: users}
}

// AccessTTL exposes the access token lifetime so the transport layer can
// align cookie expiry with it.
func (s *TokenService) AccessTTL() time.Duration { return s.cfg.AccessTTL }

// RefreshTTL exposes the refresh token lifetime for the same reason.
func (s *TokenService) RefreshTTL() time.Duration { return s.cfg.RefreshTTL }

// MintPair issues a fresh access/refresh pair for the user, as done at login.
func (s *TokenService) MintPair(user *domain.User) (*ports.TokenPair, error) {
	access, err := s.MintAccess(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	refresh, err := s.MintRefresh(user.ID)
	if err != nil {
		return nil, err
	}
	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// MintAccess signs a new access token for the given identity.
func (s *TokenService) MintAccess(userID, email string) (string, error) {
	claims := AccessClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.AccessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.cfg.AccessSecret))
}

// MintRefresh signs a new refresh token for the given user.
func (s *TokenService) MintRefresh(userID string) (string, error) {
	claims := RefreshClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.RefreshTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.cfg.RefreshSecret))
}

// ParseAccess verifies signature and expiry of an access token and validates
// the claim shape.
func (s *TokenService) ParseAccess(token string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if err := s.parse(token, claims, s.cfg.AccessSecret); err != nil {
		return nil, err
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("access token missing user id")
	}
	return claims, nil
}

// ParseRefresh verifies signature and expiry of a refresh token and validates
// the claim shape.
func (s *TokenService) ParseRefresh(token string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := s.parse(token, claims, s.cfg.RefreshSecret); err != nil {
		return nil, err
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("refresh token missing user id")
	}
	return claims, nil
}

func (s *TokenService) parse(token string, claims jwt.Claims, secret string) error {
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	if !tkn.Valid {
		return jwt.ErrTokenUnverifiable
	}
	return nil
}

// Authenticate resolves the caller's identity from the credential pair.
//
// A verifiable access token wins outright. Otherwise a verifiable refresh
// token transparently mints a replacement access token, returned as the
// second value so the transport layer can hand it back to the client. Both
// tokens failing collapses into domain.ErrNotAuthenticated; the caller never
// learns which one was at fault.
func (s *TokenService) Authenticate(ctx context.Context, accessToken, refreshToken string) (*domain.Identity, string, error) {
	if accessToken != "" {
		if claims, err := s.ParseAccess(accessToken); err == nil {
			return &domain.Identity{UserID: claims.UserID, Email: claims.Email}, "", nil
		}
	}

	if refreshToken == "" {
		return nil, "", domain.ErrNotAuthenticated
	}

	claims, err := s.ParseRefresh(refreshToken)
	if err != nil {
		metrics.TokenRenewalsTotal.WithLabelValues("rejected").Inc()
		return nil, "", domain.ErrNotAuthenticated
	}

	// Refresh claims carry no email; resolve it from the user store. A user
	// deleted since the token was minted fails renewal.
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		metrics.TokenRenewalsTotal.WithLabelValues("rejected").Inc()
		return nil, "", domain.ErrNotAuthenticated
	}

	newAccess, err := s.MintAccess(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	metrics.TokenRenewalsTotal.WithLabelValues("renewed").Inc()
	return &domain.Identity{UserID: user.ID, Email: user.Email}, newAccess, nil
}
