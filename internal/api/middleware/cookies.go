package middleware

import (
	"net/http"
	"time"
)

// Cookie names for the credential pair.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// CookieOptions controls how credential cookies are emitted. Secure is tied
// to the deployment environment; everything else is fixed by the protocol
// (HTTP-only, SameSite=Lax).
type CookieOptions struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// NewTokenCookie builds a credential cookie with the given lifetime.
func NewTokenCookie(name, value string, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearedTokenCookie builds an expired cookie that removes the credential
// from the client.
func ClearedTokenCookie(name string, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
