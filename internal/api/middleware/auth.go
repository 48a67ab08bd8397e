package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/ecommerce-api/internal/core/ports"
)

// Context keys under which the resolved identity is stored.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// Auth resolves the caller's identity from the accessToken/refreshToken
// cookies and injects it into the echo context.
//
// When the authenticator reports a renewed access token (the access cookie
// was missing or stale but the refresh token still verified), a fresh
// accessToken cookie is attached to this response, whatever endpoint the
// request was for. Both cookies failing yields a 401 before the handler runs.
func Auth(auth ports.TokenAuthenticator, cookies CookieOptions) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, renewed, err := auth.Authenticate(
				c.Request().Context(),
				cookieValue(c, AccessTokenCookie),
				cookieValue(c, RefreshTokenCookie),
			)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			if renewed != "" {
				c.SetCookie(NewTokenCookie(AccessTokenCookie, renewed, cookies.AccessTTL, cookies.Secure))
			}

			c.Set(ContextUserID, identity.UserID)
			c.Set(ContextEmail, identity.Email)

			return next(c)
		}
	}
}

func cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
