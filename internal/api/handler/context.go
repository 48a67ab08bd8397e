package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/ecommerce-api/internal/api/middleware"
)

// ctxUserID extracts the authenticated user id injected by the Auth
// middleware. An empty value means the middleware never ran for this route;
// fail closed with a 401 rather than proceeding unauthenticated.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
