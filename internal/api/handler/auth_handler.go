package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/ecommerce-api/internal/api/middleware"
	"github.com/mercadito/ecommerce-api/internal/core/ports"
)

// AuthHandler handles registration, login, and logout. Login and logout own
// the credential cookies; transparent renewal of an expired access cookie is
// the Auth middleware's job.
type AuthHandler struct {
	authService ports.AuthService
	cookies     middleware.CookieOptions
}

func NewAuthHandler(authService ports.AuthService, cookies middleware.CookieOptions) *AuthHandler {
	return &AuthHandler{authService: authService, cookies: cookies}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type registeredUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type registerResponse struct {
	Message string         `json:"message"`
	User    registeredUser `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{
		Message: "user created successfully",
		User:    registeredUser{ID: user.ID, Name: user.Name, Email: user.Email},
	})
}

// Login authenticates a user and sets the accessToken/refreshToken cookies.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pair, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(middleware.NewTokenCookie(middleware.AccessTokenCookie, pair.AccessToken, h.cookies.AccessTTL, h.cookies.Secure))
	c.SetCookie(middleware.NewTokenCookie(middleware.RefreshTokenCookie, pair.RefreshToken, h.cookies.RefreshTTL, h.cookies.Secure))

	return c.JSON(http.StatusOK, messageResponse{Message: "login successful"})
}

// Logout clears both credential cookies. Always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(middleware.ClearedTokenCookie(middleware.AccessTokenCookie, h.cookies.Secure))
	c.SetCookie(middleware.ClearedTokenCookie(middleware.RefreshTokenCookie, h.cookies.Secure))

	return c.JSON(http.StatusOK, messageResponse{Message: "logout successful"})
}
