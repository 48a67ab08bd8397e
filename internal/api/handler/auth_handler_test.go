package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/ecommerce-api/internal/api/middleware"
	"github.com/mercadito/ecommerce-api/internal/core/domain"
	"github.com/mercadito/ecommerce-api/internal/core/ports"
)

type stubAuthService struct {
	registerUser *domain.User
	registerErr  error
	loginPair    *ports.TokenPair
	loginUser    *domain.User
	loginErr     error
}

func (s *stubAuthService) Register(_ context.Context, name, email, _ string) (*domain.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	if s.registerUser != nil {
		return s.registerUser, nil
	}
	return &domain.User{ID: "user_1", Name: name, Email: email}, nil
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*ports.TokenPair, *domain.User, error) {
	if s.loginErr != nil {
		return nil, nil, s.loginErr
	}
	return s.loginPair, s.loginUser, nil
}

func testAuthHandler(svc ports.AuthService) *AuthHandler {
	return NewAuthHandler(svc, middleware.CookieOptions{
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 168 * time.Hour,
	})
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	h := testAuthHandler(&stubAuthService{})

	c, rec := newJSONContext(http.MethodPost, "/auth/register",
		`{"name":"Ada Lovelace","email":"ada@example.com","password":"s3cretpass"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"user created successfully"`) || !strings.Contains(body, `"ada@example.com"`) {
		t.Fatalf("unexpected body: %s", body)
	}
	if strings.Contains(body, "password") {
		t.Fatal("response must not echo the password")
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	h := testAuthHandler(&stubAuthService{})

	cases := map[string]string{
		"short password": `{"name":"Ada","email":"ada@example.com","password":"short"}`,
		"bad email":      `{"name":"Ada","email":"not-an-email","password":"s3cretpass"}`,
		"missing name":   `{"email":"ada@example.com","password":"s3cretpass"}`,
	}
	for name, body := range cases {
		c, _ := newJSONContext(http.MethodPost, "/auth/register", body)
		err := h.Register(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", name, err)
		}
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h := testAuthHandler(&stubAuthService{registerErr: domain.ErrUserExists})

	c, _ := newJSONContext(http.MethodPost, "/auth/register",
		`{"name":"Ada Lovelace","email":"ada@example.com","password":"s3cretpass"}`)

	if err := h.Register(c); err != domain.ErrUserExists {
		t.Fatalf("domain errors must pass through to the error handler, got %v", err)
	}
}

func TestAuthHandler_Login_SetsCredentialCookies(t *testing.T) {
	h := testAuthHandler(&stubAuthService{
		loginPair: &ports.TokenPair{AccessToken: "access-jwt", RefreshToken: "refresh-jwt"},
		loginUser: &domain.User{ID: "user_1", Email: "ada@example.com"},
	})

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"email":"ada@example.com","password":"s3cretpass"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 2 {
		t.Fatalf("expected 2 cookies, got %d", len(cookies))
	}
	byName := map[string]*http.Cookie{}
	for _, cookie := range cookies {
		byName[cookie.Name] = cookie
	}

	access, ok := byName[middleware.AccessTokenCookie]
	if !ok || access.Value != "access-jwt" {
		t.Fatalf("missing or wrong access cookie: %+v", access)
	}
	refresh, ok := byName[middleware.RefreshTokenCookie]
	if !ok || refresh.Value != "refresh-jwt" {
		t.Fatalf("missing or wrong refresh cookie: %+v", refresh)
	}
	for _, cookie := range cookies {
		if !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode {
			t.Fatalf("cookie %s must be HttpOnly SameSite=Lax", cookie.Name)
		}
	}
	if access.MaxAge >= refresh.MaxAge {
		t.Fatal("access cookie must expire before the refresh cookie")
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h := testAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials})

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"email":"ada@example.com","password":"wrongpass"}`)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected passthrough of ErrInvalidCredentials, got %v", err)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("no cookies may be set on a failed login")
	}
}

func TestAuthHandler_Logout_ClearsCookies(t *testing.T) {
	h := testAuthHandler(&stubAuthService{})

	c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 2 {
		t.Fatalf("expected both cookies cleared, got %d", len(cookies))
	}
	for _, cookie := range cookies {
		if cookie.Value != "" || cookie.MaxAge != -1 {
			t.Fatalf("cookie %s not cleared: value=%q maxAge=%d", cookie.Name, cookie.Value, cookie.MaxAge)
		}
	}
}
