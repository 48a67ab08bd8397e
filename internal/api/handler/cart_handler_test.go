package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/ecommerce-api/internal/api/middleware"
	"github.com/mercadito/ecommerce-api/internal/core/domain"
	"github.com/mercadito/ecommerce-api/internal/core/ports"
)

type stubCartService struct {
	view    *ports.CartView
	summary *ports.CartSummary
	err     error

	gotUserID    string
	gotProductID string
	gotQuantity  int
}

func (s *stubCartService) Get(_ context.Context, userID string) (*ports.CartView, error) {
	s.gotUserID = userID
	return s.view, s.err
}

func (s *stubCartService) AddItem(_ context.Context, userID, productID string, quantity int) (*ports.CartView, error) {
	s.gotUserID, s.gotProductID, s.gotQuantity = userID, productID, quantity
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func (s *stubCartService) UpdateItem(_ context.Context, userID, productID string, quantity int) (*ports.CartView, error) {
	s.gotUserID, s.gotProductID, s.gotQuantity = userID, productID, quantity
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func (s *stubCartService) RemoveItem(_ context.Context, userID, productID string) (*ports.CartView, error) {
	s.gotUserID, s.gotProductID = userID, productID
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func (s *stubCartService) Clear(_ context.Context, userID string) (*ports.CartView, error) {
	s.gotUserID = userID
	if s.err != nil {
		return nil, s.err
	}
	return s.view, nil
}

func (s *stubCartService) Summary(_ context.Context, userID string) (*ports.CartSummary, error) {
	s.gotUserID = userID
	if s.err != nil {
		return nil, s.err
	}
	return s.summary, nil
}

func sampleCartView() *ports.CartView {
	return &ports.CartView{
		ID:     "cart_1",
		UserID: "user_1",
		Items: []ports.CartItemView{
			{
				ProductID: "prod_1",
				Quantity:  3,
				Price:     10,
				Product: &ports.ProductDetails{
					ID:       "prod_1",
					Name:     "Widget",
					Price:    10,
					Stock:    5,
					IsActive: true,
				},
			},
		},
		TotalItems:  3,
		TotalAmount: 30,
	}
}

// newCartContext builds an authenticated echo context the way the Auth
// middleware would leave it.
func newCartContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newJSONContext(method, target, body)
	c.Set(middleware.ContextUserID, "user_1")
	c.Set(middleware.ContextEmail, "ada@example.com")
	return c, rec
}

func TestCartHandler_Add(t *testing.T) {
	svc := &stubCartService{view: sampleCartView()}
	h := NewCartHandler(svc)

	c, rec := newCartContext(http.MethodPost, "/cart/add", `{"productId":"prod_1","quantity":3}`)

	if err := h.Add(c); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotUserID != "user_1" || svc.gotProductID != "prod_1" || svc.gotQuantity != 3 {
		t.Fatalf("service called with %q %q %d", svc.gotUserID, svc.gotProductID, svc.gotQuantity)
	}

	var resp struct {
		Message string `json:"message"`
		Cart    struct {
			ID    string `json:"id"`
			Items []struct {
				ProductID string  `json:"productId"`
				Quantity  int     `json:"quantity"`
				Price     float64 `json:"price"`
			} `json:"items"`
			TotalItems  int     `json:"totalItems"`
			TotalAmount float64 `json:"totalAmount"`
		} `json:"cart"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.Message != "product added to cart successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if len(resp.Cart.Items) != 1 || resp.Cart.Items[0].ProductID != "prod_1" {
		t.Fatalf("unexpected cart payload: %+v", resp.Cart)
	}
	if resp.Cart.TotalItems != 3 || resp.Cart.TotalAmount != 30 {
		t.Fatalf("unexpected totals: %+v", resp.Cart)
	}
}

func TestCartHandler_Add_InvalidPayload(t *testing.T) {
	h := NewCartHandler(&stubCartService{})

	cases := map[string]string{
		"missing product":   `{"quantity":1}`,
		"zero quantity":     `{"productId":"prod_1","quantity":0}`,
		"negative quantity": `{"productId":"prod_1","quantity":-2}`,
		"malformed json":    `{`,
	}
	for name, body := range cases {
		c, _ := newCartContext(http.MethodPost, "/cart/add", body)
		err := h.Add(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", name, err)
		}
	}
}

func TestCartHandler_Add_ServiceErrorsPassThrough(t *testing.T) {
	stockErr := &domain.InsufficientStockError{Available: 5, InCart: 3, Requested: 3}
	svc := &stubCartService{err: stockErr}
	h := NewCartHandler(svc)

	c, _ := newCartContext(http.MethodPost, "/cart/add", `{"productId":"prod_1","quantity":3}`)

	if err := h.Add(c); err != stockErr {
		t.Fatalf("expected the stock error to pass through, got %v", err)
	}
}

func TestCartHandler_Get(t *testing.T) {
	svc := &stubCartService{view: sampleCartView()}
	h := NewCartHandler(svc)

	c, rec := newCartContext(http.MethodGet, "/cart", "")

	if err := h.Get(c); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	body := rec.Body.String()
	for _, key := range []string{`"productId"`, `"totalItems"`, `"totalAmount"`, `"isActive"`} {
		if !strings.Contains(body, key) {
			t.Fatalf("response missing %s: %s", key, body)
		}
	}
}

func TestCartHandler_Summary(t *testing.T) {
	svc := &stubCartService{summary: &ports.CartSummary{TotalItems: 5, TotalAmount: 50, ItemsCount: 2}}
	h := NewCartHandler(svc)

	c, rec := newCartContext(http.MethodGet, "/cart/summary", "")

	if err := h.Summary(c); err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	var resp cartSummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.TotalItems != 5 || resp.TotalAmount != 50 || resp.ItemsCount != 2 {
		t.Fatalf("unexpected summary: %+v", resp)
	}
}

func TestCartHandler_Remove(t *testing.T) {
	view := sampleCartView()
	view.Items = nil
	view.TotalItems = 0
	view.TotalAmount = 0
	svc := &stubCartService{view: view}
	h := NewCartHandler(svc)

	c, rec := newCartContext(http.MethodDelete, "/cart/remove", `{"productId":"prod_1"}`)

	if err := h.Remove(c); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if svc.gotProductID != "prod_1" {
		t.Fatalf("service called with product %q", svc.gotProductID)
	}
	// An empty cart still serializes items as a list, not null.
	if !strings.Contains(rec.Body.String(), `"items":[]`) {
		t.Fatalf("expected empty items array: %s", rec.Body.String())
	}
}

func TestCartHandler_MissingIdentity(t *testing.T) {
	h := NewCartHandler(&stubCartService{view: sampleCartView()})

	// No Auth middleware ran: the context carries no user id.
	c, _ := newJSONContext(http.MethodGet, "/cart", "")

	err := h.Get(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
