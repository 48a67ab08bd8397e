package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/ecommerce-api/internal/core/ports"
)

// CartHandler handles HTTP requests for the authenticated user's cart. Every
// route sits behind the Auth middleware.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// Get returns the user's cart with denormalized product details, creating an
// empty cart on first access.
func (h *CartHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	view, err := h.service.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCartResponse(view))
}

// Summary returns the cart totals; a user without a cart gets zeros.
func (h *CartHandler) Summary(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Summary(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartSummaryResponse{
		TotalItems:  summary.TotalItems,
		TotalAmount: summary.TotalAmount,
		ItemsCount:  summary.ItemsCount,
	})
}

// Add inserts a quantity of a product, aggregating with an existing entry.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addToCartRequest  true  "Product and quantity"
// @Success      200   {object}  cartMessageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /cart/add [post]
func (h *CartHandler) Add(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.AddItem(c.Request().Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartMessageResponse{
		Message: "product added to cart successfully",
		Cart:    toCartResponse(view),
	})
}

// Update overwrites an item's quantity and restamps its price snapshot.
func (h *CartHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.UpdateItem(c.Request().Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartMessageResponse{
		Message: "cart item updated successfully",
		Cart:    toCartResponse(view),
	})
}

// Remove deletes an item from the cart entirely.
func (h *CartHandler) Remove(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req removeFromCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.RemoveItem(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartMessageResponse{
		Message: "product removed from cart successfully",
		Cart:    toCartResponse(view),
	})
}

// Clear empties the cart. Clearing an already-empty cart succeeds.
func (h *CartHandler) Clear(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	view, err := h.service.Clear(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, cartMessageResponse{
		Message: "cart cleared successfully",
		Cart:    toCartResponse(view),
	})
}
