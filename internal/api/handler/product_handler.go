package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mercadito/ecommerce-api/internal/core/domain"
	"github.com/mercadito/ecommerce-api/internal/core/ports"
)

// ProductHandler handles catalog CRUD. Reads are public; writes sit behind
// the Auth middleware.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create adds a new product to the catalog.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  productMessageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		Image:       req.Image,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, productMessageResponse{
		Message: "product created successfully",
		Product: product,
	})
}

func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// List returns a page of active products, optionally filtered by category.
func (h *ProductHandler) List(c echo.Context) error {
	filter := ports.ListProductsFilter{
		Category: c.QueryParam("category"),
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 10),
	}

	products, total, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	if products == nil {
		products = []*domain.Product{}
	}

	totalPages := total / int64(filter.Limit)
	if total%int64(filter.Limit) != 0 {
		totalPages++
	}

	return c.JSON(http.StatusOK, listProductsResponse{
		Products:      products,
		TotalPages:    totalPages,
		CurrentPage:   filter.Page,
		TotalProducts: total,
	})
}

func (h *ProductHandler) Update(c echo.Context) error {
	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Stock:       req.Stock,
		Image:       req.Image,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productMessageResponse{
		Message: "product updated successfully",
		Product: product,
	})
}

// Delete soft-deletes: the product is deactivated, not removed.
func (h *ProductHandler) Delete(c echo.Context) error {
	product, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productMessageResponse{
		Message: "product deleted successfully",
		Product: product,
	})
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
