package handler

import "github.com/mercadito/ecommerce-api/internal/core/domain"

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"required,min=10,max=500"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Category    string  `json:"category"    validate:"required,min=2,max=50"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	Image       string  `json:"image"       validate:"omitempty,url"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"        validate:"omitempty,min=2,max=100"`
	Description *string  `json:"description" validate:"omitempty,min=10,max=500"`
	Price       *float64 `json:"price"       validate:"omitempty,gt=0"`
	Category    *string  `json:"category"    validate:"omitempty,min=2,max=50"`
	Stock       *int     `json:"stock"       validate:"omitempty,gte=0"`
	Image       *string  `json:"image"       validate:"omitempty,url"`
	IsActive    *bool    `json:"isActive"`
}

type productMessageResponse struct {
	Message string          `json:"message"`
	Product *domain.Product `json:"product"`
}

type listProductsResponse struct {
	Products      []*domain.Product `json:"products"`
	TotalPages    int64             `json:"totalPages"`
	CurrentPage   int               `json:"currentPage"`
	TotalProducts int64             `json:"totalProducts"`
}
