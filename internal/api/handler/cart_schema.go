package handler

// --- Request types ---

type addToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"required,gt=0"`
}

type updateCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"required,gt=0"`
}

type removeFromCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type cartProductResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Stock    int     `json:"stock"`
	IsActive bool    `json:"isActive"`
}

type cartItemResponse struct {
	ProductID string               `json:"productId"`
	Quantity  int                  `json:"quantity"`
	Price     float64              `json:"price"`
	Product   *cartProductResponse `json:"product,omitempty"`
}

type cartResponse struct {
	ID          string             `json:"id"`
	UserID      string             `json:"user"`
	Items       []cartItemResponse `json:"items"`
	TotalItems  int                `json:"totalItems"`
	TotalAmount float64            `json:"totalAmount"`
}

type cartMessageResponse struct {
	Message string       `json:"message"`
	Cart    cartResponse `json:"cart"`
}

type cartSummaryResponse struct {
	TotalItems  int     `json:"totalItems"`
	TotalAmount float64 `json:"totalAmount"`
	ItemsCount  int     `json:"itemsCount"`
}
