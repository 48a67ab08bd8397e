package ports

import "context"

// ProductDetails is the denormalized catalog snapshot attached to each cart
// item in responses, for client convenience. It reflects the catalog at read
// time, not the moment the item was added.
type ProductDetails struct {
	ID       string
	Name     string
	Price    float64
	Image    string
	Stock    int
	IsActive bool
}

// CartItemView is one cart entry plus its live product details. Product is
// nil when the catalog entry has vanished since the item was added.
type CartItemView struct {
	ProductID string
	Quantity  int
	Price     float64
	Product   *ProductDetails
}

// CartView is the cart as returned to clients, with derived totals.
type CartView struct {
	ID          string
	UserID      string
	Items       []CartItemView
	TotalItems  int
	TotalAmount float64
}

// CartSummary is the lightweight aggregate returned by Summary. A user with
// no cart gets all zeros, never an error.
type CartSummary struct {
	TotalItems  int
	TotalAmount float64
	ItemsCount  int
}

// CartService applies cart operations for an authenticated user, enforcing
// stock ceilings and per-product aggregation.
type CartService interface {
	// Get returns the user's cart, creating an empty one on first access.
	Get(ctx context.Context, userID string) (*CartView, error)
	// AddItem inserts quantity of a product, aggregating into an existing
	// entry. The aggregated total must fit the product's stock. The price
	// snapshot is taken only when the entry is new.
	AddItem(ctx context.Context, userID, productID string, quantity int) (*CartView, error)
	// UpdateItem overwrites an existing entry's quantity and restamps its
	// price snapshot from the catalog.
	UpdateItem(ctx context.Context, userID, productID string, quantity int) (*CartView, error)
	// RemoveItem deletes an entry outright.
	RemoveItem(ctx context.Context, userID, productID string) (*CartView, error)
	// Clear empties the cart. Idempotent on an already-empty cart, but a user
	// without a cart gets domain.ErrCartNotFound.
	Clear(ctx context.Context, userID string) (*CartView, error)
	Summary(ctx context.Context, userID string) (*CartSummary, error)
}
