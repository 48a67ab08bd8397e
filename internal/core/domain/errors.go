package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrProductNotFound    = errors.New("product not found or inactive")
	ErrCartNotFound       = errors.New("cart not found")
	ErrItemNotFound       = errors.New("product not found in cart")
	ErrCartConflict       = errors.New("cart was modified concurrently")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
)

// InsufficientStockError rejects a cart mutation whose requested quantity
// exceeds the product's available stock. InCart is non-zero only on the
// add-aggregation path, where the existing cart quantity counts against the
// ceiling.
type InsufficientStockError struct {
	Available int
	Requested int
	InCart    int
}

func (e *InsufficientStockError) Error() string {
	if e.InCart > 0 {
		return fmt.Sprintf("insufficient stock for total quantity: available %d, in cart %d, requested %d",
			e.Available, e.InCart, e.Requested)
	}
	return fmt.Sprintf("insufficient stock: available %d, requested %d", e.Available, e.Requested)
}
