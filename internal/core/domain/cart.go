package domain

import "time"

// CartItem is one product entry in a cart. Price is a snapshot taken when the
// item was inserted or last explicitly updated; it does not follow catalog
// price changes.
type CartItem struct {
	ProductID string
	Quantity  int
	Price     float64
}

// Cart is the single active cart of a user. Items are stored as an ordered
// list in the document but are only ever addressed by product id through the
// accessors below; there is at most one entry per product.
//
// Version backs the conditional save in the repository: every persisted write
// bumps it, and a save against a stale version fails with ErrCartConflict.
type Cart struct {
	ID        string
	UserID    string
	Items     []CartItem
	IsActive  bool
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item returns the entry for productID, if present.
func (c *Cart) Item(productID string) (CartItem, bool) {
	for _, it := range c.Items {
		if it.ProductID == productID {
			return it, true
		}
	}
	return CartItem{}, false
}

// SetItem inserts or replaces the entry for item.ProductID, keeping at most
// one entry per product.
func (c *Cart) SetItem(item CartItem) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i] = item
			return
		}
	}
	c.Items = append(c.Items, item)
}

// RemoveItem deletes the entry for productID and reports whether it existed.
func (c *Cart) RemoveItem(productID string) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// ClearItems empties the cart. Idempotent.
func (c *Cart) ClearItems() {
	c.Items = c.Items[:0]
}

// TotalItems is the sum of all item quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// TotalAmount is the sum of quantity times snapshot price over all items.
func (c *Cart) TotalAmount() float64 {
	total := 0.0
	for _, it := range c.Items {
		total += float64(it.Quantity) * it.Price
	}
	return total
}
