package domain

import "time"

// Product is a catalog entry. Deletion is soft: IsActive flips to false and
// the product disappears from every read path that matters (catalog listings,
// stock checks), while historical cart snapshots keep referencing it.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	Image       string    `json:"image"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
