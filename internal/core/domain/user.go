package domain

import "time"

// User models a registered customer. The password hash never leaves the
// backend; JSON serialization drops it.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Identity is the authenticated caller resolved from the credential pair.
type Identity struct {
	UserID string
	Email  string
}
