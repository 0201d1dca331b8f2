package domain

import "time"

// Shopkeeper is an independent shop owner on the marketplace.
type Shopkeeper struct {
	ID           string
	Email        string
	PasswordHash string
	ShopName     string
	Address      string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
