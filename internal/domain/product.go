package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a listing owned by a single shopkeeper with a mutable quantity.
type Product struct {
	ID           string
	ShopkeeperID string
	Name         string
	Description  string
	Price        decimal.Decimal
	Quantity     int
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
