package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product availability statuses. Status is always derived from Quantity:
// zero on hand means out_of_stock.
const (
	ProductAvailable  = "available"
	ProductOutOfStock = "out_of_stock"
)

// StatusForQuantity returns the availability status for an on-hand quantity.
func StatusForQuantity(quantity int) string {
	if quantity <= 0 {
		return ProductOutOfStock
	}
	return ProductAvailable
}

// Product is a catalog item of a single kiosk. SKU is unique per kiosk.
// Quantity is a piece count; prices are money values.
type Product struct {
	ID            string
	KioskID       string
	SKU           string
	Name          string
	Category      string
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	Quantity      int
	Status        string // "available" | "out_of_stock"
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
