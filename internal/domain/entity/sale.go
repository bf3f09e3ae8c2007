package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment methods accepted at the point of sale.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

// Sale is one checkout at a kiosk.
type Sale struct {
	ID            string
	KioskID       string
	SellerID      string
	PaymentMethod string // "cash" | "card"
	Total         decimal.Decimal
	CreatedAt     time.Time
}

// SaleItem is one line of a sale. ProductName is snapshotted at sale time so
// receipts survive later catalog edits.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
