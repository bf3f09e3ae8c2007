package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an operational cost booked against a kiosk (rent, supplies,
// utilities, anything the admin tracks).
type Expense struct {
	ID        string
	KioskID   string
	CreatedBy string
	Category  string
	Amount    decimal.Decimal
	Comment   string
	SpentAt   time.Time
	CreatedAt time.Time
}
