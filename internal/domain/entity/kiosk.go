package entity

import "time"

// Kiosk is a retail outlet of the chain. Products, sales, expenses and
// inventory sessions all reference a kiosk.
type Kiosk struct {
	ID        string
	Name      string
	Address   string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
