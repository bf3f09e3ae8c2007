package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest new catalog item. Quantity starts as given (stock
// brought in at registration); later changes go through sales and inventory
// sessions.
type CreateProductRequest struct {
	KioskID       string          `json:"kiosk_id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Quantity      int             `json:"quantity"`
}

// UpdateProductRequest partial update; nil fields are left untouched.
// Quantity is deliberately absent: stock moves only via sales and inventory.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	Category      *string          `json:"category"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
}

// ProductResponse catalog item representation.
type ProductResponse struct {
	ID            string          `json:"id"`
	KioskID       string          `json:"kiosk_id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Quantity      int             `json:"quantity"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse paged list of catalog items.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ImportResult summary of a CSV import.
type ImportResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}
