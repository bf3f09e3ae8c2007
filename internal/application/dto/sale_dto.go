package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest one position of a checkout. Price comes from the catalog.
type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CreateSaleRequest checkout payload.
type CreateSaleRequest struct {
	KioskID       string            `json:"kiosk_id"`
	PaymentMethod string            `json:"payment_method"` // "cash" | "card"
	Items         []SaleItemRequest `json:"items"`
}

// SaleItemResponse one line of a recorded sale.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse a recorded sale with its lines.
type SaleResponse struct {
	ID            string             `json:"id"`
	KioskID       string             `json:"kiosk_id"`
	SellerID      string             `json:"seller_id"`
	PaymentMethod string             `json:"payment_method"`
	Total         decimal.Decimal    `json:"total"`
	CreatedAt     time.Time          `json:"created_at"`
	Items         []SaleItemResponse `json:"items"`
}

// SaleListResponse paged list of sales (without lines).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
