package dto

import "time"

// CreateSessionRequest starts a stock count for a kiosk.
type CreateSessionRequest struct {
	KioskID string `json:"kiosk_id"`
	Notes   string `json:"notes"`
}

// RecordCountRequest records the counted quantity of one line item.
// ActualQuantity may be null to clear a previously entered count.
type RecordCountRequest struct {
	ActualQuantity *int   `json:"actual_quantity"`
	Notes          string `json:"notes"`
}

// InventoryItemResponse one line of a session.
type InventoryItemResponse struct {
	ID             string `json:"id"`
	SessionID      string `json:"session_id"`
	ProductID      string `json:"product_id"`
	SystemQuantity int    `json:"system_quantity"`
	ActualQuantity *int   `json:"actual_quantity"`
	Difference     *int   `json:"difference"`
	Notes          string `json:"notes,omitempty"`
}

// SessionResponse a session with its line items.
type SessionResponse struct {
	ID          string                  `json:"id"`
	KioskID     string                  `json:"kiosk_id"`
	CreatedBy   string                  `json:"created_by"`
	Status      string                  `json:"status"`
	Notes       string                  `json:"notes,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	CompletedAt *time.Time              `json:"completed_at"`
	Items       []InventoryItemResponse `json:"items"`
}

// SessionListResponse paged list of sessions (without items).
type SessionListResponse struct {
	Items []SessionResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
