package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest new operational cost.
type CreateExpenseRequest struct {
	KioskID  string          `json:"kiosk_id"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Comment  string          `json:"comment"`
	SpentAt  *time.Time      `json:"spent_at"` // defaults to now
}

// UpdateExpenseRequest partial update; nil fields are left untouched.
type UpdateExpenseRequest struct {
	Category *string          `json:"category"`
	Amount   *decimal.Decimal `json:"amount"`
	Comment  *string          `json:"comment"`
	SpentAt  *time.Time       `json:"spent_at"`
}

// ExpenseResponse operational cost representation.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	KioskID   string          `json:"kiosk_id"`
	CreatedBy string          `json:"created_by"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Comment   string          `json:"comment,omitempty"`
	SpentAt   time.Time       `json:"spent_at"`
	CreatedAt time.Time       `json:"created_at"`
}

// ExpenseListResponse paged list of expenses.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
