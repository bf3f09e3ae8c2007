package dto

import "time"

// CreateShiftRequest new schedule entry.
type CreateShiftRequest struct {
	KioskID  string    `json:"kiosk_id"`
	UserID   string    `json:"user_id"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
	Note     string    `json:"note"`
}

// UpdateShiftRequest partial update; nil fields are left untouched.
type UpdateShiftRequest struct {
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	Note     *string    `json:"note"`
}

// ShiftResponse schedule entry representation.
type ShiftResponse struct {
	ID        string    `json:"id"`
	KioskID   string    `json:"kiosk_id"`
	UserID    string    `json:"user_id"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ShiftListResponse shifts of one kiosk for a period.
type ShiftListResponse struct {
	Items []ShiftResponse `json:"items"`
}
