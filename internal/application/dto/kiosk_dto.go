package dto

import "time"

// CreateKioskRequest new outlet.
type CreateKioskRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// UpdateKioskRequest partial update; nil fields are left untouched.
type UpdateKioskRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Active  *bool   `json:"active"`
}

// KioskResponse outlet representation.
type KioskResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// KioskListResponse paged list of outlets.
type KioskListResponse struct {
	Items []KioskResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
