package entity

import "time"

// Roles used in JWT claims and RBAC middleware.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

// User is an employee account. Sellers operate a kiosk; admins see everything.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // "admin" | "seller"
	Status       string // "active" | "blocked"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
