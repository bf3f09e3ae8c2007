package domain

import "errors"

// Domain sentinel errors (no external dependencies). Handlers translate
// these into HTTP statuses and localized messages.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict with current state")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrEditWindowExpired  = errors.New("edit window expired")
	ErrNotDraft           = errors.New("session is not a draft")
	ErrShiftOverlap       = errors.New("shift overlaps an existing one")
)
