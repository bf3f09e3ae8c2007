package repository

import (
	"time"

	"github.com/vapetrack/kiosk-api/internal/domain/entity"
)

// ShiftRepository persistence port for the employee schedule.
type ShiftRepository interface {
	Create(shift *entity.Shift) error
	GetByID(id string) (*entity.Shift, error)
	ListByKioskBetween(kioskID string, from, to time.Time) ([]*entity.Shift, error)
	// HasOverlap reports whether the user already has a shift at the kiosk
	// intersecting [startsAt, endsAt). excludeID skips the shift being edited.
	HasOverlap(kioskID, userID string, startsAt, endsAt time.Time, excludeID string) (bool, error)
	Update(shift *entity.Shift) error
	Delete(id string) error
}
