package repository

import "github.com/vapetrack/kiosk-api/internal/domain/entity"

// KioskRepository persistence port for outlets.
type KioskRepository interface {
	Create(kiosk *entity.Kiosk) error
	GetByID(id string) (*entity.Kiosk, error)
	List(limit, offset int) ([]*entity.Kiosk, error)
	Update(kiosk *entity.Kiosk) error
}
