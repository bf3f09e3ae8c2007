package repository

import "github.com/vapetrack/kiosk-api/internal/domain/entity"

// UserRepository persistence port for employee accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
}
