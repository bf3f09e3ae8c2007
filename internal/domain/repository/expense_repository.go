package repository

import (
	"time"

	"github.com/vapetrack/kiosk-api/internal/domain/entity"
)

// ExpenseRepository persistence port for operational costs.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	ListByKiosk(kioskID string, from, to *time.Time, limit, offset int) ([]*entity.Expense, error)
	Update(expense *entity.Expense) error
	Delete(id string) error
}
