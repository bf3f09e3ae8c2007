package repository

import (
	"time"

	"github.com/vapetrack/kiosk-api/internal/domain/entity"
)

// SaleRepository persistence port for checkouts.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateItems(items []*entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	ListItems(saleID string) ([]*entity.SaleItem, error)
	ListByKiosk(kioskID string, from, to *time.Time, limit, offset int) ([]*entity.Sale, error)
}
