package repository

import "github.com/vapetrack/kiosk-api/internal/domain/entity"

// ProductFilter narrows List queries. Zero values mean "no filter";
// the adapter builds the WHERE clause dynamically from the set fields.
type ProductFilter struct {
	KioskID  string
	Category string
	Status   string
	Search   string // substring match on name, case-insensitive
	Limit    int
	Offset   int
}

// ProductRepository persistence port for the catalog. SetQuantity must also
// recompute the availability status from the new quantity.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByKioskAndSKU(kioskID, sku string) (*entity.Product, error)
	List(filter ProductFilter) ([]*entity.Product, error)
	ListByKiosk(kioskID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	SetQuantity(id string, quantity int) error
	GetForUpdate(id string) (*entity.Product, error)
	Delete(id string) error
}
