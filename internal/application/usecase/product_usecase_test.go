package usecase_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vapetrack/kiosk-api/internal/application/dto"
	"github.com/vapetrack/kiosk-api/internal/application/usecase"
	"github.com/vapetrack/kiosk-api/internal/domain"
	"github.com/vapetrack/kiosk-api/internal/domain/entity"
	"github.com/vapetrack/kiosk-api/internal/domain/repository"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByKioskAndSKU(kioskID, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.KioskID == kioskID && p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if filter.KioskID != "" && p.KioskID != filter.KioskID {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListByKiosk(kioskID string) ([]*entity.Product, error) {
	return r.List(repository.ProductFilter{KioskID: kioskID})
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	stored, ok := r.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	quantity, status := stored.Quantity, stored.Status
	*stored = *p
	stored.Quantity, stored.Status = quantity, status
	return nil
}

func (r *fakeProductRepo) SetQuantity(id string, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	p.Status = entity.StatusForQuantity(quantity)
	return nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeKioskRepo struct {
	kiosks map[string]*entity.Kiosk
}

func newFakeKioskRepo(ids ...string) *fakeKioskRepo {
	r := &fakeKioskRepo{kiosks: map[string]*entity.Kiosk{}}
	for _, id := range ids {
		r.kiosks[id] = &entity.Kiosk{ID: id, Name: "Кіоск " + id, Active: true}
	}
	return r
}

func (r *fakeKioskRepo) Create(k *entity.Kiosk) error {
	cp := *k
	r.kiosks[k.ID] = &cp
	return nil
}

func (r *fakeKioskRepo) GetByID(id string) (*entity.Kiosk, error) {
	k, ok := r.kiosks[id]
	if !ok {
		return nil, nil
	}
	cp := *k
	return &cp, nil
}

func (r *fakeKioskRepo) List(limit, offset int) ([]*entity.Kiosk, error) { return nil, nil }

func (r *fakeKioskRepo) Update(k *entity.Kiosk) error {
	cp := *k
	r.kiosks[k.ID] = &cp
	return nil
}

const testKiosk = "kiosk-1"

func TestProductCreate_DerivesStatus(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), newFakeKioskRepo(testKiosk))

	created, err := uc.Create(dto.CreateProductRequest{
		KioskID:   testKiosk,
		SKU:       "VPE-001",
		Name:      "Рідина 30мл",
		SalePrice: decimal.RequireFromString("250.00"),
		Quantity:  0,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductOutOfStock, created.Status)

	created2, err := uc.Create(dto.CreateProductRequest{
		KioskID:   testKiosk,
		SKU:       "VPE-002",
		Name:      "Под-система",
		SalePrice: decimal.RequireFromString("1200.00"),
		Quantity:  7,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductAvailable, created2.Status)
}

func TestProductCreate_DuplicateSKU(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), newFakeKioskRepo(testKiosk))

	_, err := uc.Create(dto.CreateProductRequest{KioskID: testKiosk, SKU: "VPE-001", Name: "A", Quantity: 1})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductRequest{KioskID: testKiosk, SKU: "VPE-001", Name: "B", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUpdate_CannotTouchQuantity(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, newFakeKioskRepo(testKiosk))

	created, err := uc.Create(dto.CreateProductRequest{KioskID: testKiosk, SKU: "VPE-001", Name: "A", Quantity: 9})
	require.NoError(t, err)

	newName := "Перейменовано"
	updated, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Перейменовано", updated.Name)
	assert.Equal(t, 9, updated.Quantity, "update must not change stock")
}

func TestImportCSV_CreatesAndUpdates(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, newFakeKioskRepo(testKiosk))

	_, err := uc.Create(dto.CreateProductRequest{
		KioskID:   testKiosk,
		SKU:       "VPE-001",
		Name:      "Стара назва",
		SalePrice: decimal.RequireFromString("100.00"),
		Quantity:  2,
	})
	require.NoError(t, err)

	csvData := strings.Join([]string{
		"sku,name,category,purchase_price,sale_price,quantity",
		"VPE-001,Нова назва,liquids,80.00,150.00,12",
		"VPE-002,Новий товар,devices,500.00,900.00,3",
		"VPE-003,,liquids,10.00,20.00,1",       // empty name, skipped
		"VPE-004,Зламаний,liquids,abc,20.00,1", // bad price, skipped
	}, "\n")

	result, err := uc.ImportCSV(testKiosk, strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, result.Errors, 2)

	updated, err := repo.GetByKioskAndSKU(testKiosk, "VPE-001")
	require.NoError(t, err)
	assert.Equal(t, "Нова назва", updated.Name)
	assert.Equal(t, 12, updated.Quantity)
	assert.Equal(t, entity.ProductAvailable, updated.Status)
}

func TestImportCSV_BadHeaderRejected(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), newFakeKioskRepo(testKiosk))
	_, err := uc.ImportCSV(testKiosk, strings.NewReader("sku,title\nVPE-001,x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExportCSV_RoundTripsThroughImport(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, newFakeKioskRepo(testKiosk))

	_, err := uc.Create(dto.CreateProductRequest{
		KioskID:       testKiosk,
		SKU:           "VPE-001",
		Name:          "Рідина, полуниця", // comma must survive quoting
		Category:      "liquids",
		PurchasePrice: decimal.RequireFromString("80.00"),
		SalePrice:     decimal.RequireFromString("150.00"),
		Quantity:      4,
	})
	require.NoError(t, err)

	exported, err := uc.ExportCSV(testKiosk)
	require.NoError(t, err)

	other := "kiosk-2"
	uc2 := usecase.NewProductUseCase(repo, newFakeKioskRepo(other))
	result, err := uc2.ImportCSV(other, strings.NewReader(string(exported)))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Zero(t, result.Skipped)

	imported, err := repo.GetByKioskAndSKU(other, "VPE-001")
	require.NoError(t, err)
	assert.Equal(t, "Рідина, полуниця", imported.Name)
	assert.Equal(t, 4, imported.Quantity)
}

func TestImportCSV_UnknownKiosk(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), newFakeKioskRepo(testKiosk))
	_, err := uc.ImportCSV("missing", strings.NewReader("sku,name,category,purchase_price,sale_price,quantity"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
