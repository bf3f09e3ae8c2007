package sales_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vapetrack/kiosk-api/internal/application/dto"
	appsales "github.com/vapetrack/kiosk-api/internal/application/sales"
	"github.com/vapetrack/kiosk-api/internal/domain"
	"github.com/vapetrack/kiosk-api/internal/domain/entity"
	"github.com/vapetrack/kiosk-api/internal/domain/repository"
)

type fakeStore struct {
	kiosks    map[string]*entity.Kiosk
	products  map[string]*entity.Product
	sales     map[string]*entity.Sale
	saleItems map[string]*entity.SaleItem
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		kiosks:    map[string]*entity.Kiosk{},
		products:  map[string]*entity.Product{},
		sales:     map[string]*entity.Sale{},
		saleItems: map[string]*entity.SaleItem{},
	}
}

type fakeSaleRepo struct{ s *fakeStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.s.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) CreateItems(items []*entity.SaleItem) error {
	for _, it := range items {
		cp := *it
		r.s.saleItems[it.ID] = &cp
	}
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSaleRepo) ListItems(saleID string) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, it := range r.s.saleItems {
		if it.SaleID == saleID {
			cp := *it
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })
	return out, nil
}

func (r *fakeSaleRepo) ListByKiosk(kioskID string, from, to *time.Time, limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.s.sales {
		if s.KioskID != kioskID {
			continue
		}
		if from != nil && s.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && !s.CreatedAt.Before(*to) {
			continue
		}
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByKioskAndSKU(kioskID, sku string) (*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) List(_ repository.ProductFilter) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) ListByKiosk(kioskID string) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error                        { return nil }

func (r *fakeProductRepo) SetQuantity(id string, quantity int) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	p.Status = entity.StatusForQuantity(quantity)
	return nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

type fakeKioskRepo struct{ s *fakeStore }

func (r *fakeKioskRepo) Create(k *entity.Kiosk) error { return nil }

func (r *fakeKioskRepo) GetByID(id string) (*entity.Kiosk, error) {
	k, ok := r.s.kiosks[id]
	if !ok {
		return nil, nil
	}
	cp := *k
	return &cp, nil
}

func (r *fakeKioskRepo) List(limit, offset int) ([]*entity.Kiosk, error) { return nil, nil }
func (r *fakeKioskRepo) Update(k *entity.Kiosk) error                    { return nil }

// fakeTxRunner snapshots product quantities before fn and restores them on
// error, mimicking a rolled back transaction.
type fakeTxRunner struct{ s *fakeStore }

func (t *fakeTxRunner) RunSale(ctx context.Context, fn func(
	sales repository.SaleRepository,
	products repository.ProductRepository,
) error) error {
	snapshot := map[string]entity.Product{}
	for id, p := range t.s.products {
		snapshot[id] = *p
	}
	err := fn(&fakeSaleRepo{t.s}, &fakeProductRepo{t.s})
	if err != nil {
		for id := range t.s.products {
			v := snapshot[id]
			t.s.products[id] = &v
		}
		t.s.sales = map[string]*entity.Sale{}
		t.s.saleItems = map[string]*entity.SaleItem{}
	}
	return err
}

type capturingNotifier struct{ messages []string }

func (n *capturingNotifier) Send(_ context.Context, text string) error {
	n.messages = append(n.messages, text)
	return nil
}

const testKiosk = "kiosk-1"

func newUseCase(store *fakeStore, notifier appsales.Notifier, alert decimal.Decimal) *appsales.UseCase {
	return appsales.NewUseCase(
		&fakeTxRunner{store},
		&fakeSaleRepo{store},
		&fakeKioskRepo{store},
		nil,
		notifier,
		alert,
	)
}

func seedProduct(store *fakeStore, id string, quantity int, price string) {
	store.kiosks[testKiosk] = &entity.Kiosk{ID: testKiosk, Name: "Кіоск №1", Active: true}
	store.products[id] = &entity.Product{
		ID:        id,
		KioskID:   testKiosk,
		SKU:       "SKU-" + id,
		Name:      "Товар " + id,
		SalePrice: decimal.RequireFromString(price),
		Quantity:  quantity,
		Status:    entity.StatusForQuantity(quantity),
	}
}

func TestCreate_DecrementsStockAndTotals(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "p1", 10, "150.00")
	seedProduct(store, "p2", 4, "99.50")
	uc := newUseCase(store, nil, decimal.Zero)

	resp, err := uc.Create(context.Background(), "seller-1", dto.CreateSaleRequest{
		KioskID:       testKiosk,
		PaymentMethod: entity.PaymentCard,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(decimal.RequireFromString("399.50")), "total = %s", resp.Total)
	assert.Equal(t, 8, store.products["p1"].Quantity)
	assert.Equal(t, 3, store.products["p2"].Quantity)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Товар p1", resp.Items[0].ProductName)
}

func TestCreate_UsesCatalogPriceNotRequest(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "p1", 5, "200.00")
	uc := newUseCase(store, nil, decimal.Zero)

	resp, err := uc.Create(context.Background(), "seller-1", dto.CreateSaleRequest{
		KioskID:       testKiosk,
		PaymentMethod: entity.PaymentCash,
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 3}},
	})
	require.NoError(t, err)
	assert.True(t, resp.Items[0].UnitPrice.Equal(decimal.RequireFromString("200.00")))
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("600.00")))
}

func TestCreate_InsufficientStockRollsBack(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "p1", 10, "50.00")
	seedProduct(store, "p2", 1, "50.00")
	uc := newUseCase(store, nil, decimal.Zero)

	_, err := uc.Create(context.Background(), "seller-1", dto.CreateSaleRequest{
		KioskID:       testKiosk,
		PaymentMethod: entity.PaymentCash,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: 3},
			{ProductID: "p2", Quantity: 2}, // only 1 on hand
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, store.products["p1"].Quantity, "first line must be rolled back")
	assert.Empty(t, store.sales)
	assert.Empty(t, store.saleItems)
}

func TestCreate_SellingOutMarksOutOfStock(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "p1", 2, "75.00")
	uc := newUseCase(store, nil, decimal.Zero)

	_, err := uc.Create(context.Background(), "seller-1", dto.CreateSaleRequest{
		KioskID:       testKiosk,
		PaymentMethod: entity.PaymentCash,
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, store.products["p1"].Quantity)
	assert.Equal(t, entity.ProductOutOfStock, store.products["p1"].Status)
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "p1", 5, "10.00")
	uc := newUseCase(store, nil, decimal.Zero)
	ctx := context.Background()

	cases := []dto.CreateSaleRequest{
		{KioskID: "", PaymentMethod: entity.PaymentCash, Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}}},
		{KioskID: testKiosk, PaymentMethod: "crypto", Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}}},
		{KioskID: testKiosk, PaymentMethod: entity.PaymentCash},
		{KioskID: testKiosk, PaymentMethod: entity.PaymentCash, Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: 0}}},
		{KioskID: testKiosk, PaymentMethod: entity.PaymentCash, Items: []dto.SaleItemRequest{{ProductID: "p1", Quantity: -2}}},
	}
	for _, in := range cases {
		_, err := uc.Create(ctx, "seller-1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Equal(t, 5, store.products["p1"].Quantity)
}

func TestCreate_ProductOfAnotherKioskRejected(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "p1", 5, "10.00")
	store.products["p1"].KioskID = "other-kiosk"
	uc := newUseCase(store, nil, decimal.Zero)

	_, err := uc.Create(context.Background(), "seller-1", dto.CreateSaleRequest{
		KioskID:       testKiosk,
		PaymentMethod: entity.PaymentCash,
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_LargeSaleTriggersAlert(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "p1", 100, "500.00")
	notifier := &capturingNotifier{}
	uc := newUseCase(store, notifier, decimal.RequireFromString("1000"))

	_, err := uc.Create(context.Background(), "seller-1", dto.CreateSaleRequest{
		KioskID:       testKiosk,
		PaymentMethod: entity.PaymentCard,
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 3}},
	})
	require.NoError(t, err)
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "1500.00")
}

func TestCreate_SmallSaleNoAlert(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "p1", 100, "100.00")
	notifier := &capturingNotifier{}
	uc := newUseCase(store, notifier, decimal.RequireFromString("1000"))

	_, err := uc.Create(context.Background(), "seller-1", dto.CreateSaleRequest{
		KioskID:       testKiosk,
		PaymentMethod: entity.PaymentCash,
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Empty(t, notifier.messages)
}

func TestGet_ReturnsSaleWithLines(t *testing.T) {
	store := newFakeStore()
	seedProduct(store, "p1", 5, "120.00")
	uc := newUseCase(store, nil, decimal.Zero)

	created, err := uc.Create(context.Background(), "seller-1", dto.CreateSaleRequest{
		KioskID:       testKiosk,
		PaymentMethod: entity.PaymentCash,
		Items:         []dto.SaleItemRequest{{ProductID: "p1", Quantity: 2}},
	})
	require.NoError(t, err)

	got, err := uc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestGet_UnknownSale(t *testing.T) {
	uc := newUseCase(newFakeStore(), nil, decimal.Zero)
	_, err := uc.Get("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
