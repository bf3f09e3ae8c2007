package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vapetrack/kiosk-api/internal/application/dto"
	"github.com/vapetrack/kiosk-api/internal/domain"
	"github.com/vapetrack/kiosk-api/internal/domain/entity"
	"github.com/vapetrack/kiosk-api/internal/domain/repository"
	"golang.org/x/text/unicode/norm"
)

// csvHeader is the column layout of catalog imports and exports.
var csvHeader = []string{"sku", "name", "category", "purchase_price", "sale_price", "quantity"}

// ProductUseCase catalog CRUD plus CSV import/export. Stock quantity is set
// at creation and import; afterwards it moves only through sales and
// inventory sessions.
type ProductUseCase struct {
	repo      repository.ProductRepository
	kioskRepo repository.KioskRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository, kioskRepo repository.KioskRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, kioskRepo: kioskRepo}
}

// Create registers a catalog item. SKU must be unique within the kiosk.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.KioskID == "" || in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	kiosk, err := uc.kioskRepo.GetByID(in.KioskID)
	if err != nil {
		return nil, err
	}
	if kiosk == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.GetByKioskAndSKU(in.KioskID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		KioskID:       in.KioskID,
		SKU:           in.SKU,
		Name:          norm.NFC.String(in.Name),
		Category:      in.Category,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Quantity:      in.Quantity,
		Status:        entity.StatusForQuantity(in.Quantity),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID returns one catalog item.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update edits name, category and prices. Quantity and status are absent
// from the request on purpose.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = norm.NFC.String(*in.Name)
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		if in.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SalePrice = *in.SalePrice
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List returns catalog items matching the filter.
func (uc *ProductUseCase) List(filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset},
	}, nil
}

// Delete removes a catalog item.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ImportCSV upserts catalog rows for a kiosk from CSV data. Rows match
// existing products by SKU; malformed rows are skipped and reported, the
// rest still land.
func (uc *ProductUseCase) ImportCSV(kioskID string, r io.Reader) (*dto.ImportResult, error) {
	kiosk, err := uc.kioskRepo.GetByID(kioskID)
	if err != nil {
		return nil, err
	}
	if kiosk == nil {
		return nil, domain.ErrNotFound
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !headerMatches(header) {
		return nil, domain.ErrInvalidInput
	}

	result := &dto.ImportResult{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("рядок %d: %v", line, err))
			continue
		}
		if err := uc.importRow(kioskID, record, result); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("рядок %d: %v", line, err))
		}
	}
	return result, nil
}

func (uc *ProductUseCase) importRow(kioskID string, record []string, result *dto.ImportResult) error {
	sku := strings.TrimSpace(record[0])
	name := norm.NFC.String(strings.TrimSpace(record[1]))
	if sku == "" || name == "" {
		return fmt.Errorf("порожній артикул або назва")
	}
	purchase, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil || purchase.IsNegative() {
		return fmt.Errorf("некоректна ціна закупівлі %q", record[3])
	}
	sale, err := decimal.NewFromString(strings.TrimSpace(record[4]))
	if err != nil || sale.IsNegative() {
		return fmt.Errorf("некоректна ціна продажу %q", record[4])
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(record[5]))
	if err != nil || quantity < 0 {
		return fmt.Errorf("некоректна кількість %q", record[5])
	}

	existing, err := uc.repo.GetByKioskAndSKU(kioskID, sku)
	if err != nil {
		return err
	}
	now := time.Now()
	if existing != nil {
		existing.Name = name
		existing.Category = strings.TrimSpace(record[2])
		existing.PurchasePrice = purchase
		existing.SalePrice = sale
		existing.UpdatedAt = now
		if err := uc.repo.Update(existing); err != nil {
			return err
		}
		if err := uc.repo.SetQuantity(existing.ID, quantity); err != nil {
			return err
		}
		result.Updated++
		return nil
	}
	product := &entity.Product{
		ID:            uuid.New().String(),
		KioskID:       kioskID,
		SKU:           sku,
		Name:          name,
		Category:      strings.TrimSpace(record[2]),
		PurchasePrice: purchase,
		SalePrice:     sale,
		Quantity:      quantity,
		Status:        entity.StatusForQuantity(quantity),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return err
	}
	result.Created++
	return nil
}

// ExportCSV writes the kiosk's catalog as CSV in the import layout, so an
// export can be edited and imported back.
func (uc *ProductUseCase) ExportCSV(kioskID string) ([]byte, error) {
	list, err := uc.repo.ListByKiosk(kioskID)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, p := range list {
		record := []string{
			p.SKU,
			p.Name,
			p.Category,
			p.PurchasePrice.StringFixed(2),
			p.SalePrice.StringFixed(2),
			strconv.Itoa(p.Quantity),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func headerMatches(header []string) bool {
	if len(header) != len(csvHeader) {
		return false
	}
	for i, col := range csvHeader {
		if strings.TrimSpace(strings.ToLower(header[i])) != col {
			return false
		}
	}
	return true
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		KioskID:       p.KioskID,
		SKU:           p.SKU,
		Name:          p.Name,
		Category:      p.Category,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		Quantity:      p.Quantity,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
