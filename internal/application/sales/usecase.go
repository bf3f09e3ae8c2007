package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/vapetrack/kiosk-api/internal/application/dto"
	"github.com/vapetrack/kiosk-api/internal/domain"
	"github.com/vapetrack/kiosk-api/internal/domain/entity"
	"github.com/vapetrack/kiosk-api/internal/domain/repository"
)

// UseCase handles checkouts: each sale locks its products, verifies stock,
// decrements on-hand quantities and records the sale in one transaction.
type UseCase struct {
	txRunner    TxRunner
	saleRepo    repository.SaleRepository
	kioskRepo   repository.KioskRepository
	receipts    ReceiptGenerator
	notifier    Notifier
	alertAmount decimal.Decimal // sales at or above this trigger a chat alert; zero disables
}

// NewUseCase builds the use case. notifier and receipts may be nil.
func NewUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	kioskRepo repository.KioskRepository,
	receipts ReceiptGenerator,
	notifier Notifier,
	alertAmount decimal.Decimal,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		saleRepo:    saleRepo,
		kioskRepo:   kioskRepo,
		receipts:    receipts,
		notifier:    notifier,
		alertAmount: alertAmount,
	}
}

// Create records a checkout. Prices come from the catalog, never from the
// request; each line locks its product row so concurrent sales cannot
// oversell the same stock.
func (uc *UseCase) Create(ctx context.Context, sellerID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.KioskID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentMethod != entity.PaymentCash && in.PaymentMethod != entity.PaymentCard {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	sale := &entity.Sale{
		ID:            uuid.New().String(),
		KioskID:       in.KioskID,
		SellerID:      sellerID,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     time.Now(),
	}

	var lines []*entity.SaleItem
	err := uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		products repository.ProductRepository,
	) error {
		total := decimal.Zero
		lines = make([]*entity.SaleItem, 0, len(in.Items))
		for _, it := range in.Items {
			p, err := products.GetForUpdate(it.ProductID)
			if err != nil {
				return err
			}
			if p == nil || p.KioskID != in.KioskID {
				return domain.ErrNotFound
			}
			if p.Quantity < it.Quantity {
				return domain.ErrInsufficientStock
			}
			if err := products.SetQuantity(p.ID, p.Quantity-it.Quantity); err != nil {
				return err
			}
			subtotal := p.SalePrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
			lines = append(lines, &entity.SaleItem{
				ID:          uuid.New().String(),
				SaleID:      sale.ID,
				ProductID:   p.ID,
				ProductName: p.Name,
				Quantity:    it.Quantity,
				UnitPrice:   p.SalePrice,
				Subtotal:    subtotal,
			})
			total = total.Add(subtotal)
		}
		sale.Total = total
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		return saleRepo.CreateItems(lines)
	})
	if err != nil {
		return nil, err
	}

	uc.notifyLargeSale(ctx, sale, lines)
	return toSaleResponse(sale, lines), nil
}

// Get returns one sale with its lines.
func (uc *UseCase) Get(saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.ListItems(saleID)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items), nil
}

// List returns sales of a kiosk in a period, newest first, without lines.
func (uc *UseCase) List(kioskID string, from, to *time.Time, limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.ListByKiosk(kioskID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s, nil))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Receipt renders a sale's receipt as PDF bytes.
func (uc *UseCase) Receipt(saleID string) ([]byte, error) {
	if uc.receipts == nil {
		return nil, fmt.Errorf("receipt generator not configured")
	}
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.ListItems(saleID)
	if err != nil {
		return nil, err
	}
	kioskName := sale.KioskID
	if kiosk, err := uc.kioskRepo.GetByID(sale.KioskID); err == nil && kiosk != nil {
		kioskName = kiosk.Name
	}
	return uc.receipts.Generate(sale, items, kioskName)
}

// notifyLargeSale alerts the staff chat about checkouts at or above the
// configured amount. Best effort: runs after commit, errors only get logged.
func (uc *UseCase) notifyLargeSale(ctx context.Context, sale *entity.Sale, items []*entity.SaleItem) {
	if uc.notifier == nil || uc.alertAmount.IsZero() || sale.Total.LessThan(uc.alertAmount) {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Великий продаж: %s грн (%s)\n", sale.Total.StringFixed(2), sale.PaymentMethod)
	for _, it := range items {
		fmt.Fprintf(&b, "%s x%d\n", it.ProductName, it.Quantity)
	}
	if err := uc.notifier.Send(ctx, b.String()); err != nil {
		log.Error().Err(err).Str("sale_id", sale.ID).Msg("large sale notification failed")
	}
}

func toSaleItemResponse(it *entity.SaleItem) dto.SaleItemResponse {
	return dto.SaleItemResponse{
		ProductID:   it.ProductID,
		ProductName: it.ProductName,
		Quantity:    it.Quantity,
		UnitPrice:   it.UnitPrice,
		Subtotal:    it.Subtotal,
	}
}

func toSaleResponse(s *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID,
		KioskID:       s.KioskID,
		SellerID:      s.SellerID,
		PaymentMethod: s.PaymentMethod,
		Total:         s.Total,
		CreatedAt:     s.CreatedAt,
		Items:         make([]dto.SaleItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, toSaleItemResponse(it))
	}
	return resp
}
