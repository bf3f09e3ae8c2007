package sales

import (
	"context"

	"github.com/vapetrack/kiosk-api/internal/domain/entity"
	"github.com/vapetrack/kiosk-api/internal/domain/repository"
)

// TxRunner executes a checkout atomically: stock decrement and sale insert
// either both land or neither does.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		sales repository.SaleRepository,
		products repository.ProductRepository,
	) error) error
}

// Notifier pushes out-of-band messages (large-sale alerts) to the staff chat.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// ReceiptGenerator renders a sale into a printable PDF.
type ReceiptGenerator interface {
	Generate(sale *entity.Sale, items []*entity.SaleItem, kioskName string) ([]byte, error)
}
