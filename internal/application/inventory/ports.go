package inventory

import (
	"context"

	"github.com/vapetrack/kiosk-api/internal/domain/repository"
)

// TxRunner runs fn inside one database transaction with repositories bound
// to it. Any error from fn rolls everything back.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		sessions repository.InventorySessionRepository,
		items repository.InventoryItemRepository,
		products repository.ProductRepository,
	) error) error
}

// Notifier delivers a human-readable message to the staff chat.
// Implementations must be safe to call after commit; failures are logged,
// never surfaced to the API caller.
type Notifier interface {
	Send(ctx context.Context, text string) error
}
