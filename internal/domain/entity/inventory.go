package entity

import "time"

// Inventory session statuses. A session starts as a draft, is completed when
// the count is applied to stock, and cancelled is terminal.
const (
	SessionDraft     = "draft"
	SessionCompleted = "completed"
	SessionCancelled = "cancelled"
)

// InventorySession is one stock-count of a kiosk. CompletedAt is refreshed
// on every completion and never cleared afterwards, so a later cancellation
// keeps the audit timestamp.
type InventorySession struct {
	ID          string
	KioskID     string
	CreatedBy   string
	Status      string // "draft" | "completed" | "cancelled"
	Notes       string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// InventoryItem is one counted position of a session. SystemQuantity is the
// on-hand quantity snapshotted when the session was created. Difference is
// ActualQuantity - SystemQuantity and is nil exactly when ActualQuantity is.
type InventoryItem struct {
	ID             string
	SessionID      string
	ProductID      string
	SystemQuantity int
	ActualQuantity *int
	Difference     *int
	Notes          string
}

// Recount sets the counted quantity and recomputes Difference.
func (it *InventoryItem) Recount(actual *int) {
	it.ActualQuantity = actual
	if actual == nil {
		it.Difference = nil
		return
	}
	d := *actual - it.SystemQuantity
	it.Difference = &d
}
