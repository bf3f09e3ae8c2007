package repository

import (
	"time"

	"github.com/vapetrack/kiosk-api/internal/domain/entity"
)

// InventorySessionRepository persistence port for stock-count sessions.
type InventorySessionRepository interface {
	Create(session *entity.InventorySession) error
	GetByID(id string) (*entity.InventorySession, error)
	ListByKiosk(kioskID, status string, limit, offset int) ([]*entity.InventorySession, error)
	// SetStatus updates status and completed_at together so the two never
	// drift apart across a partial update.
	SetStatus(id, status string, completedAt *time.Time) error
	Delete(id string) error
}

// InventoryItemRepository persistence port for session line items.
type InventoryItemRepository interface {
	BulkCreate(items []*entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	ListBySession(sessionID string) ([]*entity.InventoryItem, error)
	UpdateCount(item *entity.InventoryItem) error
	DeleteBySession(sessionID string) error
}
