package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/vapetrack/kiosk-api/internal/domain"
	"github.com/vapetrack/kiosk-api/internal/domain/entity"
	"github.com/vapetrack/kiosk-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo PostgreSQL adapter for session line items (usable with
// pool or tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository builds the adapter. Pass a pool or a tx.
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// BulkCreate inserts all line items of a freshly created session.
func (r *InventoryItemRepo) BulkCreate(items []*entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, session_id, product_id, system_quantity, actual_quantity, difference, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, it := range items {
		_, err := r.q.Exec(context.Background(), query,
			it.ID, it.SessionID, it.ProductID, it.SystemQuantity,
			it.ActualQuantity, it.Difference, it.Notes)
		if err != nil {
			return fmt.Errorf("insert inventory item: %w", err)
		}
	}
	return nil
}

// GetByID fetches a line item by ID. Returns (nil, nil) when absent.
func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `
		SELECT id, session_id, product_id, system_quantity, actual_quantity, difference, notes
		FROM inventory_items WHERE id = $1`
	var it entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.SessionID, &it.ProductID, &it.SystemQuantity,
		&it.ActualQuantity, &it.Difference, &it.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

// ListBySession returns all line items of a session.
func (r *InventoryItemRepo) ListBySession(sessionID string) ([]*entity.InventoryItem, error) {
	query := `
		SELECT i.id, i.session_id, i.product_id, i.system_quantity, i.actual_quantity, i.difference, i.notes
		FROM inventory_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.session_id = $1
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryItem
	for rows.Next() {
		var it entity.InventoryItem
		if err := rows.Scan(&it.ID, &it.SessionID, &it.ProductID, &it.SystemQuantity,
			&it.ActualQuantity, &it.Difference, &it.Notes); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// UpdateCount writes the counted quantity, difference and notes of one item.
func (r *InventoryItemRepo) UpdateCount(item *entity.InventoryItem) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE inventory_items SET actual_quantity = $2, difference = $3, notes = $4 WHERE id = $1`,
		item.ID, item.ActualQuantity, item.Difference, item.Notes)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteBySession removes every line item of a session.
func (r *InventoryItemRepo) DeleteBySession(sessionID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM inventory_items WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("delete inventory items: %w", err)
	}
	return nil
}
