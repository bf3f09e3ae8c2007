package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vapetrack/kiosk-api/internal/domain"
	"github.com/vapetrack/kiosk-api/internal/domain/entity"
	"github.com/vapetrack/kiosk-api/internal/domain/repository"
)

var _ repository.InventorySessionRepository = (*InventorySessionRepo)(nil)

// InventorySessionRepo PostgreSQL adapter for stock-count sessions (usable
// with pool or tx).
type InventorySessionRepo struct {
	q Querier
}

// NewInventorySessionRepository builds the adapter. Pass a pool or a tx.
func NewInventorySessionRepository(q Querier) *InventorySessionRepo {
	return &InventorySessionRepo{q: q}
}

// Create persists a new session.
func (r *InventorySessionRepo) Create(session *entity.InventorySession) error {
	query := `
		INSERT INTO inventory_sessions (id, kiosk_id, created_by, status, notes, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		session.ID, session.KioskID, session.CreatedBy, session.Status, session.Notes,
		session.CreatedAt, session.CompletedAt)
	if err != nil {
		return fmt.Errorf("insert inventory session: %w", err)
	}
	return nil
}

// GetByID fetches a session by ID. Returns (nil, nil) when absent.
func (r *InventorySessionRepo) GetByID(id string) (*entity.InventorySession, error) {
	query := `
		SELECT id, kiosk_id, created_by, status, notes, created_at, completed_at
		FROM inventory_sessions WHERE id = $1`
	var s entity.InventorySession
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.KioskID, &s.CreatedBy, &s.Status, &s.Notes, &s.CreatedAt, &s.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory session: %w", err)
	}
	return &s, nil
}

// ListByKiosk returns sessions of a kiosk, newest first, optionally filtered
// by status.
func (r *InventorySessionRepo) ListByKiosk(kioskID, status string, limit, offset int) ([]*entity.InventorySession, error) {
	query := `
		SELECT id, kiosk_id, created_by, status, notes, created_at, completed_at
		FROM inventory_sessions WHERE kiosk_id = $1`
	args := []any{kioskID}
	pos := 2
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory sessions: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventorySession
	for rows.Next() {
		var s entity.InventorySession
		if err := rows.Scan(&s.ID, &s.KioskID, &s.CreatedBy, &s.Status, &s.Notes,
			&s.CreatedAt, &s.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan inventory session: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// SetStatus updates status and completed_at in one statement.
func (r *InventorySessionRepo) SetStatus(id, status string, completedAt *time.Time) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE inventory_sessions SET status = $2, completed_at = $3 WHERE id = $1`,
		id, status, completedAt)
	if err != nil {
		return fmt.Errorf("set session status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a session row. Line items go separately (same transaction).
func (r *InventorySessionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory session: %w", err)
	}
	return nil
}
