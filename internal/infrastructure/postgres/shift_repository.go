package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/vapetrack/kiosk-api/internal/domain/entity"
	"github.com/vapetrack/kiosk-api/internal/domain/repository"
)

var _ repository.ShiftRepository = (*ShiftRepo)(nil)

// ShiftRepo PostgreSQL adapter for the employee schedule (usable with pool
// or tx).
type ShiftRepo struct {
	q Querier
}

// NewShiftRepository builds the adapter. Pass a pool or a tx (Querier).
func NewShiftRepository(q Querier) *ShiftRepo {
	return &ShiftRepo{q: q}
}

// Create persists a new shift.
func (r *ShiftRepo) Create(shift *entity.Shift) error {
	query := `
		INSERT INTO shifts (id, kiosk_id, user_id, starts_at, ends_at, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		shift.ID, shift.KioskID, shift.UserID, shift.StartsAt, shift.EndsAt,
		shift.Note, shift.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert shift: %w", err)
	}
	return nil
}

// GetByID fetches a shift by ID. Returns (nil, nil) when absent.
func (r *ShiftRepo) GetByID(id string) (*entity.Shift, error) {
	query := `
		SELECT id, kiosk_id, user_id, starts_at, ends_at, note, created_at
		FROM shifts WHERE id = $1`
	var s entity.Shift
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.KioskID, &s.UserID, &s.StartsAt, &s.EndsAt, &s.Note, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift: %w", err)
	}
	return &s, nil
}

// ListByKioskBetween returns shifts of a kiosk intersecting [from, to).
func (r *ShiftRepo) ListByKioskBetween(kioskID string, from, to time.Time) ([]*entity.Shift, error) {
	query := `
		SELECT id, kiosk_id, user_id, starts_at, ends_at, note, created_at
		FROM shifts
		WHERE kiosk_id = $1 AND starts_at < $3 AND ends_at > $2
		ORDER BY starts_at`
	rows, err := r.q.Query(context.Background(), query, kioskID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list shifts: %w", err)
	}
	defer rows.Close()

	var list []*entity.Shift
	for rows.Next() {
		var s entity.Shift
		if err := rows.Scan(&s.ID, &s.KioskID, &s.UserID, &s.StartsAt, &s.EndsAt,
			&s.Note, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// HasOverlap reports whether the user already has a shift at the kiosk
// intersecting [startsAt, endsAt). excludeID skips the shift being edited;
// it is appended only when set because id is a uuid column and an empty
// string is not a valid uuid value.
func (r *ShiftRepo) HasOverlap(kioskID, userID string, startsAt, endsAt time.Time, excludeID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM shifts
			WHERE kiosk_id = $1 AND user_id = $2
			  AND starts_at < $4 AND ends_at > $3`
	args := []any{kioskID, userID, startsAt, endsAt}
	if excludeID != "" {
		query += ` AND id <> $5`
		args = append(args, excludeID)
	}
	query += `)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, args...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check shift overlap: %w", err)
	}
	return exists, nil
}

// Update rewrites the editable fields.
func (r *ShiftRepo) Update(shift *entity.Shift) error {
	query := `UPDATE shifts SET starts_at = $2, ends_at = $3, note = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		shift.ID, shift.StartsAt, shift.EndsAt, shift.Note)
	if err != nil {
		return fmt.Errorf("update shift: %w", err)
	}
	return nil
}

// Delete removes a shift by ID.
func (r *ShiftRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shift: %w", err)
	}
	return nil
}
