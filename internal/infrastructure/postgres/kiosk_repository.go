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

var _ repository.KioskRepository = (*KioskRepo)(nil)

// KioskRepo PostgreSQL adapter for outlets (usable with pool or tx).
type KioskRepo struct {
	q Querier
}

// NewKioskRepository builds the adapter. Pass a pool or a tx (Querier).
func NewKioskRepository(q Querier) *KioskRepo {
	return &KioskRepo{q: q}
}

// Create persists a new kiosk.
func (r *KioskRepo) Create(kiosk *entity.Kiosk) error {
	query := `
		INSERT INTO kiosks (id, name, address, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		kiosk.ID, kiosk.Name, kiosk.Address, kiosk.Active, kiosk.CreatedAt, kiosk.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert kiosk: %w", err)
	}
	return nil
}

// GetByID fetches a kiosk by ID. Returns (nil, nil) when absent.
func (r *KioskRepo) GetByID(id string) (*entity.Kiosk, error) {
	query := `SELECT id, name, address, active, created_at, updated_at FROM kiosks WHERE id = $1`
	var k entity.Kiosk
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&k.ID, &k.Name, &k.Address, &k.Active, &k.CreatedAt, &k.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kiosk: %w", err)
	}
	return &k, nil
}

// List returns kiosks with pagination.
func (r *KioskRepo) List(limit, offset int) ([]*entity.Kiosk, error) {
	query := `
		SELECT id, name, address, active, created_at, updated_at
		FROM kiosks ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list kiosks: %w", err)
	}
	defer rows.Close()

	var list []*entity.Kiosk
	for rows.Next() {
		var k entity.Kiosk
		if err := rows.Scan(&k.ID, &k.Name, &k.Address, &k.Active, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan kiosk: %w", err)
		}
		list = append(list, &k)
	}
	return list, rows.Err()
}

// Update rewrites the editable fields.
func (r *KioskRepo) Update(kiosk *entity.Kiosk) error {
	query := `
		UPDATE kiosks SET name = $2, address = $3, active = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		kiosk.ID, kiosk.Name, kiosk.Address, kiosk.Active, kiosk.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update kiosk: %w", err)
	}
	return nil
}
