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

var _ repository.ExpenseRepository = (*ExpenseRepo)(nil)

// ExpenseRepo PostgreSQL adapter for operational costs (usable with pool or tx).
type ExpenseRepo struct {
	q Querier
}

// NewExpenseRepository builds the adapter. Pass a pool or a tx (Querier).
func NewExpenseRepository(q Querier) *ExpenseRepo {
	return &ExpenseRepo{q: q}
}

// Create persists a new expense.
func (r *ExpenseRepo) Create(expense *entity.Expense) error {
	query := `
		INSERT INTO expenses (id, kiosk_id, created_by, category, amount, comment, spent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.KioskID, expense.CreatedBy, expense.Category,
		expense.Amount, expense.Comment, expense.SpentAt, expense.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

// GetByID fetches an expense by ID. Returns (nil, nil) when absent.
func (r *ExpenseRepo) GetByID(id string) (*entity.Expense, error) {
	query := `
		SELECT id, kiosk_id, created_by, category, amount, comment, spent_at, created_at
		FROM expenses WHERE id = $1`
	var e entity.Expense
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.KioskID, &e.CreatedBy, &e.Category, &e.Amount, &e.Comment,
		&e.SpentAt, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expense: %w", err)
	}
	return &e, nil
}

// ListByKiosk returns expenses of a kiosk in a date range, newest first.
func (r *ExpenseRepo) ListByKiosk(kioskID string, from, to *time.Time, limit, offset int) ([]*entity.Expense, error) {
	query := `
		SELECT id, kiosk_id, created_by, category, amount, comment, spent_at, created_at
		FROM expenses WHERE kiosk_id = $1`
	args := []any{kioskID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND spent_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND spent_at < $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY spent_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var list []*entity.Expense
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.KioskID, &e.CreatedBy, &e.Category, &e.Amount,
			&e.Comment, &e.SpentAt, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update rewrites the editable fields.
func (r *ExpenseRepo) Update(expense *entity.Expense) error {
	query := `
		UPDATE expenses SET category = $2, amount = $3, comment = $4, spent_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		expense.ID, expense.Category, expense.Amount, expense.Comment, expense.SpentAt)
	if err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// Delete removes an expense by ID.
func (r *ExpenseRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}
