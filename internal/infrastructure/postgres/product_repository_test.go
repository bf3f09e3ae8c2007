package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vapetrack/kiosk-api/internal/domain"
)

func TestProductDelete_ReferencedByHistoryIsConflict(t *testing.T) {
	q := &recordingQuerier{execErr: &pgconn.PgError{Code: "23503", ConstraintName: "sale_items_product_id_fkey"}}
	repo := NewProductRepository(q)

	err := repo.Delete("prod-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProductDelete_OtherErrorsAreNotConflict(t *testing.T) {
	q := &recordingQuerier{execErr: errors.New("connection reset")}
	repo := NewProductRepository(q)

	err := repo.Delete("prod-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrConflict)
}
