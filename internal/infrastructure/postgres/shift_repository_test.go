package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingQuerier captures the SQL and arguments a repository sends so
// query building can be checked without a database.
type recordingQuerier struct {
	sql     string
	args    []any
	execErr error
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql, q.args = sql, args
	return pgconn.NewCommandTag("DELETE 1"), q.execErr
}

func (q *recordingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql, q.args = sql, args
	return nil, pgx.ErrNoRows
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql, q.args = sql, args
	return boolRow{}
}

type boolRow struct{}

func (boolRow) Scan(dest ...any) error {
	if b, ok := dest[0].(*bool); ok {
		*b = false
	}
	return nil
}

// id is a uuid column, so the exclusion clause must not be sent at all when
// no shift is being excluded: binding "" to a uuid parameter fails in pgx
// before Postgres even sees the query.
func TestHasOverlap_WithoutExcludeOmitsIDClause(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewShiftRepository(q)

	starts := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	_, err := repo.HasOverlap("kiosk-1", "user-1", starts, starts.Add(8*time.Hour), "")
	require.NoError(t, err)

	assert.NotContains(t, q.sql, "id <>")
	assert.Len(t, q.args, 4)
}

func TestHasOverlap_WithExcludeAppendsIDClause(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewShiftRepository(q)

	starts := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	_, err := repo.HasOverlap("kiosk-1", "user-1", starts, starts.Add(8*time.Hour), "shift-7")
	require.NoError(t, err)

	assert.Contains(t, q.sql, "id <> $5")
	require.Len(t, q.args, 5)
	assert.Equal(t, "shift-7", q.args[4])
}
