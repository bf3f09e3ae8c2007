package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vapetrack/kiosk-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo read-only aggregation queries for the admin panels.
// Runs directly on the pool; nothing here mutates state.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository builds the adapter.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// RevenueByDay groups sales into calendar days. An empty kioskID aggregates
// the whole chain.
func (r *DashboardRepo) RevenueByDay(ctx context.Context, kioskID string, from, to time.Time) ([]repository.DayRevenue, error) {
	const query = `
	SELECT
	    date_trunc('day', s.created_at) AS day,
	    COUNT(*)                        AS sale_count,
	    COALESCE(SUM(s.total), 0)       AS revenue
	FROM sales s
	WHERE s.created_at >= $1 AND s.created_at < $2
	  AND ($3 = '' OR s.kiosk_id = $3::uuid)
	GROUP BY 1
	ORDER BY 1`

	rows, err := r.pool.Query(ctx, query, from, to, kioskID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.RevenueByDay: %w", err)
	}
	defer rows.Close()

	var results []repository.DayRevenue
	for rows.Next() {
		var row repository.DayRevenue
		if err := rows.Scan(&row.Day, &row.SaleCount, &row.Revenue); err != nil {
			return nil, fmt.Errorf("dashboard.RevenueByDay scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopProducts returns the `limit` best sellers by revenue for the period.
func (r *DashboardRepo) TopProducts(ctx context.Context, kioskID string, from, to time.Time, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    i.product_id,
	    i.product_name,
	    SUM(i.quantity)  AS quantity_sold,
	    SUM(i.subtotal)  AS revenue
	FROM sale_items i
	JOIN sales s ON s.id = i.sale_id
	WHERE s.created_at >= $1 AND s.created_at < $2
	  AND ($3 = '' OR s.kiosk_id = $3::uuid)
	GROUP BY i.product_id, i.product_name
	ORDER BY revenue DESC
	LIMIT $4`

	rows, err := r.pool.Query(ctx, query, from, to, kioskID, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.TopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductID, &row.Name, &row.QuantitySold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("dashboard.TopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ExpensesByCategory totals expenses per category for the period.
func (r *DashboardRepo) ExpensesByCategory(ctx context.Context, kioskID string, from, to time.Time) ([]repository.CategoryExpenseResult, error) {
	const query = `
	SELECT e.category, COALESCE(SUM(e.amount), 0) AS total
	FROM expenses e
	WHERE e.spent_at >= $1 AND e.spent_at < $2
	  AND ($3 = '' OR e.kiosk_id = $3::uuid)
	GROUP BY e.category
	ORDER BY total DESC`

	rows, err := r.pool.Query(ctx, query, from, to, kioskID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.ExpensesByCategory: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryExpenseResult
	for rows.Next() {
		var row repository.CategoryExpenseResult
		if err := rows.Scan(&row.Category, &row.Total); err != nil {
			return nil, fmt.Errorf("dashboard.ExpensesByCategory scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// LowStock lists products at or below the threshold, lowest first.
func (r *DashboardRepo) LowStock(ctx context.Context, kioskID string, threshold int) ([]repository.LowStockResult, error) {
	const query = `
	SELECT p.id, p.kiosk_id, p.sku, p.name, p.quantity
	FROM products p
	WHERE p.quantity <= $1
	  AND ($2 = '' OR p.kiosk_id = $2::uuid)
	ORDER BY p.quantity, p.name`

	rows, err := r.pool.Query(ctx, query, threshold, kioskID)
	if err != nil {
		return nil, fmt.Errorf("dashboard.LowStock: %w", err)
	}
	defer rows.Close()

	var results []repository.LowStockResult
	for rows.Next() {
		var row repository.LowStockResult
		if err := rows.Scan(&row.ProductID, &row.KioskID, &row.SKU, &row.Name, &row.Quantity); err != nil {
			return nil, fmt.Errorf("dashboard.LowStock scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// RecentDiscrepancies summarizes the latest completed inventory sessions:
// counted positions, total shortage and total surplus per session.
func (r *DashboardRepo) RecentDiscrepancies(ctx context.Context, kioskID string, limit int) ([]repository.DiscrepancyResult, error) {
	const query = `
	SELECT
	    s.id,
	    s.kiosk_id,
	    s.completed_at,
	    COUNT(i.id) FILTER (WHERE i.actual_quantity IS NOT NULL)          AS items_counted,
	    COALESCE(-SUM(i.difference) FILTER (WHERE i.difference < 0), 0)   AS total_shortage,
	    COALESCE(SUM(i.difference)  FILTER (WHERE i.difference > 0), 0)   AS total_surplus
	FROM inventory_sessions s
	JOIN inventory_items i ON i.session_id = s.id
	WHERE s.status = 'completed'
	  AND ($1 = '' OR s.kiosk_id = $1::uuid)
	GROUP BY s.id, s.kiosk_id, s.completed_at
	ORDER BY s.completed_at DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, kioskID, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.RecentDiscrepancies: %w", err)
	}
	defer rows.Close()

	var results []repository.DiscrepancyResult
	for rows.Next() {
		var row repository.DiscrepancyResult
		if err := rows.Scan(&row.SessionID, &row.KioskID, &row.CompletedAt,
			&row.ItemsCounted, &row.TotalShortage, &row.TotalSurplus); err != nil {
			return nil, fmt.Errorf("dashboard.RecentDiscrepancies scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
