package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DayRevenue is one point of the revenue-by-day chart.
type DayRevenue struct {
	Day       time.Time
	SaleCount int64
	Revenue   decimal.Decimal
}

// TopProductResult is one row of the top-products report.
type TopProductResult struct {
	ProductID    string
	Name         string
	QuantitySold int64
	Revenue      decimal.Decimal
}

// CategoryExpenseResult aggregates expenses per category.
type CategoryExpenseResult struct {
	Category string
	Total    decimal.Decimal
}

// LowStockResult is a product at or below the reorder threshold.
type LowStockResult struct {
	ProductID string
	KioskID   string
	SKU       string
	Name      string
	Quantity  int
}

// DiscrepancyResult summarizes one completed inventory session.
type DiscrepancyResult struct {
	SessionID     string
	KioskID       string
	CompletedAt   time.Time
	ItemsCounted  int64
	TotalShortage int64 // sum of negative differences, as a positive number
	TotalSurplus  int64 // sum of positive differences
}

// DashboardRepository read-only aggregation queries for the admin panels.
// kioskID == "" means "all kiosks".
type DashboardRepository interface {
	RevenueByDay(ctx context.Context, kioskID string, from, to time.Time) ([]DayRevenue, error)
	TopProducts(ctx context.Context, kioskID string, from, to time.Time, limit int) ([]TopProductResult, error)
	ExpensesByCategory(ctx context.Context, kioskID string, from, to time.Time) ([]CategoryExpenseResult, error)
	LowStock(ctx context.Context, kioskID string, threshold int) ([]LowStockResult, error)
	RecentDiscrepancies(ctx context.Context, kioskID string, limit int) ([]DiscrepancyResult, error)
}
