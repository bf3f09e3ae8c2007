package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayRevenueDTO one point of the revenue chart.
type DayRevenueDTO struct {
	Day       string          `json:"day"` // YYYY-MM-DD
	SaleCount int64           `json:"sale_count"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// TopProductDTO one row of the top-products report.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"`
	QuantitySold int64           `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// CategoryExpenseDTO expense total per category.
type CategoryExpenseDTO struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// LowStockDTO product at or below the reorder threshold.
type LowStockDTO struct {
	ProductID string `json:"product_id"`
	KioskID   string `json:"kiosk_id"`
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// DiscrepancyDTO completed inventory session summary.
type DiscrepancyDTO struct {
	SessionID     string    `json:"session_id"`
	KioskID       string    `json:"kiosk_id"`
	CompletedAt   time.Time `json:"completed_at"`
	ItemsCounted  int64     `json:"items_counted"`
	TotalShortage int64     `json:"total_shortage"`
	TotalSurplus  int64     `json:"total_surplus"`
}

// DashboardOverview everything the admin landing page needs in one call.
type DashboardOverview struct {
	RevenueByDay  []DayRevenueDTO      `json:"revenue_by_day"`
	TopProducts   []TopProductDTO      `json:"top_products"`
	Expenses      []CategoryExpenseDTO `json:"expenses_by_category"`
	LowStock      []LowStockDTO        `json:"low_stock"`
	Discrepancies []DiscrepancyDTO     `json:"recent_discrepancies"`
}
