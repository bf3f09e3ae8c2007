package usecase

import (
	"context"
	"time"

	"github.com/vapetrack/kiosk-api/internal/application/dto"
	"github.com/vapetrack/kiosk-api/internal/domain"
	"github.com/vapetrack/kiosk-api/internal/domain/repository"
)

// Dashboard defaults applied when the query string leaves them out.
const (
	defaultPeriodDays        = 30
	defaultTopProductsLimit  = 10
	defaultLowStockThreshold = 5
	defaultDiscrepancyLimit  = 10
)

// DashboardUseCase assembles the admin overview from the aggregation
// queries. All methods are read-only.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Overview returns every dashboard panel in one call. kioskID == "" means
// the whole chain; a zero period defaults to the last 30 days.
func (uc *DashboardUseCase) Overview(ctx context.Context, kioskID string, from, to time.Time) (*dto.DashboardOverview, error) {
	if to.IsZero() {
		to = time.Now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -defaultPeriodDays)
	}
	if !from.Before(to) {
		return nil, domain.ErrInvalidInput
	}

	revenue, err := uc.repo.RevenueByDay(ctx, kioskID, from, to)
	if err != nil {
		return nil, err
	}
	top, err := uc.repo.TopProducts(ctx, kioskID, from, to, defaultTopProductsLimit)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.repo.ExpensesByCategory(ctx, kioskID, from, to)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.repo.LowStock(ctx, kioskID, defaultLowStockThreshold)
	if err != nil {
		return nil, err
	}
	discrepancies, err := uc.repo.RecentDiscrepancies(ctx, kioskID, defaultDiscrepancyLimit)
	if err != nil {
		return nil, err
	}

	overview := &dto.DashboardOverview{
		RevenueByDay:  make([]dto.DayRevenueDTO, 0, len(revenue)),
		TopProducts:   make([]dto.TopProductDTO, 0, len(top)),
		Expenses:      make([]dto.CategoryExpenseDTO, 0, len(expenses)),
		LowStock:      make([]dto.LowStockDTO, 0, len(lowStock)),
		Discrepancies: make([]dto.DiscrepancyDTO, 0, len(discrepancies)),
	}
	for _, r := range revenue {
		overview.RevenueByDay = append(overview.RevenueByDay, dto.DayRevenueDTO{
			Day:       r.Day.Format("2006-01-02"),
			SaleCount: r.SaleCount,
			Revenue:   r.Revenue,
		})
	}
	for _, t := range top {
		overview.TopProducts = append(overview.TopProducts, dto.TopProductDTO{
			ProductID:    t.ProductID,
			Name:         t.Name,
			QuantitySold: t.QuantitySold,
			Revenue:      t.Revenue,
		})
	}
	for _, e := range expenses {
		overview.Expenses = append(overview.Expenses, dto.CategoryExpenseDTO{
			Category: e.Category,
			Total:    e.Total,
		})
	}
	for _, l := range lowStock {
		overview.LowStock = append(overview.LowStock, dto.LowStockDTO{
			ProductID: l.ProductID,
			KioskID:   l.KioskID,
			SKU:       l.SKU,
			Name:      l.Name,
			Quantity:  l.Quantity,
		})
	}
	for _, d := range discrepancies {
		overview.Discrepancies = append(overview.Discrepancies, dto.DiscrepancyDTO{
			SessionID:     d.SessionID,
			KioskID:       d.KioskID,
			CompletedAt:   d.CompletedAt,
			ItemsCounted:  d.ItemsCounted,
			TotalShortage: d.TotalShortage,
			TotalSurplus:  d.TotalSurplus,
		})
	}
	return overview, nil
}
