package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/vapetrack/kiosk-api/internal/application/dto"
	"github.com/vapetrack/kiosk-api/internal/domain"
	"github.com/vapetrack/kiosk-api/internal/domain/entity"
	"github.com/vapetrack/kiosk-api/internal/domain/repository"
)

// ExpenseUseCase operational cost bookkeeping per kiosk.
type ExpenseUseCase struct {
	repo      repository.ExpenseRepository
	kioskRepo repository.KioskRepository
}

// NewExpenseUseCase builds the use case.
func NewExpenseUseCase(repo repository.ExpenseRepository, kioskRepo repository.KioskRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, kioskRepo: kioskRepo}
}

// Create books a cost. SpentAt defaults to now.
func (uc *ExpenseUseCase) Create(createdBy string, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.KioskID == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	kiosk, err := uc.kioskRepo.GetByID(in.KioskID)
	if err != nil {
		return nil, err
	}
	if kiosk == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	spentAt := now
	if in.SpentAt != nil {
		spentAt = *in.SpentAt
	}
	expense := &entity.Expense{
		ID:        uuid.New().String(),
		KioskID:   in.KioskID,
		CreatedBy: createdBy,
		Category:  in.Category,
		Amount:    in.Amount,
		Comment:   in.Comment,
		SpentAt:   spentAt,
		CreatedAt: now,
	}
	if err := uc.repo.Create(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// GetByID returns one expense.
func (uc *ExpenseUseCase) GetByID(id string) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	return toExpenseResponse(expense), nil
}

// Update edits an expense.
func (uc *ExpenseUseCase) Update(id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, domain.ErrNotFound
	}
	if in.Category != nil {
		if *in.Category == "" {
			return nil, domain.ErrInvalidInput
		}
		expense.Category = *in.Category
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		expense.Amount = *in.Amount
	}
	if in.Comment != nil {
		expense.Comment = *in.Comment
	}
	if in.SpentAt != nil {
		expense.SpentAt = *in.SpentAt
	}
	if err := uc.repo.Update(expense); err != nil {
		return nil, err
	}
	return toExpenseResponse(expense), nil
}

// List returns expenses of a kiosk in a period, newest first.
func (uc *ExpenseUseCase) List(kioskID string, from, to *time.Time, limit, offset int) (*dto.ExpenseListResponse, error) {
	list, err := uc.repo.ListByKiosk(kioskID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toExpenseResponse(e))
	}
	return &dto.ExpenseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete removes an expense.
func (uc *ExpenseUseCase) Delete(id string) error {
	expense, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if expense == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:        e.ID,
		KioskID:   e.KioskID,
		CreatedBy: e.CreatedBy,
		Category:  e.Category,
		Amount:    e.Amount,
		Comment:   e.Comment,
		SpentAt:   e.SpentAt,
		CreatedAt: e.CreatedAt,
	}
}
