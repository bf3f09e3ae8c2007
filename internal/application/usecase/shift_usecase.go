package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/vapetrack/kiosk-api/internal/application/dto"
	"github.com/vapetrack/kiosk-api/internal/domain"
	"github.com/vapetrack/kiosk-api/internal/domain/entity"
	"github.com/vapetrack/kiosk-api/internal/domain/repository"
)

// ShiftUseCase employee schedule per kiosk. A user cannot hold two
// overlapping shifts at the same kiosk.
type ShiftUseCase struct {
	repo      repository.ShiftRepository
	kioskRepo repository.KioskRepository
	userRepo  repository.UserRepository
}

// NewShiftUseCase builds the use case.
func NewShiftUseCase(repo repository.ShiftRepository, kioskRepo repository.KioskRepository, userRepo repository.UserRepository) *ShiftUseCase {
	return &ShiftUseCase{repo: repo, kioskRepo: kioskRepo, userRepo: userRepo}
}

// Create schedules a shift. Intervals are half-open: a shift ending at 14:00
// does not overlap one starting at 14:00.
func (uc *ShiftUseCase) Create(in dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	if in.KioskID == "" || in.UserID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.StartsAt.Before(in.EndsAt) {
		return nil, domain.ErrInvalidInput
	}
	kiosk, err := uc.kioskRepo.GetByID(in.KioskID)
	if err != nil {
		return nil, err
	}
	if kiosk == nil {
		return nil, domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	overlap, err := uc.repo.HasOverlap(in.KioskID, in.UserID, in.StartsAt, in.EndsAt, "")
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, domain.ErrShiftOverlap
	}
	shift := &entity.Shift{
		ID:        uuid.New().String(),
		KioskID:   in.KioskID,
		UserID:    in.UserID,
		StartsAt:  in.StartsAt,
		EndsAt:    in.EndsAt,
		Note:      in.Note,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(shift); err != nil {
		return nil, err
	}
	return toShiftResponse(shift), nil
}

// Update moves or annotates a shift, re-checking overlaps against every
// shift but the one being edited.
func (uc *ShiftUseCase) Update(id string, in dto.UpdateShiftRequest) (*dto.ShiftResponse, error) {
	shift, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, domain.ErrNotFound
	}
	if in.StartsAt != nil {
		shift.StartsAt = *in.StartsAt
	}
	if in.EndsAt != nil {
		shift.EndsAt = *in.EndsAt
	}
	if in.Note != nil {
		shift.Note = *in.Note
	}
	if !shift.StartsAt.Before(shift.EndsAt) {
		return nil, domain.ErrInvalidInput
	}
	overlap, err := uc.repo.HasOverlap(shift.KioskID, shift.UserID, shift.StartsAt, shift.EndsAt, shift.ID)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, domain.ErrShiftOverlap
	}
	if err := uc.repo.Update(shift); err != nil {
		return nil, err
	}
	return toShiftResponse(shift), nil
}

// List returns the kiosk's shifts intersecting [from, to).
func (uc *ShiftUseCase) List(kioskID string, from, to time.Time) (*dto.ShiftListResponse, error) {
	if kioskID == "" || !from.Before(to) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByKioskBetween(kioskID, from, to)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ShiftResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toShiftResponse(s))
	}
	return &dto.ShiftListResponse{Items: items}, nil
}

// Delete removes a shift from the schedule.
func (uc *ShiftUseCase) Delete(id string) error {
	shift, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if shift == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toShiftResponse(s *entity.Shift) *dto.ShiftResponse {
	if s == nil {
		return nil
	}
	return &dto.ShiftResponse{
		ID:        s.ID,
		KioskID:   s.KioskID,
		UserID:    s.UserID,
		StartsAt:  s.StartsAt,
		EndsAt:    s.EndsAt,
		Note:      s.Note,
		CreatedAt: s.CreatedAt,
	}
}
