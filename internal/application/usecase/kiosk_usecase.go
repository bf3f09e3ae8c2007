package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/vapetrack/kiosk-api/internal/application/dto"
	"github.com/vapetrack/kiosk-api/internal/domain"
	"github.com/vapetrack/kiosk-api/internal/domain/entity"
	"github.com/vapetrack/kiosk-api/internal/domain/repository"
)

// KioskUseCase CRUD for outlets. Kiosks are deactivated, never deleted,
// because historical sales and sessions reference them.
type KioskUseCase struct {
	repo repository.KioskRepository
}

// NewKioskUseCase builds the use case.
func NewKioskUseCase(repo repository.KioskRepository) *KioskUseCase {
	return &KioskUseCase{repo: repo}
}

// Create registers an outlet.
func (uc *KioskUseCase) Create(in dto.CreateKioskRequest) (*dto.KioskResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	kiosk := &entity.Kiosk{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(kiosk); err != nil {
		return nil, err
	}
	return toKioskResponse(kiosk), nil
}

// GetByID returns one outlet.
func (uc *KioskUseCase) GetByID(id string) (*dto.KioskResponse, error) {
	kiosk, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if kiosk == nil {
		return nil, domain.ErrNotFound
	}
	return toKioskResponse(kiosk), nil
}

// Update edits an outlet; Active=false retires it.
func (uc *KioskUseCase) Update(id string, in dto.UpdateKioskRequest) (*dto.KioskResponse, error) {
	kiosk, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if kiosk == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		kiosk.Name = *in.Name
	}
	if in.Address != nil {
		kiosk.Address = *in.Address
	}
	if in.Active != nil {
		kiosk.Active = *in.Active
	}
	kiosk.UpdatedAt = time.Now()
	if err := uc.repo.Update(kiosk); err != nil {
		return nil, err
	}
	return toKioskResponse(kiosk), nil
}

// List returns outlets with pagination.
func (uc *KioskUseCase) List(limit, offset int) (*dto.KioskListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.KioskResponse, 0, len(list))
	for _, k := range list {
		items = append(items, *toKioskResponse(k))
	}
	return &dto.KioskListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toKioskResponse(k *entity.Kiosk) *dto.KioskResponse {
	if k == nil {
		return nil
	}
	return &dto.KioskResponse{
		ID:        k.ID,
		Name:      k.Name,
		Address:   k.Address,
		Active:    k.Active,
		CreatedAt: k.CreatedAt,
		UpdatedAt: k.UpdatedAt,
	}
}
