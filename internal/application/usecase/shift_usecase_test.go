package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vapetrack/kiosk-api/internal/application/dto"
	"github.com/vapetrack/kiosk-api/internal/application/usecase"
	"github.com/vapetrack/kiosk-api/internal/domain"
	"github.com/vapetrack/kiosk-api/internal/domain/entity"
)

type fakeShiftRepo struct {
	shifts map[string]*entity.Shift
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: map[string]*entity.Shift{}}
}

func (r *fakeShiftRepo) Create(s *entity.Shift) error {
	cp := *s
	r.shifts[s.ID] = &cp
	return nil
}

func (r *fakeShiftRepo) GetByID(id string) (*entity.Shift, error) {
	s, ok := r.shifts[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeShiftRepo) ListByKioskBetween(kioskID string, from, to time.Time) ([]*entity.Shift, error) {
	var out []*entity.Shift
	for _, s := range r.shifts {
		if s.KioskID == kioskID && s.Overlaps(from, to) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeShiftRepo) HasOverlap(kioskID, userID string, startsAt, endsAt time.Time, excludeID string) (bool, error) {
	for _, s := range r.shifts {
		if s.ID == excludeID || s.KioskID != kioskID || s.UserID != userID {
			continue
		}
		if s.Overlaps(startsAt, endsAt) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeShiftRepo) Update(s *entity.Shift) error {
	if _, ok := r.shifts[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	r.shifts[s.ID] = &cp
	return nil
}

func (r *fakeShiftRepo) Delete(id string) error {
	delete(r.shifts, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(ids ...string) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, id := range ids {
		r.users[id] = &entity.User{ID: id, Role: entity.RoleSeller, Status: "active"}
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error { return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }

func newShiftUseCase() (*usecase.ShiftUseCase, *fakeShiftRepo) {
	repo := newFakeShiftRepo()
	uc := usecase.NewShiftUseCase(repo, newFakeKioskRepo(testKiosk), newFakeUserRepo("seller-1", "seller-2"))
	return uc, repo
}

func at(hour int) time.Time {
	return time.Date(2026, 3, 10, hour, 0, 0, 0, time.UTC)
}

func TestShiftCreate_OverlapRejected(t *testing.T) {
	uc, _ := newShiftUseCase()

	_, err := uc.Create(dto.CreateShiftRequest{
		KioskID: testKiosk, UserID: "seller-1", StartsAt: at(9), EndsAt: at(14),
	})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateShiftRequest{
		KioskID: testKiosk, UserID: "seller-1", StartsAt: at(13), EndsAt: at(18),
	})
	assert.ErrorIs(t, err, domain.ErrShiftOverlap)
}

func TestShiftCreate_AdjacentShiftsAllowed(t *testing.T) {
	uc, _ := newShiftUseCase()

	_, err := uc.Create(dto.CreateShiftRequest{
		KioskID: testKiosk, UserID: "seller-1", StartsAt: at(9), EndsAt: at(14),
	})
	require.NoError(t, err)

	// Half-open intervals: 14:00 end and 14:00 start do not collide.
	_, err = uc.Create(dto.CreateShiftRequest{
		KioskID: testKiosk, UserID: "seller-1", StartsAt: at(14), EndsAt: at(20),
	})
	assert.NoError(t, err)
}

func TestShiftCreate_OtherSellerMayOverlap(t *testing.T) {
	uc, _ := newShiftUseCase()

	_, err := uc.Create(dto.CreateShiftRequest{
		KioskID: testKiosk, UserID: "seller-1", StartsAt: at(9), EndsAt: at(14),
	})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateShiftRequest{
		KioskID: testKiosk, UserID: "seller-2", StartsAt: at(10), EndsAt: at(15),
	})
	assert.NoError(t, err)
}

func TestShiftCreate_InvertedIntervalRejected(t *testing.T) {
	uc, _ := newShiftUseCase()
	_, err := uc.Create(dto.CreateShiftRequest{
		KioskID: testKiosk, UserID: "seller-1", StartsAt: at(14), EndsAt: at(9),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestShiftCreate_UnknownUser(t *testing.T) {
	uc, _ := newShiftUseCase()
	_, err := uc.Create(dto.CreateShiftRequest{
		KioskID: testKiosk, UserID: "ghost", StartsAt: at(9), EndsAt: at(14),
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestShiftUpdate_MoveWithinOwnSlot(t *testing.T) {
	uc, _ := newShiftUseCase()

	created, err := uc.Create(dto.CreateShiftRequest{
		KioskID: testKiosk, UserID: "seller-1", StartsAt: at(9), EndsAt: at(14),
	})
	require.NoError(t, err)

	// Shrinking a shift overlaps only itself, which HasOverlap must exclude.
	newEnd := at(12)
	updated, err := uc.Update(created.ID, dto.UpdateShiftRequest{EndsAt: &newEnd})
	require.NoError(t, err)
	assert.Equal(t, at(12), updated.EndsAt)
}

func TestShiftUpdate_MoveOntoAnotherShiftRejected(t *testing.T) {
	uc, _ := newShiftUseCase()

	_, err := uc.Create(dto.CreateShiftRequest{
		KioskID: testKiosk, UserID: "seller-1", StartsAt: at(9), EndsAt: at(12),
	})
	require.NoError(t, err)
	second, err := uc.Create(dto.CreateShiftRequest{
		KioskID: testKiosk, UserID: "seller-1", StartsAt: at(12), EndsAt: at(18),
	})
	require.NoError(t, err)

	newStart := at(11)
	_, err = uc.Update(second.ID, dto.UpdateShiftRequest{StartsAt: &newStart})
	assert.ErrorIs(t, err, domain.ErrShiftOverlap)
}
