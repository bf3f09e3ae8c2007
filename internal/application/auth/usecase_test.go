package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vapetrack/kiosk-api/internal/application/auth"
	"github.com/vapetrack/kiosk-api/internal/application/dto"
	"github.com/vapetrack/kiosk-api/internal/domain"
	"github.com/vapetrack/kiosk-api/internal/domain/entity"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) { return nil, nil }

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "kiosk-api-test"}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWT)

	user, err := uc.Register(dto.RegisterRequest{
		Email:    "olena@example.com",
		Password: "secret123",
		Name:     "Олена",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, user.Role, "role defaults to seller")
	assert.NotEqual(t, "secret123", repo.byEmail["olena@example.com"].PasswordHash)

	resp, err := uc.Login(dto.LoginRequest{Email: "olena@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.c", Password: "x1234567"})
	require.NoError(t, err)
	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.c", Password: "x1234567"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_InvalidRole(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWT)
	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.c", Password: "x1234567", Role: "owner"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWT)
	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.c", Password: "correct1"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.c", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWT)
	_, err := uc.Login(dto.LoginRequest{Email: "nobody@b.c", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_BlockedUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWT)
	_, err := uc.Register(dto.RegisterRequest{Email: "a@b.c", Password: "x1234567"})
	require.NoError(t, err)
	repo.byEmail["a@b.c"].Status = "blocked"

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.c", Password: "x1234567"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
