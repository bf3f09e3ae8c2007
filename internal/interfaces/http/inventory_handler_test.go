package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vapetrack/kiosk-api/internal/application/inventory"
	"github.com/vapetrack/kiosk-api/internal/domain/entity"
	apphttp "github.com/vapetrack/kiosk-api/internal/interfaces/http"
)

// listOnlySessionRepo records the ListByKiosk call; the other methods are
// never reached through the list route.
type listOnlySessionRepo struct {
	called    bool
	gotKiosk  string
	gotStatus string
	sessions  []*entity.InventorySession
}

func (r *listOnlySessionRepo) Create(*entity.InventorySession) error            { return nil }
func (r *listOnlySessionRepo) GetByID(string) (*entity.InventorySession, error) { return nil, nil }

func (r *listOnlySessionRepo) ListByKiosk(kioskID, status string, limit, offset int) ([]*entity.InventorySession, error) {
	r.called = true
	r.gotKiosk, r.gotStatus = kioskID, status
	return r.sessions, nil
}

func (r *listOnlySessionRepo) SetStatus(string, string, *time.Time) error { return nil }
func (r *listOnlySessionRepo) Delete(string) error                        { return nil }

func buildInventoryListApp(repo *listOnlySessionRepo) *fiber.App {
	app := fiber.New()
	h := apphttp.NewInventoryHandler(inventory.NewSessionUseCase(nil, repo, nil, nil, nil))
	app.Get("/api/inventory", h.List)
	return app
}

// kiosk_id is a uuid column; the list must not reach the repository with an
// empty value.
func TestInventoryList_MissingKioskIDRejected(t *testing.T) {
	repo := &listOnlySessionRepo{}
	app := buildInventoryListApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "потрібен kiosk_id")
	assert.False(t, repo.called)
}

func TestInventoryList_PassesKioskAndStatusFilter(t *testing.T) {
	repo := &listOnlySessionRepo{sessions: []*entity.InventorySession{{
		ID:        "s-1",
		KioskID:   "kiosk-1",
		Status:    entity.SessionDraft,
		CreatedAt: time.Now(),
	}}}
	app := buildInventoryListApp(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/inventory?kiosk_id=kiosk-1&status=draft", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, repo.called)
	assert.Equal(t, "kiosk-1", repo.gotKiosk)
	assert.Equal(t, "draft", repo.gotStatus)
}
