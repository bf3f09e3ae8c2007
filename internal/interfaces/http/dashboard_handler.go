package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vapetrack/kiosk-api/internal/application/dto"
	"github.com/vapetrack/kiosk-api/internal/application/usecase"
	"github.com/vapetrack/kiosk-api/internal/domain"
)

// DashboardHandler admin overview panels.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Overview godoc
// @Summary      Admin dashboard: revenue, top products, expenses, low stock, discrepancies
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        kiosk_id  query  string  false  "Limit to one kiosk"
// @Param        from      query  string  false  "RFC 3339 period start (default: 30 days ago)"
// @Param        to        query  string  false  "RFC 3339 period end (default: now)"
// @Success      200       {object}  dto.DashboardOverview
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	from, err := timeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "некоректний параметр from, очікується RFC 3339"})
	}
	to, err := timeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "некоректний параметр to, очікується RFC 3339"})
	}
	var fromT, toT = timeOrZero(from), timeOrZero(to)
	out, err := h.uc.Overview(c.Context(), c.Query("kiosk_id"), fromT, toT)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "період from має передувати to"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "внутрішня помилка сервера"})
	}
	return c.JSON(out)
}
