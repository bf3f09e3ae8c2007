package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vapetrack/kiosk-api/internal/application/dto"
	"github.com/vapetrack/kiosk-api/internal/application/usecase"
	"github.com/vapetrack/kiosk-api/internal/domain"
)

// ShiftHandler employee schedule.
type ShiftHandler struct {
	uc *usecase.ShiftUseCase
}

// NewShiftHandler builds the handler.
func NewShiftHandler(uc *usecase.ShiftUseCase) *ShiftHandler {
	return &ShiftHandler{uc: uc}
}

// Create godoc
// @Summary      Schedule a shift
// @Tags         shifts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShiftRequest  true  "kiosk_id, user_id, starts_at, ends_at"
// @Success      201   {object}  dto.ShiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shifts [post]
func (h *ShiftHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "некоректне тіло запиту"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return h.shiftError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List shifts of a kiosk for a period
// @Tags         shifts
// @Security     Bearer
// @Produce      json
// @Param        kiosk_id  query  string  true  "Kiosk"
// @Param        from      query  string  true  "RFC 3339 period start"
// @Param        to        query  string  true  "RFC 3339 period end"
// @Success      200       {object}  dto.ShiftListResponse
// @Router       /api/shifts [get]
func (h *ShiftHandler) List(c *fiber.Ctx) error {
	kioskID := c.Query("kiosk_id")
	if kioskID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "потрібен kiosk_id"})
	}
	from, err := timeQuery(c, "from")
	if err != nil || from == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "потрібен параметр from у форматі RFC 3339"})
	}
	to, err := timeQuery(c, "to")
	if err != nil || to == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "потрібен параметр to у форматі RFC 3339"})
	}
	out, err := h.uc.List(kioskID, *from, *to)
	if err != nil {
		return h.shiftError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Move or annotate a shift
// @Tags         shifts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Shift ID"
// @Param        body  body  dto.UpdateShiftRequest  true  "Fields to update"
// @Success      200   {object}  dto.ShiftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shifts/{id} [put]
func (h *ShiftHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateShiftRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "некоректне тіло запиту"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return h.shiftError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remove a shift
// @Tags         shifts
// @Security     Bearer
// @Param        id  path  string  true  "Shift ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shifts/{id} [delete]
func (h *ShiftHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return h.shiftError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ShiftHandler) shiftError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "зміну не знайдено"})
	case domain.ErrUserNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "працівника не знайдено"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "некоректний інтервал зміни"})
	case domain.ErrShiftOverlap:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "працівник вже має зміну в цей час"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "внутрішня помилка сервера"})
}
