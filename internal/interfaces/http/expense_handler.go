package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vapetrack/kiosk-api/internal/application/dto"
	"github.com/vapetrack/kiosk-api/internal/application/usecase"
	"github.com/vapetrack/kiosk-api/internal/domain"
)

// ExpenseHandler operational cost bookkeeping.
type ExpenseHandler struct {
	uc *usecase.ExpenseUseCase
}

// NewExpenseHandler builds the handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase) *ExpenseHandler {
	return &ExpenseHandler{uc: uc}
}

// Create godoc
// @Summary      Book an expense
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateExpenseRequest  true  "kiosk_id, category, amount"
// @Success      201   {object}  dto.ExpenseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/expenses [post]
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "некоректне тіло запиту"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "потрібні kiosk_id, category та додатна сума"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "кіоск не знайдено"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "внутрішня помилка сервера"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List expenses of a kiosk
// @Tags         expenses
// @Security     Bearer
// @Produce      json
// @Param        kiosk_id  query  string  true   "Kiosk"
// @Param        from      query  string  false  "RFC 3339 period start"
// @Param        to        query  string  false  "RFC 3339 period end"
// @Param        limit     query  int     false  "Limit"   default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200       {object}  dto.ExpenseListResponse
// @Router       /api/expenses [get]
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	kioskID := c.Query("kiosk_id")
	if kioskID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "потрібен kiosk_id"})
	}
	from, err := timeQuery(c, "from")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "некоректний параметр from, очікується RFC 3339"})
	}
	to, err := timeQuery(c, "to")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "некоректний параметр to, очікується RFC 3339"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(kioskID, from, to, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "внутрішня помилка сервера"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update an expense
// @Tags         expenses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Expense ID"
// @Param        body  body  dto.UpdateExpenseRequest  true  "Fields to update"
// @Success      200   {object}  dto.ExpenseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "некоректне тіло запиту"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "витрату не знайдено"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "некоректні дані витрати"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "внутрішня помилка сервера"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete an expense
// @Tags         expenses
// @Security     Bearer
// @Param        id  path  string  true  "Expense ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "витрату не знайдено"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "внутрішня помилка сервера"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
