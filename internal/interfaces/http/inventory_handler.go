package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vapetrack/kiosk-api/internal/application/dto"
	"github.com/vapetrack/kiosk-api/internal/application/inventory"
	"github.com/vapetrack/kiosk-api/internal/domain"
)

// InventoryHandler stock-count session lifecycle.
type InventoryHandler struct {
	uc *inventory.SessionUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *inventory.SessionUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create godoc
// @Summary      Open a stock-count session
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSessionRequest  true  "kiosk_id, notes"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "некоректне тіло запиту"})
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "потрібен kiosk_id"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "кіоск не знайдено"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "внутрішня помилка сервера"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List stock-count sessions
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        kiosk_id  query  string  true   "Kiosk"
// @Param        status    query  string  false  "draft | completed | cancelled"
// @Param        limit     query  int     false  "Limit"   default(20)
// @Param        offset    query  int     false  "Offset"  default(0)
// @Success      200       {object}  dto.SessionListResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	kioskID := c.Query("kiosk_id")
	if kioskID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "потрібен kiosk_id"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(kioskID, c.Query("status"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "внутрішня помилка сервера"})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get a session with its line items
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Session ID"
// @Success      200  {object}  dto.SessionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "інвентаризацію не знайдено"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "внутрішня помилка сервера"})
	}
	return c.JSON(out)
}

// RecordCount godoc
// @Summary      Record a counted quantity on one line item
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "Session ID"
// @Param        itemId  path  string  true  "Line item ID"
// @Param        body    body  dto.RecordCountRequest  true  "actual_quantity (null clears), notes"
// @Success      200     {object}  dto.InventoryItemResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/items/{itemId} [put]
func (h *InventoryHandler) RecordCount(c *fiber.Ctx) error {
	var in dto.RecordCountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "некоректне тіло запиту"})
	}
	out, err := h.uc.RecordCount(c.Params("id"), c.Params("itemId"), in)
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(out)
}

// Complete godoc
// @Summary      Apply the counted quantities to stock
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Session ID"
// @Success      200  {object}  dto.SessionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/complete [post]
func (h *InventoryHandler) Complete(c *fiber.Ctx) error {
	out, err := h.uc.Complete(c.Context(), c.Params("id"))
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancel a session, reverting applied counts
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Session ID"
// @Success      200  {object}  dto.SessionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/cancel [post]
func (h *InventoryHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.uc.Cancel(c.Context(), c.Params("id"))
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete a draft session
// @Tags         inventory
// @Security     Bearer
// @Param        id  path  string  true  "Session ID"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return h.sessionError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// sessionError maps the session lifecycle errors shared by several routes.
func (h *InventoryHandler) sessionError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "інвентаризацію не знайдено"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "кількість не може бути від'ємною"})
	case domain.ErrConflict:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "інвентаризацію скасовано, зміни неможливі"})
	case domain.ErrEditWindowExpired:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "вікно редагування завершеної інвентаризації минуло"})
	case domain.ErrNotDraft:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "видалити можна лише чернетку"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "внутрішня помилка сервера"})
}
