package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vapetrack/kiosk-api/internal/application/dto"
	"github.com/vapetrack/kiosk-api/internal/application/usecase"
	"github.com/vapetrack/kiosk-api/internal/domain"
)

// KioskHandler outlet CRUD (admin only).
type KioskHandler struct {
	uc *usecase.KioskUseCase
}

// NewKioskHandler builds the handler.
func NewKioskHandler(uc *usecase.KioskUseCase) *KioskHandler {
	return &KioskHandler{uc: uc}
}

// Create godoc
// @Summary      Create a kiosk
// @Tags         kiosks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateKioskRequest  true  "name, address"
// @Success      201   {object}  dto.KioskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/kiosks [post]
func (h *KioskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateKioskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "некоректне тіло запиту"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "потрібна назва кіоску"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "внутрішня помилка сервера"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Get a kiosk
// @Tags         kiosks
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Kiosk ID"
// @Success      200  {object}  dto.KioskResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/kiosks/{id} [get]
func (h *KioskHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "кіоск не знайдено"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "внутрішня помилка сервера"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List kiosks
// @Tags         kiosks
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.KioskListResponse
// @Router       /api/kiosks [get]
func (h *KioskHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "внутрішня помилка сервера"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update a kiosk
// @Tags         kiosks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Kiosk ID"
// @Param        body  body  dto.UpdateKioskRequest  true  "Fields to update"
// @Success      200   {object}  dto.KioskResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/kiosks/{id} [put]
func (h *KioskHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateKioskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "некоректне тіло запиту"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "кіоск не знайдено"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "назва кіоску не може бути порожньою"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "внутрішня помилка сервера"})
	}
	return c.JSON(out)
}

// pageParams reads limit/offset with the shared defaults and caps.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
