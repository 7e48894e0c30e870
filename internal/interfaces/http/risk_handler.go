package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/merma-api/internal/application/dto"
	"github.com/jhoicas/merma-api/internal/application/usecase"
	"github.com/jhoicas/merma-api/internal/domain"
)

// RiskHandler maneja el panel de artículos de alto riesgo (protegido).
type RiskHandler struct {
	uc *usecase.RiskUseCase
}

// NewRiskHandler construye el handler.
func NewRiskHandler(uc *usecase.RiskUseCase) *RiskHandler {
	return &RiskHandler{uc: uc}
}

// Upsert godoc
// @Summary      Marcar o actualizar artículo de alto riesgo
// @Tags         risk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertRiskRequest  true  "Datos de riesgo"
// @Success      200   {object}  dto.RiskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/risk [put]
func (h *RiskHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertRiskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SKU == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku es requerido"})
	}
	out, err := h.uc.Upsert(in)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "no existe un artículo con ese SKU"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar artículos de alto riesgo
// @Tags         risk
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.RiskListResponse
// @Router       /api/risk [get]
func (h *RiskHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Quitar artículo del panel de riesgo
// @Tags         risk
// @Security     Bearer
// @Param        itemId  path  string  true  "ID del artículo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/risk/{itemId} [delete]
func (h *RiskHandler) Remove(c *fiber.Ctx) error {
	itemID := c.Params("itemId")
	if itemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "itemId es requerido"})
	}
	if err := h.uc.Remove(itemID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el artículo no está en el panel de riesgo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
