package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/merma-api/internal/application/dto"
	"github.com/jhoicas/merma-api/internal/application/usecase"
	"github.com/jhoicas/merma-api/internal/domain"
)

// InvestigationHandler maneja las investigaciones de merma (protegido).
type InvestigationHandler struct {
	uc *usecase.InvestigationUseCase
}

// NewInvestigationHandler construye el handler.
func NewInvestigationHandler(uc *usecase.InvestigationUseCase) *InvestigationHandler {
	return &InvestigationHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir investigación
// @Tags         investigations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvestigationRequest  true  "Datos del caso"
// @Success      201   {object}  dto.InvestigationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/investigations [post]
func (h *InvestigationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvestigationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" || in.Investigator == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title e investigator son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ALERT_NOT_FOUND", Message: "la alerta referenciada no existe"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener investigación por ID
// @Tags         investigations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del caso"
// @Success      200  {object}  dto.InvestigationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/investigations/{id} [get]
func (h *InvestigationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "investigación no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar investigaciones
// @Tags         investigations
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado (open, in_review, closed)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.InvestigationListResponse
// @Router       /api/investigations [get]
func (h *InvestigationHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("status"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar investigación
// @Tags         investigations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del caso"
// @Param        body  body  dto.UpdateInvestigationRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.InvestigationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/investigations/{id} [put]
func (h *InvestigationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvestigationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "investigación no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar investigación
// @Tags         investigations
// @Security     Bearer
// @Param        id  path  string  true  "ID del caso"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/investigations/{id} [delete]
func (h *InvestigationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "investigación no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
