package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/merma-api/internal/application/dto"
	"github.com/jhoicas/merma-api/internal/application/usecase"
	"github.com/jhoicas/merma-api/internal/domain"
)

// AuditHandler maneja las auditorías de conteo (protegido).
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// Create godoc
// @Summary      Programar auditoría
// @Tags         audits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAuditRequest  true  "Datos de la auditoría"
// @Success      201   {object}  dto.AuditResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/audits [post]
func (h *AuditHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAuditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Department == "" || in.Auditor == "" || in.ScheduledDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "department, auditor y scheduled_date son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener auditoría por ID
// @Tags         audits
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la auditoría"
// @Success      200  {object}  dto.AuditResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/audits/{id} [get]
func (h *AuditHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "auditoría no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar auditorías
// @Tags         audits
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado (scheduled, in_progress, completed)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.AuditListResponse
// @Router       /api/audits [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("status"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar auditoría
// @Tags         audits
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la auditoría"
// @Param        body  body  dto.UpdateAuditRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.AuditResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/audits/{id} [put]
func (h *AuditHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAuditRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "auditoría no encontrada"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar auditoría
// @Tags         audits
// @Security     Bearer
// @Param        id  path  string  true  "ID de la auditoría"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/audits/{id} [delete]
func (h *AuditHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "auditoría no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
