package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/merma-api/internal/application/dto"
	"github.com/jhoicas/merma-api/internal/application/usecase"
	"github.com/jhoicas/merma-api/internal/domain"
)

// AnalyticsHandler maneja el dashboard y el reporte de merma (protegido).
type AnalyticsHandler struct {
	uc     *usecase.AnalyticsUseCase
	pdfGen usecase.ReportPDFGenerator
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase, pdfGen usecase.ReportPDFGenerator) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, pdfGen: pdfGen}
}

// Dashboard godoc
// @Summary      Resumen del dashboard
// @Description  Tarjetas superiores: artículos, alertas activas, casos abiertos,
// @Description  valor de merma del último año y desglose por estado.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboardSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ShrinkageReport godoc
// @Summary      Reporte de merma
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "YYYY-MM-DD (defecto: hace 12 meses)"
// @Param        end_date    query  string  false  "YYYY-MM-DD (defecto: hoy)"
// @Param        months      query  int     false  "Meses de tendencia"  default(12)
// @Success      200  {object}  dto.ShrinkageReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/shrinkage [get]
func (h *AnalyticsHandler) ShrinkageReport(c *fiber.Ctx) error {
	var req dto.ShrinkageReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.GetShrinkageReport(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ShrinkageReportPDF godoc
// @Summary      Reporte de merma en PDF
// @Tags         analytics
// @Security     Bearer
// @Produce      application/pdf
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Param        months      query  int     false  "Meses de tendencia"  default(12)
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/shrinkage/pdf [get]
func (h *AnalyticsHandler) ShrinkageReportPDF(c *fiber.Ctx) error {
	var req dto.ShrinkageReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	report, err := h.uc.GetShrinkageReport(c.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	pdfBytes, err := h.pdfGen.GenerateShrinkageReport(c.Context(), report)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_GENERATION", Message: err.Error()})
	}
	filename := "merma_" + time.Now().Format("20060102") + ".pdf"
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
