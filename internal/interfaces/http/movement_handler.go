package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/merma-api/internal/application/dto"
	"github.com/jhoicas/merma-api/internal/application/inventory"
	"github.com/jhoicas/merma-api/internal/application/usecase"
	"github.com/jhoicas/merma-api/internal/domain"
	"github.com/jhoicas/merma-api/internal/domain/csvio"
)

// MovementHandler maneja la reconciliación de movimientos, el log y la
// importación/exportación CSV (protegido).
type MovementHandler struct {
	registerUC *inventory.RegisterMovementUseCase
	importUC   *inventory.ImportExportUseCase
	queryUC    *usecase.MovementQueryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(
	registerUC *inventory.RegisterMovementUseCase,
	importUC *inventory.ImportExportUseCase,
	queryUC *usecase.MovementQueryUseCase,
) *MovementHandler {
	return &MovementHandler{registerUC: registerUC, importUC: importUC, queryUC: queryUC}
}

// Register godoc
// @Summary      Aplicar un movimiento de stock
// @Description  Valida el movimiento contra la tabla de política (received suma,
// @Description  sold/damaged/stolen restan con piso en cero, adjustment fija la
// @Description  cantidad) y persiste log + cantidad en una sola transacción.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SKU == "" || in.Type == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku y type son requeridos"})
	}
	res, err := h.registerUC.RegisterMovementFromRequest(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "no existe un artículo con ese SKU"})
		}
		if errors.Is(err, domain.ErrInvalidMovement) || errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_MOVEMENT", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterMovementResponse{
		Movement:    usecase.ToMovementResponse(res.Movement),
		NewQuantity: res.NewQuantity,
	})
}

// List godoc
// @Summary      Listar el log de movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        sku     query  string  false  "Filtrar por SKU"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	if sku := c.Query("sku"); sku != "" {
		out, err := h.queryUC.ListBySKU(sku, limit, offset)
		if err != nil {
			if errors.Is(err, domain.ErrItemNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "no existe un artículo con ese SKU"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}
	out, err := h.queryUC.List(nil, nil, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ImportMovements godoc
// @Summary      Importar movimientos desde CSV
// @Description  Cabecera requerida: sku, type, quantity, employee, date (en
// @Description  cualquier orden). Política de lote única: columnas faltantes,
// @Description  SKU desconocido o fila inválida rechazan el archivo completo
// @Description  sin importar nada.
// @Tags         movements
// @Security     Bearer
// @Accept       plain
// @Produce      json
// @Param        body  body  string  true  "Contenido CSV"
// @Success      200   {object}  dto.ImportResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/movements/import [post]
func (h *MovementHandler) ImportMovements(c *fiber.Ctx) error {
	raw := string(c.Body())
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_BODY", Message: "el cuerpo debe ser el contenido CSV"})
	}
	imported, err := h.importUC.ImportMovements(c.Context(), raw)
	if err != nil {
		return csvImportError(c, err)
	}
	return c.JSON(dto.ImportResultResponse{Imported: imported})
}

// ImportItems godoc
// @Summary      Importar artículos desde CSV
// @Description  Cabecera requerida: sku, name, department, item_quantity,
// @Description  item_status, lastUpdated. Upsert por SKU, todo o nada.
// @Tags         items
// @Security     Bearer
// @Accept       plain
// @Produce      json
// @Param        body  body  string  true  "Contenido CSV"
// @Success      200   {object}  dto.ImportResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/items/import [post]
func (h *MovementHandler) ImportItems(c *fiber.Ctx) error {
	raw := string(c.Body())
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_BODY", Message: "el cuerpo debe ser el contenido CSV"})
	}
	imported, err := h.importUC.ImportItems(c.Context(), raw)
	if err != nil {
		return csvImportError(c, err)
	}
	return c.JSON(dto.ImportResultResponse{Imported: imported})
}

// ExportItems godoc
// @Summary      Exportar el catálogo como CSV
// @Tags         items
// @Security     Bearer
// @Produce      plain
// @Success      200  {string}  string  "CSV"
// @Router       /api/items/export [get]
func (h *MovementHandler) ExportItems(c *fiber.Ctx) error {
	out, err := h.importUC.ExportItems(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="items.csv"`)
	return c.SendString(out)
}

// ExportMovements godoc
// @Summary      Exportar el log de movimientos como CSV
// @Tags         movements
// @Security     Bearer
// @Produce      plain
// @Success      200  {string}  string  "CSV"
// @Router       /api/movements/export [get]
func (h *MovementHandler) ExportMovements(c *fiber.Ctx) error {
	out, err := h.importUC.ExportMovements(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movements.csv"`)
	return c.SendString(out)
}

// csvImportError mapea los errores de importación a códigos HTTP: estructura
// del archivo → 400, contenido que no valida → 422.
func csvImportError(c *fiber.Ctx, err error) error {
	var missing *csvio.MissingColumnsError
	if errors.As(err, &missing) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_COLUMNS", Message: missing.Error()})
	}
	var malformed *csvio.MalformedRowError
	if errors.As(err, &malformed) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MALFORMED_ROW", Message: malformed.Error()})
	}
	var unknown *csvio.UnknownSKUError
	if errors.As(err, &unknown) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNKNOWN_SKU", Message: unknown.Error()})
	}
	if errors.Is(err, domain.ErrInvalidMovement) || errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_ROW", Message: err.Error()})
	}
	if errors.Is(err, domain.ErrItemNotFound) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNKNOWN_SKU", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
