package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/merma-api/internal/domain"
	"github.com/jhoicas/merma-api/internal/domain/csvio"
	"github.com/jhoicas/merma-api/internal/domain/entity"
	domaininv "github.com/jhoicas/merma-api/internal/domain/inventory"
	"github.com/jhoicas/merma-api/internal/domain/repository"
)

// ImportExportUseCase importación y exportación CSV de artículos y
// movimientos. Política de lote única: cualquier error estructural,
// referencial o de validación rechaza el archivo completo; la importación
// corre entera dentro de una transacción.
type ImportExportUseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
}

// NewImportExportUseCase construye el caso de uso. itemRepo y movRepo van
// atados al pool (lecturas y exportación); las escrituras usan el txRunner.
func NewImportExportUseCase(txRunner TxRunner, itemRepo repository.ItemRepository, movRepo repository.MovementRepository) *ImportExportUseCase {
	return &ImportExportUseCase{txRunner: txRunner, itemRepo: itemRepo, movRepo: movRepo}
}

// ImportMovements parsea el CSV contra el catálogo de SKUs y aplica cada
// movimiento en orden de fila, todo dentro de una sola transacción.
// Devuelve cuántos movimientos se importaron (0 ante cualquier fallo).
func (uc *ImportExportUseCase) ImportMovements(ctx context.Context, raw string) (int, error) {
	skus, err := uc.itemRepo.ListSKUs()
	if err != nil {
		return 0, fmt.Errorf("catálogo de SKUs: %w", err)
	}
	known := make(map[string]struct{}, len(skus))
	for _, s := range skus {
		known[s] = struct{}{}
	}

	parsed, err := csvio.ParseMovements(raw, known)
	if err != nil {
		return 0, err
	}

	// Validar todas las filas antes de escribir la primera: tipo dentro del
	// enum y cantidad positiva (aquí caen las cantidades no numéricas, que
	// el parser dejó en cero).
	type validated struct {
		row  csvio.ParsedMovement
		typ  entity.MovementType
		date time.Time
	}
	rows := make([]validated, 0, len(parsed))
	for _, p := range parsed {
		typ, ok := entity.ParseMovementType(p.Type)
		if !ok {
			return 0, fmt.Errorf("%w: tipo desconocido %q (SKU %s)", domain.ErrInvalidMovement, p.Type, p.SKU)
		}
		if p.Quantity <= 0 {
			return 0, fmt.Errorf("%w: cantidad inválida para SKU %s", domain.ErrInvalidMovement, p.SKU)
		}
		date, ok := csvio.ParseDate(p.Date)
		if !ok {
			date = time.Now()
		}
		rows = append(rows, validated{row: p, typ: typ, date: date})
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, itemRepo repository.ItemRepository) error {
		for _, v := range rows {
			item, err := itemRepo.GetBySKUForUpdate(v.row.SKU)
			if err != nil {
				return err
			}
			if item == nil {
				// El catálogo cambió entre el parse y la tx.
				return domain.ErrItemNotFound
			}
			newQty, err := domaininv.ApplyMovement(item.Quantity, v.typ, v.row.Quantity)
			if err != nil {
				return err
			}
			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				ItemID:    item.ID,
				SKU:       item.SKU,
				Type:      v.typ,
				Quantity:  v.row.Quantity,
				Employee:  v.row.Employee,
				Date:      v.date,
				CreatedAt: now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
			if err := itemRepo.UpdateQuantity(item.ID, newQty, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// ImportItems parsea e inserta/reemplaza artículos por SKU, todo o nada.
// Estados fuera del enum y cantidades negativas rechazan el lote.
func (uc *ImportExportUseCase) ImportItems(ctx context.Context, raw string) (int, error) {
	parsed, err := csvio.ParseItems(raw)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	items := make([]*entity.InventoryItem, 0, len(parsed))
	for _, p := range parsed {
		if p.SKU == "" {
			return 0, fmt.Errorf("%w: fila de artículo sin SKU", domain.ErrInvalidInput)
		}
		status := entity.ItemStatus(p.Status)
		if !entity.ValidItemStatus(status) {
			return 0, fmt.Errorf("%w: estado desconocido %q (SKU %s)", domain.ErrInvalidInput, p.Status, p.SKU)
		}
		if p.Quantity < 0 {
			return 0, fmt.Errorf("%w: cantidad negativa para SKU %s", domain.ErrInvalidInput, p.SKU)
		}
		lastUpdated := now
		if t, ok := csvio.ParseDate(p.LastUpdated); ok {
			lastUpdated = t
		}
		items = append(items, &entity.InventoryItem{
			ID:          uuid.New().String(),
			SKU:         p.SKU,
			Name:        p.Name,
			Department:  p.Department,
			Quantity:    p.Quantity,
			UnitValue:   decimal.Zero,
			Status:      status,
			LastUpdated: lastUpdated,
			CreatedAt:   now,
		})
	}

	err = uc.txRunner.Run(ctx, func(_ repository.MovementRepository, itemRepo repository.ItemRepository) error {
		for _, it := range items {
			if err := itemRepo.UpsertBySKU(it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// ExportItems serializa el catálogo completo con las columnas CSV históricas.
func (uc *ImportExportUseCase) ExportItems(_ context.Context) (string, error) {
	items, err := uc.itemRepo.ListAll()
	if err != nil {
		return "", fmt.Errorf("exportar artículos: %w", err)
	}
	return csvio.FormatItems(items), nil
}

// ExportMovements serializa el log completo de movimientos (fechas ISO-8601).
func (uc *ImportExportUseCase) ExportMovements(_ context.Context) (string, error) {
	movs, err := uc.movRepo.ListAll()
	if err != nil {
		return "", fmt.Errorf("exportar movimientos: %w", err)
	}
	return csvio.FormatMovements(movs), nil
}
