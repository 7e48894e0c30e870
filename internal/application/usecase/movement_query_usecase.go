package usecase

import (
	"time"

	"github.com/jhoicas/merma-api/internal/application/dto"
	"github.com/jhoicas/merma-api/internal/domain"
	"github.com/jhoicas/merma-api/internal/domain/entity"
	"github.com/jhoicas/merma-api/internal/domain/repository"
)

// MovementQueryUseCase lecturas del log de movimientos. Las escrituras van
// por el caso de uso de reconciliación, nunca por aquí.
type MovementQueryUseCase struct {
	movRepo  repository.MovementRepository
	itemRepo repository.ItemRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(movRepo repository.MovementRepository, itemRepo repository.ItemRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movRepo: movRepo, itemRepo: itemRepo}
}

// List lista el log en un rango de fechas opcional, más recientes primero.
func (uc *MovementQueryUseCase) List(from, to *time.Time, limit, offset int) (*dto.MovementListResponse, error) {
	movements, err := uc.movRepo.List(from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(movements, limit, offset), nil
}

// ListBySKU lista los movimientos del artículo con ese SKU.
func (uc *MovementQueryUseCase) ListBySKU(sku string, limit, offset int) (*dto.MovementListResponse, error) {
	item, err := uc.itemRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	movements, err := uc.movRepo.ListByItem(item.ID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toMovementList(movements, limit, offset), nil
}

func toMovementList(movements []*entity.StockMovement, limit, offset int) *dto.MovementListResponse {
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, ToMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

// ToMovementResponse mapea un movimiento a su DTO; el actor vacío se
// presenta como el centinela "System".
func ToMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		SKU:       m.SKU,
		Type:      string(m.Type),
		Quantity:  m.Quantity,
		Employee:  m.Actor(),
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
	}
}
