package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/merma-api/internal/application/dto"
	"github.com/jhoicas/merma-api/internal/domain"
	"github.com/jhoicas/merma-api/internal/domain/csvio"
	"github.com/jhoicas/merma-api/internal/domain/entity"
	"github.com/jhoicas/merma-api/internal/domain/inventory"
	"github.com/jhoicas/merma-api/internal/domain/repository"
)

// RegisterMovementUseCase aplica movimientos al inventario de forma
// transaccional: bloqueo de fila sobre el artículo (SELECT FOR UPDATE),
// alta del registro inmutable en el log y escritura de la nueva cantidad,
// con Commit/Rollback. Si el SKU no existe, no se escribe nada.
type RegisterMovementUseCase struct {
	txRunner TxRunner
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner}
}

// MovementInput entrada ya tipada para aplicar un movimiento.
// Quantity es la magnitud positiva; Employee vacío = sin actor.
type MovementInput struct {
	SKU       string
	Type      string
	Quantity  int
	Employee  string
	Date      time.Time
	CreatedBy string
}

// MovementResult movimiento persistido y cantidad resultante del artículo.
type MovementResult struct {
	Movement    *entity.StockMovement
	NewQuantity int
}

// RegisterMovement valida el movimiento, abre la transacción, bloquea la fila
// del artículo, aplica la tabla de política y persiste log + cantidad.
//
// Fallos: ErrInvalidMovement (cantidad no positiva o tipo fuera del enum),
// ErrItemNotFound (SKU sin artículo: aborta sin escribir nada), errores de
// persistencia envueltos y propagados sin reintento.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	movType, ok := entity.ParseMovementType(input.Type)
	if !ok {
		return nil, fmt.Errorf("%w: tipo desconocido %q", domain.ErrInvalidMovement, input.Type)
	}
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: cantidad debe ser positiva, recibido %d", domain.ErrInvalidMovement, input.Quantity)
	}
	if input.SKU == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	var result MovementResult
	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, itemRepo repository.ItemRepository) error {
		item, err := itemRepo.GetBySKUForUpdate(input.SKU)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		newQty, err := inventory.ApplyMovement(item.Quantity, movType, input.Quantity)
		if err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			SKU:       item.SKU,
			Type:      movType,
			Quantity:  input.Quantity,
			Employee:  input.Employee,
			Date:      date,
			CreatedAt: now,
			CreatedBy: input.CreatedBy,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := itemRepo.UpdateQuantity(item.ID, newQty, now); err != nil {
			return err
		}
		result = MovementResult{Movement: mov, NewQuantity: newQty}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RegisterMovementFromRequest adapta el request HTTP al caso de uso:
// interpreta la fecha opaca (MM/DD/YYYY o ISO-8601) y delega.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*MovementResult, error) {
	var date time.Time
	if in.Date != "" {
		parsed, ok := csvio.ParseDate(in.Date)
		if !ok {
			return nil, fmt.Errorf("%w: fecha no reconocida %q", domain.ErrInvalidInput, in.Date)
		}
		date = parsed
	}
	return uc.RegisterMovement(ctx, MovementInput{
		SKU:       in.SKU,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Employee:  in.Employee,
		Date:      date,
		CreatedBy: userID,
	})
}
