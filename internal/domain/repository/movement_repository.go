package repository

import (
	"time"

	"github.com/jhoicas/merma-api/internal/domain/entity"
)

// MovementRepository puerto del log de movimientos. Append-only: no hay
// Update ni Delete, un movimiento creado es inmutable.
type MovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error)
	List(from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListAll() ([]*entity.StockMovement, error)
}
