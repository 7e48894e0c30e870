package inventory

import (
	"context"

	"github.com/jhoicas/merma-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el alta del movimiento y la
// actualización de cantidad del artículo sean una sola unidad lógica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		itemRepo repository.ItemRepository,
	) error) error
}
