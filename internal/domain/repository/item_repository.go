package repository

import (
	"time"

	"github.com/jhoicas/merma-api/internal/domain/entity"
)

// ItemFilter criterios de listado/búsqueda de artículos.
type ItemFilter struct {
	Department string
	Status     entity.ItemStatus
	Search     string // contra SKU y nombre, normalizado en la capa de aplicación
}

// ItemRepository define el puerto de persistencia para InventoryItem (DIP).
type ItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetBySKU(sku string) (*entity.InventoryItem, error)
	// GetBySKUForUpdate bloquea la fila (SELECT FOR UPDATE) para la
	// reconciliación de movimientos dentro de una transacción.
	GetBySKUForUpdate(sku string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	// UpdateQuantity escribe cantidad + last_updated; usado por la
	// reconciliación dentro de la misma tx que crea el movimiento.
	UpdateQuantity(itemID string, quantity int, at time.Time) error
	// UpsertBySKU inserta o reemplaza por SKU (importación de artículos).
	UpsertBySKU(item *entity.InventoryItem) error
	List(filter ItemFilter, limit, offset int) ([]*entity.InventoryItem, error)
	ListAll() ([]*entity.InventoryItem, error)
	// ListSKUs devuelve el catálogo de SKUs para validación referencial.
	ListSKUs() ([]string, error)
	Delete(id string) error
	Count(filter ItemFilter) (int, error)
}
