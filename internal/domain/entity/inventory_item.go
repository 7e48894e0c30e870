package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un artículo de inventario. No se recalculan automáticamente
// desde la cantidad: el estado es una marca operativa que fija el usuario
// (o la importación) y solo cambia por edición explícita.
type ItemStatus string

const (
	StatusInStock    ItemStatus = "In Stock"
	StatusLowStock   ItemStatus = "Low Stock"
	StatusOutOfStock ItemStatus = "Out of Stock"
	StatusInactive   ItemStatus = "Inactive"
)

// ValidItemStatus reporta si s es uno de los estados reconocidos.
func ValidItemStatus(s ItemStatus) bool {
	switch s {
	case StatusInStock, StatusLowStock, StatusOutOfStock, StatusInactive:
		return true
	}
	return false
}

// InventoryItem representa un artículo del catálogo (SKU único).
// Quantity es la cantidad en mano; nunca negativa (los movimientos la
// recortan en cero). UnitValue es el valor unitario usado para estimar
// la merma en dinero.
type InventoryItem struct {
	ID          string
	SKU         string // código único de cara al usuario
	Name        string
	Department  string // categoría de texto libre
	Quantity    int
	UnitValue   decimal.Decimal
	Status      ItemStatus
	LastUpdated time.Time
	CreatedAt   time.Time
}
