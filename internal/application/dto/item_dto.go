package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un artículo.
type CreateItemRequest struct {
	SKU        string          `json:"sku" validate:"required,min=1,max=100"`
	Name       string          `json:"name" validate:"required,min=1,max=200"`
	Department string          `json:"department" validate:"omitempty,max=100"`
	Quantity   int             `json:"quantity" validate:"min=0"`
	UnitValue  decimal.Decimal `json:"unit_value"`
	Status     string          `json:"status" validate:"omitempty,oneof='In Stock' 'Low Stock' 'Out of Stock' Inactive"`
}

// UpdateItemRequest entrada para editar un artículo. El estado no se
// recalcula desde la cantidad: solo cambia si viene en el request.
type UpdateItemRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Department *string          `json:"department" validate:"omitempty,max=100"`
	Quantity   *int             `json:"quantity" validate:"omitempty,min=0"`
	UnitValue  *decimal.Decimal `json:"unit_value"`
	Status     *string          `json:"status"`
}

// ItemResponse salida de un artículo (forma canónica Quantity/Status;
// item_quantity/item_status solo existen en la frontera CSV).
type ItemResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Department  string          `json:"department"`
	Quantity    int             `json:"quantity"`
	UnitValue   decimal.Decimal `json:"unit_value"`
	Status      string          `json:"status"`
	LastUpdated time.Time       `json:"last_updated"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ItemListResponse lista paginada de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
