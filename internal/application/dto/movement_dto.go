package dto

import "time"

// RegisterMovementRequest entrada para aplicar un movimiento a un artículo.
// Date acepta MM/DD/YYYY o ISO-8601; vacío = hoy.
type RegisterMovementRequest struct {
	SKU      string `json:"sku" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=received sold damaged stolen adjustment"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Employee string `json:"employee" validate:"omitempty,max=200"`
	Date     string `json:"date"`
}

// MovementResponse salida de un movimiento del log.
type MovementResponse struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	SKU       string    `json:"sku"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Employee  string    `json:"employee"` // "System" cuando no hubo actor
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterMovementResponse confirma el movimiento y la cantidad resultante.
type RegisterMovementResponse struct {
	Movement    MovementResponse `json:"movement"`
	NewQuantity int              `json:"new_quantity"`
}

// MovementListResponse lista paginada del log.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ImportResultResponse resumen de una importación CSV aceptada.
type ImportResultResponse struct {
	Imported int `json:"imported"`
}
