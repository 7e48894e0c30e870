package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAlertRequest entrada para crear una alerta de pérdida.
type CreateAlertRequest struct {
	SKU           string          `json:"sku" validate:"required"`
	Severity      string          `json:"severity" validate:"required,oneof=low medium high"`
	Description   string          `json:"description" validate:"required,max=2000"`
	EstimatedLoss decimal.Decimal `json:"estimated_loss"`
}

// UpdateAlertRequest cambio de estado/descripción de una alerta.
type UpdateAlertRequest struct {
	Severity      *string          `json:"severity" validate:"omitempty,oneof=low medium high"`
	Description   *string          `json:"description" validate:"omitempty,max=2000"`
	Status        *string          `json:"status" validate:"omitempty,oneof=active resolved dismissed"`
	EstimatedLoss *decimal.Decimal `json:"estimated_loss"`
}

// AlertResponse salida de una alerta.
type AlertResponse struct {
	ID            string          `json:"id"`
	ItemID        string          `json:"item_id"`
	SKU           string          `json:"sku"`
	Severity      string          `json:"severity"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	EstimatedLoss decimal.Decimal `json:"estimated_loss"`
	CreatedAt     time.Time       `json:"created_at"`
	ResolvedAt    *time.Time      `json:"resolved_at,omitempty"`
}

// AlertListResponse lista paginada de alertas.
type AlertListResponse struct {
	Items []AlertResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
