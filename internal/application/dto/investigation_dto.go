package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvestigationRequest entrada para abrir una investigación,
// opcionalmente ligada a una alerta existente.
type CreateInvestigationRequest struct {
	AlertID       *string         `json:"alert_id" validate:"omitempty,uuid"`
	Title         string          `json:"title" validate:"required,max=300"`
	Department    string          `json:"department" validate:"omitempty,max=100"`
	Investigator  string          `json:"investigator" validate:"required,max=200"`
	Priority      string          `json:"priority" validate:"required,oneof=low medium high"`
	EstimatedLoss decimal.Decimal `json:"estimated_loss"`
	Notes         string          `json:"notes" validate:"omitempty,max=4000"`
}

// UpdateInvestigationRequest avance o cierre de una investigación.
type UpdateInvestigationRequest struct {
	Status        *string          `json:"status" validate:"omitempty,oneof=open in_review closed"`
	Investigator  *string          `json:"investigator" validate:"omitempty,max=200"`
	Priority      *string          `json:"priority" validate:"omitempty,oneof=low medium high"`
	EstimatedLoss *decimal.Decimal `json:"estimated_loss"`
	Notes         *string          `json:"notes" validate:"omitempty,max=4000"`
}

// InvestigationResponse salida de una investigación.
type InvestigationResponse struct {
	ID            string          `json:"id"`
	AlertID       *string         `json:"alert_id,omitempty"`
	Title         string          `json:"title"`
	Department    string          `json:"department"`
	Investigator  string          `json:"investigator"`
	Status        string          `json:"status"`
	Priority      string          `json:"priority"`
	EstimatedLoss decimal.Decimal `json:"estimated_loss"`
	Notes         string          `json:"notes"`
	OpenedAt      time.Time       `json:"opened_at"`
	ClosedAt      *time.Time      `json:"closed_at,omitempty"`
}

// InvestigationListResponse lista paginada de investigaciones.
type InvestigationListResponse struct {
	Items []InvestigationResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
