package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados y prioridades de una investigación de merma.
const (
	InvestigationStatusOpen     = "open"
	InvestigationStatusInReview = "in_review"
	InvestigationStatusClosed   = "closed"

	InvestigationPriorityLow    = "low"
	InvestigationPriorityMedium = "medium"
	InvestigationPriorityHigh   = "high"
)

// Investigation es un caso de investigación sobre pérdidas, generalmente
// abierto a partir de una alerta (AlertID opcional).
type Investigation struct {
	ID            string
	AlertID       *string
	Title         string
	Department    string
	Investigator  string
	Status        string
	Priority      string
	EstimatedLoss decimal.Decimal
	Notes         string
	OpenedAt      time.Time
	ClosedAt      *time.Time
}
