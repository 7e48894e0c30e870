package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Severidad y estado de una alerta de pérdida.
const (
	AlertSeverityLow    = "low"
	AlertSeverityMedium = "medium"
	AlertSeverityHigh   = "high"

	AlertStatusActive    = "active"
	AlertStatusResolved  = "resolved"
	AlertStatusDismissed = "dismissed"
)

// LossAlert es una alerta de merma sobre un artículo: discrepancia de conteo,
// patrón de robo, daño recurrente. EstimatedLoss es el valor estimado en dinero.
type LossAlert struct {
	ID            string
	ItemID        string
	SKU           string
	Severity      string
	Description   string
	Status        string
	EstimatedLoss decimal.Decimal
	CreatedAt     time.Time
	ResolvedAt    *time.Time
}
