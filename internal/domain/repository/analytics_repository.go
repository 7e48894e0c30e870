package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DepartmentShrinkageResult merma agregada por departamento en un período:
// unidades perdidas (damaged+stolen) y valor estimado en dinero.
type DepartmentShrinkageResult struct {
	Department string
	UnitsLost  int
	TotalLoss  decimal.Decimal
}

// MonthlyShrinkageResult merma agregada por mes calendario.
type MonthlyShrinkageResult struct {
	Month     time.Time // primer día del mes
	UnitsLost int
	TotalLoss decimal.Decimal
}

// StatusCountResult conteo de artículos por estado.
type StatusCountResult struct {
	Status string
	Count  int
}

// AnalyticsRepository consultas agregadas para el dashboard. Son consultas de
// solo lectura sobre el log de movimientos y las tablas de casos; reciben
// context porque el caso de uso las lanza en paralelo.
type AnalyticsRepository interface {
	GetDepartmentShrinkage(ctx context.Context, from, to time.Time) ([]DepartmentShrinkageResult, error)
	GetMonthlyShrinkage(ctx context.Context, months int) ([]MonthlyShrinkageResult, error)
	GetStatusBreakdown(ctx context.Context) ([]StatusCountResult, error)
	CountItems(ctx context.Context) (int, error)
	CountActiveAlerts(ctx context.Context) (int, error)
	CountOpenInvestigations(ctx context.Context) (int, error)
	TotalShrinkageValue(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
}
