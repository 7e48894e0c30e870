package dto

import "github.com/shopspring/decimal"

// ShrinkageReportRequest período para los agregados de merma.
type ShrinkageReportRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD, vacío = hace 12 meses
	EndDate   string `query:"end_date"`   // YYYY-MM-DD, vacío = hoy
	Months    int    `query:"months"`     // tendencia mensual, por defecto 12
}

// DepartmentShrinkageDTO merma por departamento.
type DepartmentShrinkageDTO struct {
	Department string          `json:"department"`
	UnitsLost  int             `json:"units_lost"`
	TotalLoss  decimal.Decimal `json:"total_loss"`
	SharePct   decimal.Decimal `json:"share_pct"` // % sobre la merma total del período
}

// MonthlyShrinkageDTO punto de la tendencia mensual.
type MonthlyShrinkageDTO struct {
	Month     string          `json:"month"` // YYYY-MM
	UnitsLost int             `json:"units_lost"`
	TotalLoss decimal.Decimal `json:"total_loss"`
}

// StatusCountDTO conteo de artículos por estado.
type StatusCountDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// PeriodDTO rango de fechas del reporte.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ShrinkageReportDTO reporte completo de merma para el dashboard.
type ShrinkageReportDTO struct {
	Period        PeriodDTO                `json:"period"`
	TotalLoss     decimal.Decimal          `json:"total_loss"`
	ByDepartment  []DepartmentShrinkageDTO `json:"by_department"`
	MonthlyTrend  []MonthlyShrinkageDTO    `json:"monthly_trend"`
}

// DashboardSummaryDTO tarjetas superiores del dashboard.
type DashboardSummaryDTO struct {
	TotalItems         int              `json:"total_items"`
	ActiveAlerts       int              `json:"active_alerts"`
	OpenInvestigations int              `json:"open_investigations"`
	ShrinkageValue     decimal.Decimal  `json:"shrinkage_value"`
	StatusBreakdown    []StatusCountDTO `json:"status_breakdown"`
}
