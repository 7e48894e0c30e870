package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/merma-api/internal/application/dto"
	"github.com/jhoicas/merma-api/internal/domain"
	"github.com/jhoicas/merma-api/internal/domain/repository"
)

const (
	defaultTrendMonths = 12
	maxTrendMonths     = 36
)

var hundred = decimal.NewFromInt(100)

// AnalyticsUseCase agregados de merma para el dashboard:
//   - Merma por departamento con % de participación.
//   - Tendencia mensual de unidades y valor perdido.
//   - Resumen de tarjetas (artículos, alertas activas, casos abiertos, valor).
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo}
}

// GetShrinkageReport genera el reporte completo de merma para un período.
func (uc *AnalyticsUseCase) GetShrinkageReport(ctx context.Context, req dto.ShrinkageReportRequest) (*dto.ShrinkageReportDTO, error) {
	startDate, endDate, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	months := req.Months
	if months <= 0 {
		months = defaultTrendMonths
	}
	if months > maxTrendMonths {
		months = maxTrendMonths
	}

	// Consultar departamentos y tendencia en paralelo (llamadas independientes)
	type deptResult struct {
		rows []repository.DepartmentShrinkageResult
		err  error
	}
	type trendResult struct {
		rows []repository.MonthlyShrinkageResult
		err  error
	}

	deptChan := make(chan deptResult, 1)
	trendChan := make(chan trendResult, 1)

	go func() {
		rows, err := uc.analyticsRepo.GetDepartmentShrinkage(ctx, startDate, endDate)
		deptChan <- deptResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetMonthlyShrinkage(ctx, months)
		trendChan <- trendResult{rows, err}
	}()

	deptRes := <-deptChan
	trendRes := <-trendChan

	if deptRes.err != nil {
		return nil, fmt.Errorf("analytics: departamentos: %w", deptRes.err)
	}
	if trendRes.err != nil {
		return nil, fmt.Errorf("analytics: tendencia: %w", trendRes.err)
	}

	var totalLoss decimal.Decimal
	for _, r := range deptRes.rows {
		totalLoss = totalLoss.Add(r.TotalLoss)
	}

	byDept := make([]dto.DepartmentShrinkageDTO, 0, len(deptRes.rows))
	for _, r := range deptRes.rows {
		share := decimal.Zero
		if totalLoss.IsPositive() {
			share = r.TotalLoss.Div(totalLoss).Mul(hundred).Round(2)
		}
		byDept = append(byDept, dto.DepartmentShrinkageDTO{
			Department: r.Department,
			UnitsLost:  r.UnitsLost,
			TotalLoss:  r.TotalLoss,
			SharePct:   share,
		})
	}

	trend := make([]dto.MonthlyShrinkageDTO, 0, len(trendRes.rows))
	for _, r := range trendRes.rows {
		trend = append(trend, dto.MonthlyShrinkageDTO{
			Month:     r.Month.Format("2006-01"),
			UnitsLost: r.UnitsLost,
			TotalLoss: r.TotalLoss,
		})
	}

	return &dto.ShrinkageReportDTO{
		Period: dto.PeriodDTO{
			StartDate: startDate.Format("2006-01-02"),
			EndDate:   endDate.Format("2006-01-02"),
		},
		TotalLoss:    totalLoss,
		ByDepartment: byDept,
		MonthlyTrend: trend,
	}, nil
}

// GetDashboardSummary arma las tarjetas del dashboard con las consultas de
// conteo lanzadas en paralelo.
func (uc *AnalyticsUseCase) GetDashboardSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	from := time.Now().AddDate(-1, 0, 0)
	to := time.Now()

	type intResult struct {
		n   int
		err error
	}
	type decResult struct {
		v   decimal.Decimal
		err error
	}
	type statusResult struct {
		rows []repository.StatusCountResult
		err  error
	}

	itemsChan := make(chan intResult, 1)
	alertsChan := make(chan intResult, 1)
	invChan := make(chan intResult, 1)
	valueChan := make(chan decResult, 1)
	statusChan := make(chan statusResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountItems(ctx)
		itemsChan <- intResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountActiveAlerts(ctx)
		alertsChan <- intResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountOpenInvestigations(ctx)
		invChan <- intResult{n, err}
	}()
	go func() {
		v, err := uc.analyticsRepo.TotalShrinkageValue(ctx, from, to)
		valueChan <- decResult{v, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetStatusBreakdown(ctx)
		statusChan <- statusResult{rows, err}
	}()

	items := <-itemsChan
	alerts := <-alertsChan
	invs := <-invChan
	value := <-valueChan
	status := <-statusChan

	for _, err := range []error{items.err, alerts.err, invs.err, value.err, status.err} {
		if err != nil {
			return nil, fmt.Errorf("analytics: resumen: %w", err)
		}
	}

	breakdown := make([]dto.StatusCountDTO, 0, len(status.rows))
	for _, r := range status.rows {
		breakdown = append(breakdown, dto.StatusCountDTO{Status: r.Status, Count: r.Count})
	}

	return &dto.DashboardSummaryDTO{
		TotalItems:         items.n,
		ActiveAlerts:       alerts.n,
		OpenInvestigations: invs.n,
		ShrinkageValue:     value.v,
		StatusBreakdown:    breakdown,
	}, nil
}

// parsePeriod interpreta el rango YYYY-MM-DD; vacío = últimos 12 meses.
func parsePeriod(start, end string) (time.Time, time.Time, error) {
	now := time.Now()
	startDate := now.AddDate(-1, 0, 0)
	endDate := now
	if start != "" {
		t, err := time.Parse("2006-01-02", start)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: start_date %q", domain.ErrInvalidInput, start)
		}
		startDate = t
	}
	if end != "" {
		t, err := time.Parse("2006-01-02", end)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date %q", domain.ErrInvalidInput, end)
		}
		endDate = t
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: rango de fechas invertido", domain.ErrInvalidInput)
	}
	return startDate, endDate, nil
}
