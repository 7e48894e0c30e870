package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/merma-api/internal/domain/entity"
	"github.com/jhoicas/merma-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura para el dashboard de
// merma. Trabaja directo sobre el pool: no participa en transacciones.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetDepartmentShrinkage agrupa los movimientos de merma (damaged + stolen)
// por departamento en el período, sumando unidades y valor estimado
// (cantidad × valor unitario actual del artículo).
func (r *AnalyticsRepo) GetDepartmentShrinkage(ctx context.Context, from, to time.Time) ([]repository.DepartmentShrinkageResult, error) {
	const query = `
	SELECT
	    i.department                              AS department,
	    COALESCE(SUM(m.quantity), 0)              AS units_lost,
	    COALESCE(SUM(m.quantity * i.unit_value), 0) AS total_loss
	FROM stock_movements m
	JOIN inventory_items i ON i.id = m.item_id
	WHERE m.type IN ($1, $2)
	  AND m.date BETWEEN $3 AND $4
	GROUP BY i.department
	ORDER BY total_loss DESC`

	rows, err := r.pool.Query(ctx, query,
		entity.MovementDamaged, entity.MovementStolen, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetDepartmentShrinkage: %w", err)
	}
	defer rows.Close()

	var results []repository.DepartmentShrinkageResult
	for rows.Next() {
		var row repository.DepartmentShrinkageResult
		if err := rows.Scan(&row.Department, &row.UnitsLost, &row.TotalLoss); err != nil {
			return nil, fmt.Errorf("analytics.GetDepartmentShrinkage scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetMonthlyShrinkage agrupa la merma por mes calendario, últimos n meses.
func (r *AnalyticsRepo) GetMonthlyShrinkage(ctx context.Context, months int) ([]repository.MonthlyShrinkageResult, error) {
	const query = `
	SELECT
	    date_trunc('month', m.date)               AS month,
	    COALESCE(SUM(m.quantity), 0)              AS units_lost,
	    COALESCE(SUM(m.quantity * i.unit_value), 0) AS total_loss
	FROM stock_movements m
	JOIN inventory_items i ON i.id = m.item_id
	WHERE m.type IN ($1, $2)
	  AND m.date >= date_trunc('month', now()) - ($3 || ' months')::INTERVAL
	GROUP BY date_trunc('month', m.date)
	ORDER BY month`

	rows, err := r.pool.Query(ctx, query,
		entity.MovementDamaged, entity.MovementStolen, months)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetMonthlyShrinkage: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlyShrinkageResult
	for rows.Next() {
		var row repository.MonthlyShrinkageResult
		if err := rows.Scan(&row.Month, &row.UnitsLost, &row.TotalLoss); err != nil {
			return nil, fmt.Errorf("analytics.GetMonthlyShrinkage scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetStatusBreakdown cuenta artículos por estado.
func (r *AnalyticsRepo) GetStatusBreakdown(ctx context.Context) ([]repository.StatusCountResult, error) {
	const query = `
	SELECT status, COUNT(*) FROM inventory_items GROUP BY status ORDER BY status`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetStatusBreakdown: %w", err)
	}
	defer rows.Close()

	var results []repository.StatusCountResult
	for rows.Next() {
		var row repository.StatusCountResult
		if err := rows.Scan(&row.Status, &row.Count); err != nil {
			return nil, fmt.Errorf("analytics.GetStatusBreakdown scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CountItems cuenta los artículos del catálogo.
func (r *AnalyticsRepo) CountItems(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM inventory_items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountItems: %w", err)
	}
	return count, nil
}

// CountActiveAlerts cuenta alertas en estado activo.
func (r *AnalyticsRepo) CountActiveAlerts(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM loss_alerts WHERE status = $1`,
		entity.AlertStatusActive).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountActiveAlerts: %w", err)
	}
	return count, nil
}

// CountOpenInvestigations cuenta investigaciones abiertas o en revisión.
func (r *AnalyticsRepo) CountOpenInvestigations(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM investigations WHERE status IN ($1, $2)`,
		entity.InvestigationStatusOpen, entity.InvestigationStatusInReview).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("analytics.CountOpenInvestigations: %w", err)
	}
	return count, nil
}

// TotalShrinkageValue suma el valor estimado de la merma en el período.
func (r *AnalyticsRepo) TotalShrinkageValue(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(m.quantity * i.unit_value), 0)
	FROM stock_movements m
	JOIN inventory_items i ON i.id = m.item_id
	WHERE m.type IN ($1, $2)
	  AND m.date BETWEEN $3 AND $4`
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx, query,
		entity.MovementDamaged, entity.MovementStolen, from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("analytics.TotalShrinkageValue: %w", err)
	}
	return total, nil
}
