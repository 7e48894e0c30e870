package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/merma-api/internal/domain"
	"github.com/jhoicas/merma-api/internal/domain/entity"
	"github.com/jhoicas/merma-api/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

const alertColumns = `id, item_id, sku, severity, description, status, estimated_loss, created_at, resolved_at`

// AlertRepo implementación del puerto AlertRepository sobre PostgreSQL.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

// Create persiste una alerta nueva.
func (r *AlertRepo) Create(alert *entity.LossAlert) error {
	if alert.ID == "" {
		alert.ID = uuid.New().String()
	}
	query := `
		INSERT INTO loss_alerts (` + alertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.ItemID, alert.SKU, alert.Severity, alert.Description,
		alert.Status, alert.EstimatedLoss, alert.CreatedAt, alert.ResolvedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrItemNotFound
		}
		return fmt.Errorf("create alert: %w", err)
	}
	return nil
}

// GetByID obtiene una alerta por ID. Devuelve nil, nil si no existe.
func (r *AlertRepo) GetByID(id string) (*entity.LossAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM loss_alerts WHERE id = $1`
	var a entity.LossAlert
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.ItemID, &a.SKU, &a.Severity, &a.Description,
		&a.Status, &a.EstimatedLoss, &a.CreatedAt, &a.ResolvedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return &a, nil
}

// List lista alertas, opcionalmente filtradas por estado, más recientes primero.
func (r *AlertRepo) List(status string, limit, offset int) ([]*entity.LossAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM loss_alerts`
	var args []any
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.LossAlert
	for rows.Next() {
		var a entity.LossAlert
		if err := rows.Scan(
			&a.ID, &a.ItemID, &a.SKU, &a.Severity, &a.Description,
			&a.Status, &a.EstimatedLoss, &a.CreatedAt, &a.ResolvedAt,
		); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza una alerta existente.
func (r *AlertRepo) Update(alert *entity.LossAlert) error {
	query := `
		UPDATE loss_alerts
		SET severity = $2, description = $3, status = $4, estimated_loss = $5, resolved_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		alert.ID, alert.Severity, alert.Description, alert.Status,
		alert.EstimatedLoss, alert.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("update alert: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una alerta por ID.
func (r *AlertRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM loss_alerts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete alert: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByStatus cuenta alertas por estado.
func (r *AlertRepo) CountByStatus(status string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM loss_alerts WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count alerts: %w", err)
	}
	return count, nil
}
