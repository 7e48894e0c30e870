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

var _ repository.InvestigationRepository = (*InvestigationRepo)(nil)

const investigationColumns = `id, alert_id, title, department, investigator, status, priority, estimated_loss, notes, opened_at, closed_at`

// InvestigationRepo implementación del puerto InvestigationRepository sobre PostgreSQL.
type InvestigationRepo struct {
	q Querier
}

// NewInvestigationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvestigationRepository(q Querier) *InvestigationRepo {
	return &InvestigationRepo{q: q}
}

// Create persiste una investigación nueva.
func (r *InvestigationRepo) Create(inv *entity.Investigation) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	query := `
		INSERT INTO investigations (` + investigationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.AlertID, inv.Title, inv.Department, inv.Investigator,
		inv.Status, inv.Priority, inv.EstimatedLoss, inv.Notes, inv.OpenedAt, inv.ClosedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("create investigation: %w", err)
	}
	return nil
}

// GetByID obtiene una investigación por ID. Devuelve nil, nil si no existe.
func (r *InvestigationRepo) GetByID(id string) (*entity.Investigation, error) {
	query := `SELECT ` + investigationColumns + ` FROM investigations WHERE id = $1`
	var inv entity.Investigation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.AlertID, &inv.Title, &inv.Department, &inv.Investigator,
		&inv.Status, &inv.Priority, &inv.EstimatedLoss, &inv.Notes, &inv.OpenedAt, &inv.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get investigation: %w", err)
	}
	return &inv, nil
}

// List lista investigaciones, opcionalmente por estado, más recientes primero.
func (r *InvestigationRepo) List(status string, limit, offset int) ([]*entity.Investigation, error) {
	query := `SELECT ` + investigationColumns + ` FROM investigations`
	var args []any
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY opened_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list investigations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Investigation
	for rows.Next() {
		var inv entity.Investigation
		if err := rows.Scan(
			&inv.ID, &inv.AlertID, &inv.Title, &inv.Department, &inv.Investigator,
			&inv.Status, &inv.Priority, &inv.EstimatedLoss, &inv.Notes, &inv.OpenedAt, &inv.ClosedAt,
		); err != nil {
			return nil, fmt.Errorf("scan investigation: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// Update actualiza una investigación existente.
func (r *InvestigationRepo) Update(inv *entity.Investigation) error {
	query := `
		UPDATE investigations
		SET alert_id = $2, title = $3, department = $4, investigator = $5,
		    status = $6, priority = $7, estimated_loss = $8, notes = $9, closed_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		inv.ID, inv.AlertID, inv.Title, inv.Department, inv.Investigator,
		inv.Status, inv.Priority, inv.EstimatedLoss, inv.Notes, inv.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("update investigation: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una investigación por ID.
func (r *InvestigationRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM investigations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete investigation: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CountByStatus cuenta investigaciones por estado.
func (r *InvestigationRepo) CountByStatus(status string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM investigations WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count investigations: %w", err)
	}
	return count, nil
}
