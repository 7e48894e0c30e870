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

var _ repository.AuditRepository = (*AuditRepo)(nil)

const auditColumns = `id, department, auditor, scheduled_date, status, items_audited, discrepancies_found, notes, created_at, completed_at`

// AuditRepo implementación del puerto AuditRepository sobre PostgreSQL.
type AuditRepo struct {
	q Querier
}

// NewAuditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditRepository(q Querier) *AuditRepo {
	return &AuditRepo{q: q}
}

// Create persiste una auditoría nueva.
func (r *AuditRepo) Create(audit *entity.Audit) error {
	if audit.ID == "" {
		audit.ID = uuid.New().String()
	}
	query := `
		INSERT INTO audits (` + auditColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		audit.ID, audit.Department, audit.Auditor, audit.ScheduledDate, audit.Status,
		audit.ItemsAudited, audit.DiscrepanciesFound, audit.Notes, audit.CreatedAt, audit.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("create audit: %w", err)
	}
	return nil
}

// GetByID obtiene una auditoría por ID. Devuelve nil, nil si no existe.
func (r *AuditRepo) GetByID(id string) (*entity.Audit, error) {
	query := `SELECT ` + auditColumns + ` FROM audits WHERE id = $1`
	var a entity.Audit
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Department, &a.Auditor, &a.ScheduledDate, &a.Status,
		&a.ItemsAudited, &a.DiscrepanciesFound, &a.Notes, &a.CreatedAt, &a.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get audit: %w", err)
	}
	return &a, nil
}

// List lista auditorías, opcionalmente por estado, programadas más próximas primero.
func (r *AuditRepo) List(status string, limit, offset int) ([]*entity.Audit, error) {
	query := `SELECT ` + auditColumns + ` FROM audits`
	var args []any
	pos := 1
	if status != "" {
		query += fmt.Sprintf(" WHERE status = $%d", pos)
		args = append(args, status)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY scheduled_date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audits: %w", err)
	}
	defer rows.Close()
	var list []*entity.Audit
	for rows.Next() {
		var a entity.Audit
		if err := rows.Scan(
			&a.ID, &a.Department, &a.Auditor, &a.ScheduledDate, &a.Status,
			&a.ItemsAudited, &a.DiscrepanciesFound, &a.Notes, &a.CreatedAt, &a.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update actualiza una auditoría existente.
func (r *AuditRepo) Update(audit *entity.Audit) error {
	query := `
		UPDATE audits
		SET department = $2, auditor = $3, scheduled_date = $4, status = $5,
		    items_audited = $6, discrepancies_found = $7, notes = $8, completed_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		audit.ID, audit.Department, audit.Auditor, audit.ScheduledDate, audit.Status,
		audit.ItemsAudited, audit.DiscrepanciesFound, audit.Notes, audit.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("update audit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una auditoría por ID.
func (r *AuditRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM audits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete audit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
