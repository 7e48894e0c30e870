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

var _ repository.RiskRepository = (*RiskRepo)(nil)

const riskColumns = `id, item_id, sku, risk_score, risk_factors, recommended_actions, updated_at`

// RiskRepo implementación del puerto RiskRepository sobre PostgreSQL.
// risk_factors y recommended_actions se guardan como text[] (pgx los
// mapea a []string directamente).
type RiskRepo struct {
	q Querier
}

// NewRiskRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRiskRepository(q Querier) *RiskRepo {
	return &RiskRepo{q: q}
}

// Upsert inserta o reemplaza la fila de riesgo del artículo (una por artículo).
func (r *RiskRepo) Upsert(risk *entity.HighRiskItem) error {
	if risk.ID == "" {
		risk.ID = uuid.New().String()
	}
	query := `
		INSERT INTO high_risk_items (` + riskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (item_id) DO UPDATE SET
			risk_score = EXCLUDED.risk_score,
			risk_factors = EXCLUDED.risk_factors,
			recommended_actions = EXCLUDED.recommended_actions,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		risk.ID, risk.ItemID, risk.SKU, risk.RiskScore,
		risk.RiskFactors, risk.RecommendedActions, risk.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrItemNotFound
		}
		return fmt.Errorf("upsert risk: %w", err)
	}
	return nil
}

// GetByItem obtiene la fila de riesgo de un artículo. Devuelve nil, nil si no existe.
func (r *RiskRepo) GetByItem(itemID string) (*entity.HighRiskItem, error) {
	query := `SELECT ` + riskColumns + ` FROM high_risk_items WHERE item_id = $1`
	var h entity.HighRiskItem
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(
		&h.ID, &h.ItemID, &h.SKU, &h.RiskScore,
		&h.RiskFactors, &h.RecommendedActions, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get risk: %w", err)
	}
	return &h, nil
}

// List lista artículos de alto riesgo ordenados por puntaje descendente.
func (r *RiskRepo) List(limit, offset int) ([]*entity.HighRiskItem, error) {
	query := `
		SELECT ` + riskColumns + ` FROM high_risk_items
		ORDER BY risk_score DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list risks: %w", err)
	}
	defer rows.Close()
	var list []*entity.HighRiskItem
	for rows.Next() {
		var h entity.HighRiskItem
		if err := rows.Scan(
			&h.ID, &h.ItemID, &h.SKU, &h.RiskScore,
			&h.RiskFactors, &h.RecommendedActions, &h.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan risk: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}

// DeleteByItem elimina la fila de riesgo de un artículo.
func (r *RiskRepo) DeleteByItem(itemID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM high_risk_items WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete risk: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
