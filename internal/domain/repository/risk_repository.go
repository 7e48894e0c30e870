package repository

import "github.com/jhoicas/merma-api/internal/domain/entity"

// RiskRepository puerto de persistencia para HighRiskItem. Un artículo tiene
// a lo sumo una fila de riesgo; Upsert la reemplaza.
type RiskRepository interface {
	Upsert(risk *entity.HighRiskItem) error
	GetByItem(itemID string) (*entity.HighRiskItem, error)
	List(limit, offset int) ([]*entity.HighRiskItem, error)
	DeleteByItem(itemID string) error
}
