package repository

import "github.com/jhoicas/merma-api/internal/domain/entity"

// InvestigationRepository puerto de persistencia para Investigation.
type InvestigationRepository interface {
	Create(inv *entity.Investigation) error
	GetByID(id string) (*entity.Investigation, error)
	List(status string, limit, offset int) ([]*entity.Investigation, error)
	Update(inv *entity.Investigation) error
	Delete(id string) error
	CountByStatus(status string) (int, error)
}
