package repository

import "github.com/jhoicas/merma-api/internal/domain/entity"

// AuditRepository puerto de persistencia para Audit.
type AuditRepository interface {
	Create(audit *entity.Audit) error
	GetByID(id string) (*entity.Audit, error)
	List(status string, limit, offset int) ([]*entity.Audit, error)
	Update(audit *entity.Audit) error
	Delete(id string) error
}
