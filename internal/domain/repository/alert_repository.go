package repository

import "github.com/jhoicas/merma-api/internal/domain/entity"

// AlertRepository puerto de persistencia para LossAlert.
type AlertRepository interface {
	Create(alert *entity.LossAlert) error
	GetByID(id string) (*entity.LossAlert, error)
	List(status string, limit, offset int) ([]*entity.LossAlert, error)
	Update(alert *entity.LossAlert) error
	Delete(id string) error
	CountByStatus(status string) (int, error)
}
