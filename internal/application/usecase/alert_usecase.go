package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/merma-api/internal/application/dto"
	"github.com/jhoicas/merma-api/internal/domain"
	"github.com/jhoicas/merma-api/internal/domain/entity"
	"github.com/jhoicas/merma-api/internal/domain/repository"
)

// AlertUseCase casos de uso para alertas de pérdida.
type AlertUseCase struct {
	repo     repository.AlertRepository
	itemRepo repository.ItemRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(repo repository.AlertRepository, itemRepo repository.ItemRepository) *AlertUseCase {
	return &AlertUseCase{repo: repo, itemRepo: itemRepo}
}

// Create crea una alerta ligada a un artículo existente (por SKU).
func (uc *AlertUseCase) Create(in dto.CreateAlertRequest) (*dto.AlertResponse, error) {
	item, err := uc.itemRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	alert := &entity.LossAlert{
		ID:            uuid.New().String(),
		ItemID:        item.ID,
		SKU:           item.SKU,
		Severity:      in.Severity,
		Description:   in.Description,
		Status:        entity.AlertStatusActive,
		EstimatedLoss: in.EstimatedLoss,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(alert); err != nil {
		return nil, err
	}
	return toAlertResponse(alert), nil
}

// GetByID obtiene una alerta por ID.
func (uc *AlertUseCase) GetByID(id string) (*dto.AlertResponse, error) {
	alert, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, nil
	}
	return toAlertResponse(alert), nil
}

// List lista alertas, opcionalmente por estado.
func (uc *AlertUseCase) List(status string, limit, offset int) (*dto.AlertListResponse, error) {
	alerts, err := uc.repo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, *toAlertResponse(a))
	}
	return &dto.AlertListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update cambia severidad, descripción o estado. Pasar a resolved o
// dismissed sella ResolvedAt; reabrir la limpia.
func (uc *AlertUseCase) Update(id string, in dto.UpdateAlertRequest) (*dto.AlertResponse, error) {
	alert, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}
	if in.Severity != nil {
		alert.Severity = *in.Severity
	}
	if in.Description != nil {
		alert.Description = *in.Description
	}
	if in.EstimatedLoss != nil {
		alert.EstimatedLoss = *in.EstimatedLoss
	}
	if in.Status != nil && *in.Status != alert.Status {
		alert.Status = *in.Status
		if alert.Status == entity.AlertStatusActive {
			alert.ResolvedAt = nil
		} else {
			now := time.Now()
			alert.ResolvedAt = &now
		}
	}
	if err := uc.repo.Update(alert); err != nil {
		return nil, err
	}
	return toAlertResponse(alert), nil
}

// Delete elimina una alerta.
func (uc *AlertUseCase) Delete(id string) error {
	alert, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if alert == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toAlertResponse(a *entity.LossAlert) *dto.AlertResponse {
	return &dto.AlertResponse{
		ID:            a.ID,
		ItemID:        a.ItemID,
		SKU:           a.SKU,
		Severity:      a.Severity,
		Description:   a.Description,
		Status:        a.Status,
		EstimatedLoss: a.EstimatedLoss,
		CreatedAt:     a.CreatedAt,
		ResolvedAt:    a.ResolvedAt,
	}
}
