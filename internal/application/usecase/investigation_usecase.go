package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/merma-api/internal/application/dto"
	"github.com/jhoicas/merma-api/internal/domain"
	"github.com/jhoicas/merma-api/internal/domain/entity"
	"github.com/jhoicas/merma-api/internal/domain/repository"
)

// InvestigationUseCase casos de uso para investigaciones de merma.
type InvestigationUseCase struct {
	repo      repository.InvestigationRepository
	alertRepo repository.AlertRepository
}

// NewInvestigationUseCase construye el caso de uso.
func NewInvestigationUseCase(repo repository.InvestigationRepository, alertRepo repository.AlertRepository) *InvestigationUseCase {
	return &InvestigationUseCase{repo: repo, alertRepo: alertRepo}
}

// Create abre una investigación; si viene AlertID, la alerta debe existir.
func (uc *InvestigationUseCase) Create(in dto.CreateInvestigationRequest) (*dto.InvestigationResponse, error) {
	if in.AlertID != nil {
		alert, err := uc.alertRepo.GetByID(*in.AlertID)
		if err != nil {
			return nil, err
		}
		if alert == nil {
			return nil, domain.ErrNotFound
		}
	}
	inv := &entity.Investigation{
		ID:            uuid.New().String(),
		AlertID:       in.AlertID,
		Title:         in.Title,
		Department:    in.Department,
		Investigator:  in.Investigator,
		Status:        entity.InvestigationStatusOpen,
		Priority:      in.Priority,
		EstimatedLoss: in.EstimatedLoss,
		Notes:         in.Notes,
		OpenedAt:      time.Now(),
	}
	if err := uc.repo.Create(inv); err != nil {
		return nil, err
	}
	return toInvestigationResponse(inv), nil
}

// GetByID obtiene una investigación por ID.
func (uc *InvestigationUseCase) GetByID(id string) (*dto.InvestigationResponse, error) {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	return toInvestigationResponse(inv), nil
}

// List lista investigaciones, opcionalmente por estado.
func (uc *InvestigationUseCase) List(status string, limit, offset int) (*dto.InvestigationListResponse, error) {
	invs, err := uc.repo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvestigationResponse, 0, len(invs))
	for _, inv := range invs {
		out = append(out, *toInvestigationResponse(inv))
	}
	return &dto.InvestigationListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update avanza el caso; closed sella ClosedAt, reabrir la limpia.
func (uc *InvestigationUseCase) Update(id string, in dto.UpdateInvestigationRequest) (*dto.InvestigationResponse, error) {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if in.Investigator != nil {
		inv.Investigator = *in.Investigator
	}
	if in.Priority != nil {
		inv.Priority = *in.Priority
	}
	if in.EstimatedLoss != nil {
		inv.EstimatedLoss = *in.EstimatedLoss
	}
	if in.Notes != nil {
		inv.Notes = *in.Notes
	}
	if in.Status != nil && *in.Status != inv.Status {
		inv.Status = *in.Status
		if inv.Status == entity.InvestigationStatusClosed {
			now := time.Now()
			inv.ClosedAt = &now
		} else {
			inv.ClosedAt = nil
		}
	}
	if err := uc.repo.Update(inv); err != nil {
		return nil, err
	}
	return toInvestigationResponse(inv), nil
}

// Delete elimina una investigación.
func (uc *InvestigationUseCase) Delete(id string) error {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toInvestigationResponse(inv *entity.Investigation) *dto.InvestigationResponse {
	return &dto.InvestigationResponse{
		ID:            inv.ID,
		AlertID:       inv.AlertID,
		Title:         inv.Title,
		Department:    inv.Department,
		Investigator:  inv.Investigator,
		Status:        inv.Status,
		Priority:      inv.Priority,
		EstimatedLoss: inv.EstimatedLoss,
		Notes:         inv.Notes,
		OpenedAt:      inv.OpenedAt,
		ClosedAt:      inv.ClosedAt,
	}
}
