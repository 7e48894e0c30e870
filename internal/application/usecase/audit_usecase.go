package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/merma-api/internal/application/dto"
	"github.com/jhoicas/merma-api/internal/domain"
	"github.com/jhoicas/merma-api/internal/domain/csvio"
	"github.com/jhoicas/merma-api/internal/domain/entity"
	"github.com/jhoicas/merma-api/internal/domain/repository"
)

// AuditUseCase casos de uso para auditorías de conteo.
type AuditUseCase struct {
	repo repository.AuditRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(repo repository.AuditRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// Create programa una auditoría nueva en estado scheduled.
func (uc *AuditUseCase) Create(in dto.CreateAuditRequest) (*dto.AuditResponse, error) {
	scheduled, ok := csvio.ParseDate(in.ScheduledDate)
	if !ok {
		return nil, fmt.Errorf("%w: fecha no reconocida %q", domain.ErrInvalidInput, in.ScheduledDate)
	}
	audit := &entity.Audit{
		ID:            uuid.New().String(),
		Department:    in.Department,
		Auditor:       in.Auditor,
		ScheduledDate: scheduled,
		Status:        entity.AuditStatusScheduled,
		Notes:         in.Notes,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(audit); err != nil {
		return nil, err
	}
	return toAuditResponse(audit), nil
}

// GetByID obtiene una auditoría por ID.
func (uc *AuditUseCase) GetByID(id string) (*dto.AuditResponse, error) {
	audit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if audit == nil {
		return nil, nil
	}
	return toAuditResponse(audit), nil
}

// List lista auditorías, opcionalmente por estado.
func (uc *AuditUseCase) List(status string, limit, offset int) (*dto.AuditListResponse, error) {
	audits, err := uc.repo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditResponse, 0, len(audits))
	for _, a := range audits {
		out = append(out, *toAuditResponse(a))
	}
	return &dto.AuditListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update registra avance de la auditoría; completed sella CompletedAt.
func (uc *AuditUseCase) Update(id string, in dto.UpdateAuditRequest) (*dto.AuditResponse, error) {
	audit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if audit == nil {
		return nil, domain.ErrNotFound
	}
	if in.ItemsAudited != nil {
		audit.ItemsAudited = *in.ItemsAudited
	}
	if in.DiscrepanciesFound != nil {
		audit.DiscrepanciesFound = *in.DiscrepanciesFound
	}
	if in.Notes != nil {
		audit.Notes = *in.Notes
	}
	if in.Status != nil && *in.Status != audit.Status {
		audit.Status = *in.Status
		if audit.Status == entity.AuditStatusCompleted {
			now := time.Now()
			audit.CompletedAt = &now
		} else {
			audit.CompletedAt = nil
		}
	}
	if err := uc.repo.Update(audit); err != nil {
		return nil, err
	}
	return toAuditResponse(audit), nil
}

// Delete elimina una auditoría.
func (uc *AuditUseCase) Delete(id string) error {
	audit, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if audit == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toAuditResponse(a *entity.Audit) *dto.AuditResponse {
	return &dto.AuditResponse{
		ID:                 a.ID,
		Department:         a.Department,
		Auditor:            a.Auditor,
		ScheduledDate:      a.ScheduledDate,
		Status:             a.Status,
		ItemsAudited:       a.ItemsAudited,
		DiscrepanciesFound: a.DiscrepanciesFound,
		Notes:              a.Notes,
		CreatedAt:          a.CreatedAt,
		CompletedAt:        a.CompletedAt,
	}
}
