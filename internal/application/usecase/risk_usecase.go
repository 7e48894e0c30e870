package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/merma-api/internal/application/dto"
	"github.com/jhoicas/merma-api/internal/domain"
	"github.com/jhoicas/merma-api/internal/domain/entity"
	"github.com/jhoicas/merma-api/internal/domain/repository"
)

// RiskUseCase casos de uso para el panel de artículos de alto riesgo.
type RiskUseCase struct {
	repo     repository.RiskRepository
	itemRepo repository.ItemRepository
}

// NewRiskUseCase construye el caso de uso.
func NewRiskUseCase(repo repository.RiskRepository, itemRepo repository.ItemRepository) *RiskUseCase {
	return &RiskUseCase{repo: repo, itemRepo: itemRepo}
}

// Upsert marca o actualiza un artículo como de alto riesgo (por SKU).
func (uc *RiskUseCase) Upsert(in dto.UpsertRiskRequest) (*dto.RiskResponse, error) {
	item, err := uc.itemRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	risk := &entity.HighRiskItem{
		ID:                 uuid.New().String(),
		ItemID:             item.ID,
		SKU:                item.SKU,
		RiskScore:          in.RiskScore,
		RiskFactors:        in.RiskFactors,
		RecommendedActions: in.RecommendedActions,
		UpdatedAt:          time.Now(),
	}
	if err := uc.repo.Upsert(risk); err != nil {
		return nil, err
	}
	return toRiskResponse(risk), nil
}

// List lista los artículos de alto riesgo.
func (uc *RiskUseCase) List(limit, offset int) (*dto.RiskListResponse, error) {
	risks, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RiskResponse, 0, len(risks))
	for _, r := range risks {
		out = append(out, *toRiskResponse(r))
	}
	return &dto.RiskListResponse{
		Items: out,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Remove quita la marca de alto riesgo de un artículo.
func (uc *RiskUseCase) Remove(itemID string) error {
	risk, err := uc.repo.GetByItem(itemID)
	if err != nil {
		return err
	}
	if risk == nil {
		return domain.ErrNotFound
	}
	return uc.repo.DeleteByItem(itemID)
}

func toRiskResponse(r *entity.HighRiskItem) *dto.RiskResponse {
	return &dto.RiskResponse{
		ID:                 r.ID,
		ItemID:             r.ItemID,
		SKU:                r.SKU,
		RiskScore:          r.RiskScore,
		RiskFactors:        r.RiskFactors,
		RecommendedActions: r.RecommendedActions,
		UpdatedAt:          r.UpdatedAt,
	}
}
