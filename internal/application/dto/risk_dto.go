package dto

import "time"

// UpsertRiskRequest marca o actualiza un artículo como de alto riesgo.
type UpsertRiskRequest struct {
	SKU                string   `json:"sku" validate:"required"`
	RiskScore          int      `json:"risk_score" validate:"min=0,max=100"`
	RiskFactors        []string `json:"risk_factors"`
	RecommendedActions []string `json:"recommended_actions"`
}

// RiskResponse salida de un artículo de alto riesgo.
type RiskResponse struct {
	ID                 string    `json:"id"`
	ItemID             string    `json:"item_id"`
	SKU                string    `json:"sku"`
	RiskScore          int       `json:"risk_score"`
	RiskFactors        []string  `json:"risk_factors"`
	RecommendedActions []string  `json:"recommended_actions"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// RiskListResponse lista paginada de artículos de alto riesgo.
type RiskListResponse struct {
	Items []RiskResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
