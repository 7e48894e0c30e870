package entity

import "time"

// HighRiskItem marca un artículo con riesgo alto de merma. RiskFactors y
// RecommendedActions son listas de texto que alimentan el panel de riesgo.
type HighRiskItem struct {
	ID                 string
	ItemID             string
	SKU                string
	RiskScore          int // 0-100
	RiskFactors        []string
	RecommendedActions []string
	UpdatedAt          time.Time
}
