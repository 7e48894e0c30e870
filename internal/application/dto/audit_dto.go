package dto

import "time"

// CreateAuditRequest entrada para programar una auditoría.
type CreateAuditRequest struct {
	Department    string `json:"department" validate:"required,max=100"`
	Auditor       string `json:"auditor" validate:"required,max=200"`
	ScheduledDate string `json:"scheduled_date" validate:"required"` // MM/DD/YYYY o ISO-8601
	Notes         string `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateAuditRequest avance o cierre de una auditoría.
type UpdateAuditRequest struct {
	Status             *string `json:"status" validate:"omitempty,oneof=scheduled in_progress completed"`
	ItemsAudited       *int    `json:"items_audited" validate:"omitempty,min=0"`
	DiscrepanciesFound *int    `json:"discrepancies_found" validate:"omitempty,min=0"`
	Notes              *string `json:"notes" validate:"omitempty,max=2000"`
}

// AuditResponse salida de una auditoría.
type AuditResponse struct {
	ID                 string     `json:"id"`
	Department         string     `json:"department"`
	Auditor            string     `json:"auditor"`
	ScheduledDate      time.Time  `json:"scheduled_date"`
	Status             string     `json:"status"`
	ItemsAudited       int        `json:"items_audited"`
	DiscrepanciesFound int        `json:"discrepancies_found"`
	Notes              string     `json:"notes"`
	CreatedAt          time.Time  `json:"created_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

// AuditListResponse lista paginada de auditorías.
type AuditListResponse struct {
	Items []AuditResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
