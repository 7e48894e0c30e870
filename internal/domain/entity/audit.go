package entity

import "time"

// Estados de una auditoría de inventario.
const (
	AuditStatusScheduled  = "scheduled"
	AuditStatusInProgress = "in_progress"
	AuditStatusCompleted  = "completed"
)

// Audit es una auditoría de conteo sobre un departamento: quién la hace,
// cuándo, cuántos artículos se contaron y cuántas discrepancias aparecieron.
type Audit struct {
	ID                 string
	Department         string
	Auditor            string
	ScheduledDate      time.Time
	Status             string
	ItemsAudited       int
	DiscrepanciesFound int
	Notes              string
	CreatedAt          time.Time
	CompletedAt        *time.Time
}
