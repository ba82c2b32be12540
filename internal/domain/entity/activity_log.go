package entity

import "time"

// Acciones registradas en la bitácora.
const (
	ActionTaskCompleted     = "task_completed"
	ActionTaskCreatedManual = "task_created_manual"
	ActionTasksGenerated    = "tasks_generated"
	ActionCompanyCreated    = "company_created"
	ActionCompanyUpdated    = "company_updated"
)

// ActivityLog es un registro de auditoría inmutable (append-only).
// Su escritura es best-effort: un fallo se registra en el log pero nunca
// revierte ni hace fallar la mutación principal.
type ActivityLog struct {
	ID          string
	UserID      string
	CompanyID   *string
	TaskID      *string
	Action      string
	Description string
	CreatedAt   time.Time
}
