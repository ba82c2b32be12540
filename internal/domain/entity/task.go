package entity

import "time"

// Estados de una tarea. "blocked" significa que alguna dependencia no está completada.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusBlocked    = "blocked"
	TaskStatusCompleted  = "completed"
)

// Task es una obligación concreta con fecha de vencimiento. Puede nacer de una
// plantilla (TemplateID != nil) o crearse manualmente (TemplateID == nil).
//
// Invariante: Status == completed ⟺ CompletedAt != nil y CompletedBy != nil.
type Task struct {
	ID             string
	CompanyID      string
	TemplateID     *string // nil para tareas manuales
	Title          string
	Description    string
	DueDate        time.Time
	Status         string // ver constantes TaskStatus*
	CompletedAt    *time.Time
	CompletedBy    *string
	Notes          string
	DependsOnTasks []string // IDs de tareas que deben completarse antes
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsCompleted informa si la tarea está completada.
func (t *Task) IsCompleted() bool { return t.Status == TaskStatusCompleted }

// IsOverdue informa si la tarea está vencida respecto a la fecha dada.
// "overdue" NO es un estado persistido: es una etiqueta derivada de DueDate.
func (t *Task) IsOverdue(today time.Time) bool {
	if t.Status == TaskStatusCompleted {
		return false
	}
	y, m, d := today.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return t.DueDate.Before(dayStart)
}
