package dto

import "time"

// CreateTaskRequest entrada para crear una tarea manual (template_id = null).
type CreateTaskRequest struct {
	Title          string   `json:"title" validate:"required,min=1,max=300"`
	Description    string   `json:"description"`
	DueDate        string   `json:"due_date" validate:"required"` // YYYY-MM-DD
	Notes          string   `json:"notes"`
	DependsOnTasks []string `json:"depends_on_tasks"`
}

// SetTaskCompletionRequest entrada del toggle de completitud.
type SetTaskCompletionRequest struct {
	// Puntero para distinguir "false" de "campo ausente" (400 si falta).
	Completed *bool `json:"completed"`
}

// TaskStatusResponse resultado del toggle: id + estado resultante.
type TaskStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// TaskResponse salida de una tarea. IsOverdue es derivado, nunca persistido.
type TaskResponse struct {
	ID             string     `json:"id"`
	CompanyID      string     `json:"company_id"`
	TemplateID     *string    `json:"template_id,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	DueDate        string     `json:"due_date"`
	Status         string     `json:"status"`
	IsOverdue      bool       `json:"is_overdue"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CompletedBy    *string    `json:"completed_by,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	DependsOnTasks []string   `json:"depends_on_tasks,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TaskListResponse respuesta del listado RPC: total + datos.
type TaskListResponse struct {
	Count int            `json:"count"`
	Data  []TaskResponse `json:"data"`
}

// GenerateTasksRequest cuerpo de POST /rpc/generate_tasks_for_company.
// Cada campo reconocido se valida explícitamente (nada de parámetros dinámicos).
type GenerateTasksRequest struct {
	CompanyID   string `json:"company_id" validate:"required,uuid"`
	StartDate   string `json:"start_date" validate:"omitempty"` // YYYY-MM-DD
	MonthsAhead *int   `json:"months_ahead" validate:"omitempty,min=1,max=36"`
}

// GenerationResult resumen de una corrida de generación.
type GenerationResult struct {
	CompanyID        string   `json:"company_id"`
	TasksCreated     int      `json:"tasks_created"`
	TemplatesApplied int      `json:"templates_applied"`
	TemplatesSkipped int      `json:"templates_skipped"`
	TemplateErrors   []string `json:"template_errors,omitempty"`
}

// SweepResult resumen del barrido de estados.
type SweepResult struct {
	Examined int `json:"examined"`
	Updated  int `json:"updated"`
}

// ReminderRunResult resumen de una corrida de recordatorios.
type ReminderRunResult struct {
	Processed int      `json:"processed"`
	Sent      int      `json:"sent"`
	Errors    int      `json:"errors"`
	Details   []string `json:"error_details,omitempty"`
}
