package dto

// MonthlyReportResponse informe mensual de cumplimiento de una empresa.
type MonthlyReportResponse struct {
	CompanyID      string              `json:"company_id"`
	CompanyName    string              `json:"company_name"`
	FiscalCode     string              `json:"fiscal_code"`
	Year           int                 `json:"year"`
	Month          int                 `json:"month"`
	TotalTasks     int                 `json:"total_tasks"`
	CompletedTasks int                 `json:"completed_tasks"`
	PendingTasks   int                 `json:"pending_tasks"`
	BlockedTasks   int                 `json:"blocked_tasks"`
	OverdueTasks   int                 `json:"overdue_tasks"`
	ComplianceRate float64             `json:"compliance_rate"` // completadas / total, 0 si no hay tareas
	Tasks          []ReportTaskItemDTO `json:"tasks"`
}

// ReportTaskItemDTO línea de detalle del informe.
type ReportTaskItemDTO struct {
	Title       string  `json:"title"`
	DueDate     string  `json:"due_date"`
	Status      string  `json:"status"`
	CompletedAt *string `json:"completed_at,omitempty"`
	CompletedBy string  `json:"completed_by,omitempty"`
}
