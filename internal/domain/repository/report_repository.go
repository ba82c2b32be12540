package repository

import (
	"context"
	"time"
)

// MonthlySummary son los agregados del informe mensual de cumplimiento de una empresa.
type MonthlySummary struct {
	CompanyID      string
	CompanyName    string
	FiscalCode     string
	Year           int
	Month          time.Month
	TotalTasks     int
	CompletedTasks int
	PendingTasks   int
	BlockedTasks   int
	OverdueTasks   int // derivado: due_date pasada y no completada
}

// ReportTaskRow es una línea del detalle del informe mensual.
type ReportTaskRow struct {
	Title       string
	DueDate     time.Time
	Status      string
	CompletedAt *time.Time
	CompletedBy string // nombre del usuario, vacío si no aplica
}

// ReportRepository define consultas de solo lectura para informes.
type ReportRepository interface {
	MonthlySummary(ctx context.Context, companyID string, year int, month time.Month, today time.Time) (*MonthlySummary, error)
	MonthlyTasks(ctx context.Context, companyID string, year int, month time.Month) ([]ReportTaskRow, error)
}
