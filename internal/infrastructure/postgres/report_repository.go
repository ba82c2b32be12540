package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/contaflow-api/internal/domain/repository"
)

// Asegura que ReportRepo implementa repository.ReportRepository.
var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para informes mensuales.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de informes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// MonthlySummary agrega las tareas de una empresa cuyo vencimiento cae en el
// mes indicado. "overdue" se deriva contra today, no contra un estado guardado.
func (r *ReportRepo) MonthlySummary(ctx context.Context, companyID string, year int, month time.Month, today time.Time) (*repository.MonthlySummary, error) {
	query := `
		SELECT c.name, c.fiscal_code,
			COUNT(t.id),
			COUNT(t.id) FILTER (WHERE t.status = 'completed'),
			COUNT(t.id) FILTER (WHERE t.status = 'pending'),
			COUNT(t.id) FILTER (WHERE t.status = 'blocked'),
			COUNT(t.id) FILTER (WHERE t.status <> 'completed' AND t.due_date::date < $4::date)
		FROM companies c
		LEFT JOIN tasks t ON t.company_id = c.id
			AND EXTRACT(YEAR FROM t.due_date) = $2
			AND EXTRACT(MONTH FROM t.due_date) = $3
		WHERE c.id = $1
		GROUP BY c.name, c.fiscal_code`

	s := repository.MonthlySummary{CompanyID: companyID, Year: year, Month: month}
	err := r.pool.QueryRow(ctx, query, companyID, year, int(month), today).Scan(
		&s.CompanyName, &s.FiscalCode,
		&s.TotalTasks, &s.CompletedTasks, &s.PendingTasks, &s.BlockedTasks, &s.OverdueTasks,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("monthly summary: %w", err)
	}
	return &s, nil
}

// MonthlyTasks devuelve el detalle de tareas del mes, ordenado por vencimiento.
func (r *ReportRepo) MonthlyTasks(ctx context.Context, companyID string, year int, month time.Month) ([]repository.ReportTaskRow, error) {
	query := `
		SELECT t.title, t.due_date, t.status, t.completed_at, COALESCE(u.full_name, '')
		FROM tasks t
		LEFT JOIN users u ON u.id = t.completed_by
		WHERE t.company_id = $1
		  AND EXTRACT(YEAR FROM t.due_date) = $2
		  AND EXTRACT(MONTH FROM t.due_date) = $3
		ORDER BY t.due_date ASC, t.title ASC`

	rows, err := r.pool.Query(ctx, query, companyID, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("monthly tasks: %w", err)
	}
	defer rows.Close()

	var list []repository.ReportTaskRow
	for rows.Next() {
		var row repository.ReportTaskRow
		if err := rows.Scan(&row.Title, &row.DueDate, &row.Status, &row.CompletedAt, &row.CompletedBy); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
