package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/contaflow-api/internal/domain/entity"
	"github.com/jhoicas/contaflow-api/internal/domain/repository"
)

// Asegura que ReminderRepo implementa repository.ReminderRepository.
var _ repository.ReminderRepository = (*ReminderRepo)(nil)

// ReminderRepo implementación del puerto ReminderRepository sobre PostgreSQL.
type ReminderRepo struct {
	pool *pgxpool.Pool
}

// NewReminderRepository construye el adaptador de persistencia para recordatorios.
func NewReminderRepository(pool *pgxpool.Pool) *ReminderRepo {
	return &ReminderRepo{pool: pool}
}

// ListCandidates devuelve las tareas no completadas cuyo vencimiento cae en
// checkDate+{7,3,1,0} días o ya pasó, con el tipo de recordatorio derivado de la
// distancia al vencimiento y los reminder_days de la plantilla origen (NULL para
// tareas manuales). Excluye pares (task, type) ya registrados en sent_reminders,
// así cada recordatorio se intenta una sola vez.
func (r *ReminderRepo) ListCandidates(ctx context.Context, checkDate time.Time) ([]repository.ReminderCandidate, error) {
	query := `
		SELECT cand.task_id, cand.user_id, cand.user_email, cand.company_name,
			cand.task_title, cand.due_date, cand.reminder_type, cand.days_until_due,
			cand.reminder_days
		FROM (
			SELECT t.id AS task_id, u.id AS user_id, u.email AS user_email,
				c.name AS company_name, t.title AS task_title, t.due_date,
				CASE (t.due_date::date - $1::date)
					WHEN 7 THEN '7days'
					WHEN 3 THEN '3days'
					WHEN 1 THEN '1day'
					WHEN 0 THEN 'due'
					ELSE 'overdue'
				END AS reminder_type,
				(t.due_date::date - $1::date) AS days_until_due,
				tpl.reminder_days
			FROM tasks t
			JOIN companies c ON c.id = t.company_id
			JOIN users u ON u.id = c.user_id
			LEFT JOIN task_templates tpl ON tpl.id = t.template_id
			WHERE t.status <> 'completed'
			  AND ((t.due_date::date - $1::date) IN (7, 3, 1, 0) OR t.due_date::date < $1::date)
		) cand
		WHERE NOT EXISTS (
			SELECT 1 FROM sent_reminders sr
			WHERE sr.task_id = cand.task_id AND sr.reminder_type = cand.reminder_type
		)
		ORDER BY cand.due_date ASC`

	rows, err := r.pool.Query(ctx, query, checkDate)
	if err != nil {
		return nil, fmt.Errorf("list reminder candidates: %w", err)
	}
	defer rows.Close()

	var list []repository.ReminderCandidate
	for rows.Next() {
		var cand repository.ReminderCandidate
		if err := rows.Scan(
			&cand.TaskID, &cand.UserID, &cand.UserEmail, &cand.CompanyName,
			&cand.TaskTitle, &cand.DueDate, &cand.ReminderType, &cand.DaysUntilDue,
			&cand.ReminderDays,
		); err != nil {
			return nil, fmt.Errorf("scan reminder candidate: %w", err)
		}
		list = append(list, cand)
	}
	return list, rows.Err()
}

// Insert registra un intento de envío (exitoso o fallido).
func (r *ReminderRepo) Insert(ctx context.Context, sr *entity.SentReminder) error {
	query := `
		INSERT INTO sent_reminders (id, task_id, user_id, reminder_type, email_sent, error_message, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (task_id, reminder_type) DO NOTHING`
	_, err := r.pool.Exec(ctx, query,
		sr.ID, sr.TaskID, sr.UserID, sr.ReminderType, sr.EmailSent, sr.ErrorMessage, sr.SentAt,
	)
	if err != nil {
		return fmt.Errorf("insert sent reminder: %w", err)
	}
	return nil
}
