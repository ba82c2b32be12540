package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/contaflow-api/internal/domain/entity"
	"github.com/jhoicas/contaflow-api/internal/domain/repository"
)

// Asegura que NotificationRepo implementa repository.NotificationRepository.
var _ repository.NotificationRepository = (*NotificationRepo)(nil)

const prefsColumns = `id, user_id, email_daily_summary, email_task_reminder_7days,
	email_task_reminder_3days, email_task_reminder_1day, email_task_reminder_due,
	email_overdue_tasks, push_task_completed, push_company_added, push_system_updates,
	created_at, updated_at`

// NotificationRepo implementación del puerto NotificationRepository sobre PostgreSQL.
type NotificationRepo struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository construye el adaptador de persistencia para preferencias.
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

// GetByUser obtiene las preferencias del usuario; (nil, nil) si nunca las guardó.
func (r *NotificationRepo) GetByUser(ctx context.Context, userID string) (*entity.NotificationPreferences, error) {
	query := `SELECT ` + prefsColumns + ` FROM notification_preferences WHERE user_id = $1`
	var p entity.NotificationPreferences
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.EmailDailySummary, &p.EmailTaskReminder7Days,
		&p.EmailTaskReminder3Days, &p.EmailTaskReminder1Day, &p.EmailTaskReminderDue,
		&p.EmailOverdueTasks, &p.PushTaskCompleted, &p.PushCompanyAdded, &p.PushSystemUpdates,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return &p, nil
}

// Upsert inserta o actualiza las preferencias del usuario (una fila por usuario).
func (r *NotificationRepo) Upsert(ctx context.Context, p *entity.NotificationPreferences) error {
	query := `
		INSERT INTO notification_preferences (` + prefsColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (user_id) DO UPDATE SET
			email_daily_summary = EXCLUDED.email_daily_summary,
			email_task_reminder_7days = EXCLUDED.email_task_reminder_7days,
			email_task_reminder_3days = EXCLUDED.email_task_reminder_3days,
			email_task_reminder_1day = EXCLUDED.email_task_reminder_1day,
			email_task_reminder_due = EXCLUDED.email_task_reminder_due,
			email_overdue_tasks = EXCLUDED.email_overdue_tasks,
			push_task_completed = EXCLUDED.push_task_completed,
			push_company_added = EXCLUDED.push_company_added,
			push_system_updates = EXCLUDED.push_system_updates,
			updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.UserID, p.EmailDailySummary, p.EmailTaskReminder7Days,
		p.EmailTaskReminder3Days, p.EmailTaskReminder1Day, p.EmailTaskReminderDue,
		p.EmailOverdueTasks, p.PushTaskCompleted, p.PushCompanyAdded, p.PushSystemUpdates,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	return nil
}
