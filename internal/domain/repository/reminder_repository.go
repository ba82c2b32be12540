package repository

import (
	"context"
	"time"

	"github.com/jhoicas/contaflow-api/internal/domain/entity"
)

// ReminderCandidate es una fila del join tareas×empresas×usuarios que necesita
// un recordatorio en la fecha de corte.
type ReminderCandidate struct {
	TaskID       string
	UserID       string
	UserEmail    string
	CompanyName  string
	TaskTitle    string
	DueDate      time.Time
	ReminderType string // 7days | 3days | 1day | due | overdue
	DaysUntilDue int    // negativo si ya venció
	ReminderDays []int  // reminder_days de la plantilla origen; nil para tareas manuales
}

// ReminderRepository define el puerto para consultar candidatos y registrar envíos.
type ReminderRepository interface {
	// ListCandidates devuelve las tareas no completadas cuyo vencimiento cae en
	// checkDate+{7,3,1,0} días o ya pasó, excluyendo pares (task, type) ya
	// registrados en sent_reminders.
	ListCandidates(ctx context.Context, checkDate time.Time) ([]ReminderCandidate, error)
	Insert(ctx context.Context, r *entity.SentReminder) error
}
