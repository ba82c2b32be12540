package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/contaflow-api/internal/application/dto"
	"github.com/jhoicas/contaflow-api/internal/domain/entity"
	"github.com/jhoicas/contaflow-api/internal/domain/repository"
	"github.com/jhoicas/contaflow-api/pkg/logger"
)

// ReminderMailer define el puerto de salida para el envío de recordatorios.
// La implementación concreta usa la API HTTP de Resend; para tests se inyecta un mock.
type ReminderMailer interface {
	SendReminder(ctx context.Context, to string, c repository.ReminderCandidate) error
}

// ReminderUseCase procesa los recordatorios de vencimiento: consulta candidatos,
// respeta las preferencias de notificación del usuario, envía el email y
// registra cada intento en sent_reminders.
type ReminderUseCase struct {
	reminderRepo     repository.ReminderRepository
	notificationRepo repository.NotificationRepository
	mailer           ReminderMailer
	log              *logger.Logger
	now              func() time.Time
}

// NewReminderUseCase construye el caso de uso de recordatorios.
func NewReminderUseCase(reminderRepo repository.ReminderRepository, notificationRepo repository.NotificationRepository, mailer ReminderMailer, log *logger.Logger) *ReminderUseCase {
	return &ReminderUseCase{reminderRepo: reminderRepo, notificationRepo: notificationRepo, mailer: mailer, log: log, now: time.Now}
}

// SendDueReminders envía los recordatorios pendientes para la fecha de corte.
// Los fallos se aíslan por tarea: un envío fallido se registra (email_sent=false
// + mensaje) y la corrida continúa. Devuelve los contadores de la corrida.
func (uc *ReminderUseCase) SendDueReminders(ctx context.Context, checkDate time.Time) (*dto.ReminderRunResult, error) {
	candidates, err := uc.reminderRepo.ListCandidates(ctx, checkDate)
	if err != nil {
		return nil, err
	}

	result := &dto.ReminderRunResult{}
	for _, c := range candidates {
		if !offsetConfigured(c) {
			continue
		}
		enabled, err := uc.reminderEnabled(ctx, c.UserID, c.ReminderType)
		if err != nil {
			uc.log.Warn().Err(err).Str("user_id", c.UserID).Msg("no se pudieron leer las preferencias; se asumen activas")
			enabled = true
		}
		if !enabled {
			continue
		}
		result.Processed++

		sendErr := uc.mailer.SendReminder(ctx, c.UserEmail, c)
		record := &entity.SentReminder{
			ID:           uuid.New().String(),
			TaskID:       c.TaskID,
			UserID:       c.UserID,
			ReminderType: c.ReminderType,
			EmailSent:    sendErr == nil,
			SentAt:       uc.now(),
		}
		if sendErr != nil {
			record.ErrorMessage = sendErr.Error()
			result.Errors++
			result.Details = append(result.Details, fmt.Sprintf("task %s: %v", c.TaskID, sendErr))
		} else {
			result.Sent++
		}
		if err := uc.reminderRepo.Insert(ctx, record); err != nil {
			uc.log.Error().Err(err).Str("task_id", c.TaskID).Msg("no se pudo registrar sent_reminders")
		}
	}
	return result, nil
}

// offsetConfigured contrasta el offset del candidato con los reminder_days de la
// plantilla origen: una plantilla con reminder_days={3} solo avisa a 3 días.
// Los tipos due y overdue no son offsets previos y siempre aplican; las tareas
// manuales (sin plantilla) usan los offsets estándar.
func offsetConfigured(c repository.ReminderCandidate) bool {
	switch c.ReminderType {
	case entity.ReminderType7Days, entity.ReminderType3Days, entity.ReminderType1Day:
	default:
		return true
	}
	if c.ReminderDays == nil {
		return true
	}
	for _, d := range c.ReminderDays {
		if d == c.DaysUntilDue {
			return true
		}
	}
	return false
}

// reminderEnabled consulta las preferencias del usuario para el tipo de
// recordatorio. Sin fila guardada se aplican los valores por defecto.
func (uc *ReminderUseCase) reminderEnabled(ctx context.Context, userID, reminderType string) (bool, error) {
	prefs, err := uc.notificationRepo.GetByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	if prefs == nil {
		prefs = entity.DefaultNotificationPreferences(userID)
	}
	switch reminderType {
	case entity.ReminderType7Days:
		return prefs.EmailTaskReminder7Days, nil
	case entity.ReminderType3Days:
		return prefs.EmailTaskReminder3Days, nil
	case entity.ReminderType1Day:
		return prefs.EmailTaskReminder1Day, nil
	case entity.ReminderTypeDue:
		return prefs.EmailTaskReminderDue, nil
	case entity.ReminderTypeOverdue:
		return prefs.EmailOverdueTasks, nil
	}
	return false, nil
}
