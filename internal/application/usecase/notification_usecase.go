package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/contaflow-api/internal/application/dto"
	"github.com/jhoicas/contaflow-api/internal/domain/entity"
	"github.com/jhoicas/contaflow-api/internal/domain/repository"
)

// NotificationUseCase lectura/escritura de preferencias de notificación.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase construye el caso de uso.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// Get devuelve las preferencias del usuario; sin fila guardada devuelve los defaults.
func (uc *NotificationUseCase) Get(ctx context.Context, userID string) (*dto.NotificationPreferencesDTO, error) {
	prefs, err := uc.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = entity.DefaultNotificationPreferences(userID)
	}
	return toPreferencesDTO(prefs), nil
}

// Update guarda las preferencias completas del usuario (upsert).
func (uc *NotificationUseCase) Update(ctx context.Context, userID string, in dto.NotificationPreferencesDTO) (*dto.NotificationPreferencesDTO, error) {
	now := time.Now()
	prefs := &entity.NotificationPreferences{
		ID:                     uuid.New().String(),
		UserID:                 userID,
		EmailDailySummary:      in.EmailDailySummary,
		EmailTaskReminder7Days: in.EmailTaskReminder7Days,
		EmailTaskReminder3Days: in.EmailTaskReminder3Days,
		EmailTaskReminder1Day:  in.EmailTaskReminder1Day,
		EmailTaskReminderDue:   in.EmailTaskReminderDue,
		EmailOverdueTasks:      in.EmailOverdueTasks,
		PushTaskCompleted:      in.PushTaskCompleted,
		PushCompanyAdded:       in.PushCompanyAdded,
		PushSystemUpdates:      in.PushSystemUpdates,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.repo.Upsert(ctx, prefs); err != nil {
		return nil, err
	}
	return toPreferencesDTO(prefs), nil
}

func toPreferencesDTO(p *entity.NotificationPreferences) *dto.NotificationPreferencesDTO {
	return &dto.NotificationPreferencesDTO{
		EmailDailySummary:      p.EmailDailySummary,
		EmailTaskReminder7Days: p.EmailTaskReminder7Days,
		EmailTaskReminder3Days: p.EmailTaskReminder3Days,
		EmailTaskReminder1Day:  p.EmailTaskReminder1Day,
		EmailTaskReminderDue:   p.EmailTaskReminderDue,
		EmailOverdueTasks:      p.EmailOverdueTasks,
		PushTaskCompleted:      p.PushTaskCompleted,
		PushCompanyAdded:       p.PushCompanyAdded,
		PushSystemUpdates:      p.PushSystemUpdates,
	}
}
