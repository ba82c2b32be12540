package entity

import "time"

// NotificationPreferences son las preferencias de notificación por usuario.
// Una fila por usuario; si no existe se asumen los valores por defecto
// (todos los recordatorios de email activos).
type NotificationPreferences struct {
	ID                      string
	UserID                  string
	EmailDailySummary       bool
	EmailTaskReminder7Days  bool
	EmailTaskReminder3Days  bool
	EmailTaskReminder1Day   bool
	EmailTaskReminderDue    bool
	EmailOverdueTasks       bool
	PushTaskCompleted       bool
	PushCompanyAdded        bool
	PushSystemUpdates       bool
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// DefaultNotificationPreferences devuelve las preferencias por defecto para un usuario.
func DefaultNotificationPreferences(userID string) *NotificationPreferences {
	return &NotificationPreferences{
		UserID:                 userID,
		EmailDailySummary:      true,
		EmailTaskReminder7Days: true,
		EmailTaskReminder3Days: true,
		EmailTaskReminder1Day:  true,
		EmailTaskReminderDue:   true,
		EmailOverdueTasks:      true,
		PushTaskCompleted:      true,
		PushCompanyAdded:       true,
		PushSystemUpdates:      true,
	}
}
