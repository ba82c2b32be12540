package dto

import "time"

// ActivityResponse una entrada de la bitácora.
type ActivityResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CompanyID   *string   `json:"company_id,omitempty"`
	TaskID      *string   `json:"task_id,omitempty"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ActivityListResponse actividad reciente del usuario.
type ActivityListResponse struct {
	Items []ActivityResponse `json:"items"`
}

// NotificationPreferencesDTO preferencias de notificación (entrada y salida).
type NotificationPreferencesDTO struct {
	EmailDailySummary      bool `json:"email_daily_summary"`
	EmailTaskReminder7Days bool `json:"email_task_reminder_7days"`
	EmailTaskReminder3Days bool `json:"email_task_reminder_3days"`
	EmailTaskReminder1Day  bool `json:"email_task_reminder_1day"`
	EmailTaskReminderDue   bool `json:"email_task_reminder_due"`
	EmailOverdueTasks      bool `json:"email_overdue_tasks"`
	PushTaskCompleted      bool `json:"push_task_completed"`
	PushCompanyAdded       bool `json:"push_company_added"`
	PushSystemUpdates      bool `json:"push_system_updates"`
}
