package entity

import "time"

// Tipos de recordatorio según la distancia al vencimiento.
const (
	ReminderType7Days   = "7days"
	ReminderType3Days   = "3days"
	ReminderType1Day    = "1day"
	ReminderTypeDue     = "due"
	ReminderTypeOverdue = "overdue"
)

// SentReminder registra cada intento de envío de recordatorio por email.
// La clave (TaskID, ReminderType) evita reenviar el mismo recordatorio.
type SentReminder struct {
	ID           string
	TaskID       string
	UserID       string
	ReminderType string
	EmailSent    bool
	ErrorMessage string
	SentAt       time.Time
}
