package entity

import "time"

// Frecuencias de generación de tareas.
const (
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyAnnual    = "annual"
	FrequencyWeekly    = "weekly"
)

// TaskTemplate es una regla reutilizable del catálogo global de obligaciones
// (declaración TVA, IPC21, etc.). No pertenece a ninguna empresa; los predicados
// Applies* determinan a qué empresas genera tareas.
type TaskTemplate struct {
	ID                 string
	Name               string
	Description        string
	Frequency          string // ver constantes Frequency*
	DeadlineDay        int    // 1-31, se ajusta al último día del mes si excede
	DeadlineMonth      *int   // 1-12, relevante solo para frecuencia anual
	AppliesToTVAPayers bool
	AppliesToEmployers bool
	AppliesToOrgTypes  []string // vacío/nil = todas las formas jurídicas
	ReminderDays       []int    // días antes del vencimiento para recordatorios
	IsActive           bool
	Code               string // código oficial del formulario (ej. "TVA12")
	LawReference       string
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ValidFrequency informa si el valor es una frecuencia conocida.
func ValidFrequency(f string) bool {
	switch f {
	case FrequencyMonthly, FrequencyQuarterly, FrequencyAnnual, FrequencyWeekly:
		return true
	}
	return false
}
