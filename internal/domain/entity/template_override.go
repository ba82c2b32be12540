package entity

import "time"

// TaskTemplateOverride es la excepción por empresa a una plantilla global.
// Clave natural (CompanyID, TemplateID): a lo sumo una fila por par, con
// semántica de upsert. IsDisabled suprime la plantilla para esa empresa aunque
// esté activa globalmente; los campos Custom* tienen prioridad sobre los de la
// plantilla solo para esa empresa.
type TaskTemplateOverride struct {
	ID                  string
	CompanyID           string
	TemplateID          string
	IsDisabled          bool
	Notes               string
	CustomDeadlineDay   *int // 1-31
	CustomDeadlineMonth *int // 1-12
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
