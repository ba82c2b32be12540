package dto

import "time"

// CreateTemplateRequest entrada para crear una plantilla (solo admin).
type CreateTemplateRequest struct {
	Name               string   `json:"name" validate:"required,min=1,max=200"`
	Description        string   `json:"description"`
	Frequency          string   `json:"frequency" validate:"required,oneof=monthly quarterly annual weekly"`
	DeadlineDay        int      `json:"deadline_day" validate:"required,min=1,max=31"`
	DeadlineMonth      *int     `json:"deadline_month" validate:"omitempty,min=1,max=12"`
	AppliesToTVAPayers bool     `json:"applies_to_tva_payers"`
	AppliesToEmployers bool     `json:"applies_to_employers"`
	AppliesToOrgTypes  []string `json:"applies_to_org_types"`
	ReminderDays       []int    `json:"reminder_days"`
	IsActive           *bool    `json:"is_active"`
	Code               string   `json:"code"`
	LawReference       string   `json:"law_reference"`
	Notes              string   `json:"notes"`
}

// UpdateTemplateRequest entrada para actualizar una plantilla (campos opcionales).
type UpdateTemplateRequest struct {
	Name               *string   `json:"name" validate:"omitempty,min=1"`
	Description        *string   `json:"description"`
	Frequency          *string   `json:"frequency" validate:"omitempty,oneof=monthly quarterly annual weekly"`
	DeadlineDay        *int      `json:"deadline_day" validate:"omitempty,min=1,max=31"`
	DeadlineMonth      *int      `json:"deadline_month" validate:"omitempty,min=1,max=12"`
	AppliesToTVAPayers *bool     `json:"applies_to_tva_payers"`
	AppliesToEmployers *bool     `json:"applies_to_employers"`
	AppliesToOrgTypes  *[]string `json:"applies_to_org_types"`
	ReminderDays       *[]int    `json:"reminder_days"`
	IsActive           *bool     `json:"is_active"`
}

// TemplateResponse salida de una plantilla.
type TemplateResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	Frequency          string    `json:"frequency"`
	DeadlineDay        int       `json:"deadline_day"`
	DeadlineMonth      *int      `json:"deadline_month,omitempty"`
	AppliesToTVAPayers bool      `json:"applies_to_tva_payers"`
	AppliesToEmployers bool      `json:"applies_to_employers"`
	AppliesToOrgTypes  []string  `json:"applies_to_org_types,omitempty"`
	ReminderDays       []int     `json:"reminder_days"`
	IsActive           bool      `json:"is_active"`
	Code               string    `json:"code,omitempty"`
	LawReference       string    `json:"law_reference,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TemplateListResponse catálogo de plantillas.
type TemplateListResponse struct {
	Items []TemplateResponse `json:"items"`
}

// UpsertOverrideRequest entrada para crear/actualizar la excepción de una empresa.
type UpsertOverrideRequest struct {
	TemplateID          string `json:"template_id" validate:"required"`
	IsDisabled          *bool  `json:"is_disabled"`
	Notes               string `json:"notes"`
	CustomDeadlineDay   *int   `json:"custom_deadline_day" validate:"omitempty,min=1,max=31"`
	CustomDeadlineMonth *int   `json:"custom_deadline_month" validate:"omitempty,min=1,max=12"`
}

// OverrideResponse salida de una excepción.
type OverrideResponse struct {
	ID                  string    `json:"id"`
	CompanyID           string    `json:"company_id"`
	TemplateID          string    `json:"template_id"`
	IsDisabled          bool      `json:"is_disabled"`
	Notes               string    `json:"notes,omitempty"`
	CustomDeadlineDay   *int      `json:"custom_deadline_day,omitempty"`
	CustomDeadlineMonth *int      `json:"custom_deadline_month,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// OverrideListResponse excepciones de una empresa.
type OverrideListResponse struct {
	Data []OverrideResponse `json:"data"`
}
