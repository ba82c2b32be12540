package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/contaflow-api/internal/application/dto"
	"github.com/jhoicas/contaflow-api/internal/domain"
	"github.com/jhoicas/contaflow-api/internal/domain/entity"
	"github.com/jhoicas/contaflow-api/internal/domain/repository"
)

// Offsets de recordatorio por defecto (días antes del vencimiento).
var defaultReminderDays = []int{7, 3, 1}

// TemplateUseCase administra el catálogo global de plantillas (solo admin en la capa HTTP).
type TemplateUseCase struct {
	repo repository.TemplateRepository
}

// NewTemplateUseCase construye el caso de uso.
func NewTemplateUseCase(repo repository.TemplateRepository) *TemplateUseCase {
	return &TemplateUseCase{repo: repo}
}

// Create crea una plantilla del catálogo.
func (uc *TemplateUseCase) Create(ctx context.Context, in dto.CreateTemplateRequest) (*dto.TemplateResponse, error) {
	if !entity.ValidFrequency(in.Frequency) {
		return nil, domain.ErrInvalidInput
	}
	if in.DeadlineDay < 1 || in.DeadlineDay > 31 {
		return nil, domain.ErrInvalidInput
	}
	if in.DeadlineMonth != nil && (*in.DeadlineMonth < 1 || *in.DeadlineMonth > 12) {
		return nil, domain.ErrInvalidInput
	}
	reminderDays := in.ReminderDays
	if len(reminderDays) == 0 {
		reminderDays = defaultReminderDays
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	now := time.Now()
	tpl := &entity.TaskTemplate{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		Description:        in.Description,
		Frequency:          in.Frequency,
		DeadlineDay:        in.DeadlineDay,
		DeadlineMonth:      in.DeadlineMonth,
		AppliesToTVAPayers: in.AppliesToTVAPayers,
		AppliesToEmployers: in.AppliesToEmployers,
		AppliesToOrgTypes:  in.AppliesToOrgTypes,
		ReminderDays:       reminderDays,
		IsActive:           isActive,
		Code:               in.Code,
		LawReference:       in.LawReference,
		Notes:              in.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(ctx, tpl); err != nil {
		return nil, err
	}
	return toTemplateResponse(tpl), nil
}

// Update actualiza campos opcionales de una plantilla.
func (uc *TemplateUseCase) Update(ctx context.Context, id string, in dto.UpdateTemplateRequest) (*dto.TemplateResponse, error) {
	tpl, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		tpl.Name = *in.Name
	}
	if in.Description != nil {
		tpl.Description = *in.Description
	}
	if in.Frequency != nil {
		if !entity.ValidFrequency(*in.Frequency) {
			return nil, domain.ErrInvalidInput
		}
		tpl.Frequency = *in.Frequency
	}
	if in.DeadlineDay != nil {
		if *in.DeadlineDay < 1 || *in.DeadlineDay > 31 {
			return nil, domain.ErrInvalidInput
		}
		tpl.DeadlineDay = *in.DeadlineDay
	}
	if in.DeadlineMonth != nil {
		tpl.DeadlineMonth = in.DeadlineMonth
	}
	if in.AppliesToTVAPayers != nil {
		tpl.AppliesToTVAPayers = *in.AppliesToTVAPayers
	}
	if in.AppliesToEmployers != nil {
		tpl.AppliesToEmployers = *in.AppliesToEmployers
	}
	if in.AppliesToOrgTypes != nil {
		tpl.AppliesToOrgTypes = *in.AppliesToOrgTypes
	}
	if in.ReminderDays != nil {
		tpl.ReminderDays = *in.ReminderDays
	}
	if in.IsActive != nil {
		tpl.IsActive = *in.IsActive
	}
	tpl.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, tpl); err != nil {
		return nil, err
	}
	return toTemplateResponse(tpl), nil
}

// List devuelve el catálogo (activeOnly filtra plantillas inactivas).
func (uc *TemplateUseCase) List(ctx context.Context, activeOnly bool) (*dto.TemplateListResponse, error) {
	list, err := uc.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TemplateResponse, 0, len(list))
	for _, tpl := range list {
		items = append(items, *toTemplateResponse(tpl))
	}
	return &dto.TemplateListResponse{Items: items}, nil
}

func toTemplateResponse(t *entity.TaskTemplate) *dto.TemplateResponse {
	if t == nil {
		return nil
	}
	return &dto.TemplateResponse{
		ID:                 t.ID,
		Name:               t.Name,
		Description:        t.Description,
		Frequency:          t.Frequency,
		DeadlineDay:        t.DeadlineDay,
		DeadlineMonth:      t.DeadlineMonth,
		AppliesToTVAPayers: t.AppliesToTVAPayers,
		AppliesToEmployers: t.AppliesToEmployers,
		AppliesToOrgTypes:  t.AppliesToOrgTypes,
		ReminderDays:       t.ReminderDays,
		IsActive:           t.IsActive,
		Code:               t.Code,
		LawReference:       t.LawReference,
		Notes:              t.Notes,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}
