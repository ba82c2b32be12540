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

// OverrideUseCase administra las excepciones por empresa a las plantillas.
// La capa HTTP ya verificó que la empresa pertenece al usuario.
type OverrideUseCase struct {
	overrideRepo repository.OverrideRepository
	templateRepo repository.TemplateRepository
	companyRepo  repository.CompanyRepository
}

// NewOverrideUseCase construye el caso de uso.
func NewOverrideUseCase(overrideRepo repository.OverrideRepository, templateRepo repository.TemplateRepository, companyRepo repository.CompanyRepository) *OverrideUseCase {
	return &OverrideUseCase{overrideRepo: overrideRepo, templateRepo: templateRepo, companyRepo: companyRepo}
}

// ListByCompany devuelve las excepciones de una empresa del usuario.
func (uc *OverrideUseCase) ListByCompany(ctx context.Context, companyID, userID string) (*dto.OverrideListResponse, error) {
	company, err := uc.companyRepo.GetByIDAndUser(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.overrideRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.OverrideResponse, 0, len(list))
	for _, ov := range list {
		data = append(data, *toOverrideResponse(ov))
	}
	return &dto.OverrideListResponse{Data: data}, nil
}

// Upsert crea o actualiza la excepción (company_id, template_id); semántica de
// upsert sobre la clave natural. Devuelve ErrNotFound si la empresa no es del
// usuario o la plantilla no existe.
func (uc *OverrideUseCase) Upsert(ctx context.Context, companyID, userID string, in dto.UpsertOverrideRequest) (*dto.OverrideResponse, error) {
	company, err := uc.companyRepo.GetByIDAndUser(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	tpl, err := uc.templateRepo.GetByID(ctx, in.TemplateID)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, domain.ErrNotFound
	}
	if in.CustomDeadlineDay != nil && (*in.CustomDeadlineDay < 1 || *in.CustomDeadlineDay > 31) {
		return nil, domain.ErrInvalidInput
	}
	if in.CustomDeadlineMonth != nil && (*in.CustomDeadlineMonth < 1 || *in.CustomDeadlineMonth > 12) {
		return nil, domain.ErrInvalidInput
	}

	isDisabled := false
	if in.IsDisabled != nil {
		isDisabled = *in.IsDisabled
	}
	now := time.Now()
	ov := &entity.TaskTemplateOverride{
		ID:                  uuid.New().String(),
		CompanyID:           companyID,
		TemplateID:          in.TemplateID,
		IsDisabled:          isDisabled,
		Notes:               in.Notes,
		CustomDeadlineDay:   in.CustomDeadlineDay,
		CustomDeadlineMonth: in.CustomDeadlineMonth,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	saved, err := uc.overrideRepo.Upsert(ctx, ov)
	if err != nil {
		return nil, err
	}
	return toOverrideResponse(saved), nil
}

// Delete elimina la excepción (company_id, template_id) de una empresa del usuario.
func (uc *OverrideUseCase) Delete(ctx context.Context, companyID, userID, templateID string) error {
	company, err := uc.companyRepo.GetByIDAndUser(ctx, companyID, userID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return uc.overrideRepo.Delete(ctx, companyID, templateID)
}

func toOverrideResponse(o *entity.TaskTemplateOverride) *dto.OverrideResponse {
	if o == nil {
		return nil
	}
	return &dto.OverrideResponse{
		ID:                  o.ID,
		CompanyID:           o.CompanyID,
		TemplateID:          o.TemplateID,
		IsDisabled:          o.IsDisabled,
		Notes:               o.Notes,
		CustomDeadlineDay:   o.CustomDeadlineDay,
		CustomDeadlineMonth: o.CustomDeadlineMonth,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}
