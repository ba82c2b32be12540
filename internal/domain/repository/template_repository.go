package repository

import (
	"context"

	"github.com/jhoicas/contaflow-api/internal/domain/entity"
)

// TemplateRepository define el puerto de persistencia para el catálogo global
// de plantillas.
type TemplateRepository interface {
	Create(ctx context.Context, tpl *entity.TaskTemplate) error
	GetByID(ctx context.Context, id string) (*entity.TaskTemplate, error)
	Update(ctx context.Context, tpl *entity.TaskTemplate) error
	// List devuelve el catálogo; con activeOnly solo las plantillas activas.
	List(ctx context.Context, activeOnly bool) ([]*entity.TaskTemplate, error)
}

// OverrideRepository define el puerto para las excepciones por empresa.
// La clave natural es (company_id, template_id) con semántica de upsert.
type OverrideRepository interface {
	Get(ctx context.Context, companyID, templateID string) (*entity.TaskTemplateOverride, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.TaskTemplateOverride, error)
	Upsert(ctx context.Context, ov *entity.TaskTemplateOverride) (*entity.TaskTemplateOverride, error)
	Delete(ctx context.Context, companyID, templateID string) error
}
