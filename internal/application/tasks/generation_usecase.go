package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/contaflow-api/internal/application/dto"
	"github.com/jhoicas/contaflow-api/internal/domain"
	"github.com/jhoicas/contaflow-api/internal/domain/entity"
	"github.com/jhoicas/contaflow-api/internal/domain/repository"
	"github.com/jhoicas/contaflow-api/internal/domain/schedule"
	"github.com/jhoicas/contaflow-api/pkg/logger"
)

// Límites de la ventana de generación (meses).
const (
	MinMonthsAhead     = 1
	MaxMonthsAhead     = 36
	DefaultMonthsAhead = 12
)

// GenerationUseCase materializa tareas para una empresa a partir del catálogo
// de plantillas, aplicando aplicabilidad y overrides por empresa.
type GenerationUseCase struct {
	companyRepo  repository.CompanyRepository
	templateRepo repository.TemplateRepository
	overrideRepo repository.OverrideRepository
	taskRepo     repository.TaskRepository
	activityRepo repository.ActivityRepository
	log          *logger.Logger
	now          func() time.Time
}

// NewGenerationUseCase construye el motor de generación.
func NewGenerationUseCase(
	companyRepo repository.CompanyRepository,
	templateRepo repository.TemplateRepository,
	overrideRepo repository.OverrideRepository,
	taskRepo repository.TaskRepository,
	activityRepo repository.ActivityRepository,
	log *logger.Logger,
) *GenerationUseCase {
	return &GenerationUseCase{
		companyRepo:  companyRepo,
		templateRepo: templateRepo,
		overrideRepo: overrideRepo,
		taskRepo:     taskRepo,
		activityRepo: activityRepo,
		log:          log,
		now:          time.Now,
	}
}

// GenerateForCompany genera las tareas de la ventana [startDate, +monthsAhead meses).
//
// startDate nil → fecha de inicio contable de la empresa, o hoy si no está definida.
// monthsAhead nil → DefaultMonthsAhead; fuera de [1,36] → domain.ErrInvalidInput.
//
// Una plantilla con frecuencia desconocida no aborta la corrida: su error se
// aísla y se reporta en TemplateErrors mientras las demás continúan. La
// inserción es en lote sin transacción: un fallo parcial deja las filas ya
// insertadas y devuelve un único error agregado (se recomienda reejecutar).
func (uc *GenerationUseCase) GenerateForCompany(ctx context.Context, companyID string, startDate *time.Time, monthsAhead *int, actingUserID string) (*dto.GenerationResult, error) {
	months := DefaultMonthsAhead
	if monthsAhead != nil {
		months = *monthsAhead
	}
	if months < MinMonthsAhead || months > MaxMonthsAhead {
		return nil, domain.ErrInvalidInput
	}

	company, err := uc.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	start := uc.now()
	if startDate != nil {
		start = *startDate
	} else if !company.AccountingStartDate.IsZero() {
		start = company.AccountingStartDate
	}

	templates, err := uc.templateRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	result := &dto.GenerationResult{CompanyID: companyID}
	var batch []*entity.Task
	now := uc.now()

	for _, tpl := range templates {
		if !schedule.Applies(tpl, company) {
			result.TemplatesSkipped++
			continue
		}
		override, err := uc.overrideRepo.Get(ctx, companyID, tpl.ID)
		if err != nil {
			return nil, err
		}
		deadline, skip := schedule.Resolve(tpl, override)
		if skip {
			result.TemplatesSkipped++
			continue
		}
		dueDates, err := schedule.Occurrences(tpl.Frequency, deadline, start, months)
		if err != nil {
			// Fallo aislado por plantilla: las demás continúan.
			uc.log.Warn().Err(err).Str("template_id", tpl.ID).Msg("plantilla omitida en la generación")
			result.TemplateErrors = append(result.TemplateErrors, fmt.Sprintf("%s: %v", tpl.Name, err))
			continue
		}
		for _, due := range dueDates {
			tplID := tpl.ID
			batch = append(batch, &entity.Task{
				ID:          uuid.New().String(),
				CompanyID:   companyID,
				TemplateID:  &tplID,
				Title:       tpl.Name,
				Description: tpl.Description,
				DueDate:     due,
				Status:      entity.TaskStatusPending,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
		}
		result.TemplatesApplied++
	}

	if len(batch) > 0 {
		if err := uc.taskRepo.CreateBatch(ctx, batch); err != nil {
			return nil, err
		}
	}
	result.TasksCreated = len(batch)

	entry := &entity.ActivityLog{
		ID:          uuid.New().String(),
		UserID:      actingUserID,
		CompanyID:   &company.ID,
		Action:      entity.ActionTasksGenerated,
		Description: fmt.Sprintf("Generated %d tasks for company: %s", result.TasksCreated, company.Name),
		CreatedAt:   uc.now(),
	}
	if err := uc.activityRepo.Insert(ctx, entry); err != nil {
		uc.log.Error().Err(err).Str("company_id", company.ID).Msg("no se pudo registrar activity_log")
	}

	return result, nil
}

// UpdateStatuses es el barrido periódico sobre tareas vencidas y no completadas:
// reevalúa la partición pending/blocked con la misma regla de dependencias del
// motor de estados. No existe un estado "overdue" persistido: esa etiqueta se
// deriva de due_date en la capa de presentación. in_progress no se toca (estado
// manual de paso, equivalente a "no completada" para la evaluación).
func (uc *GenerationUseCase) UpdateStatuses(ctx context.Context) (*dto.SweepResult, error) {
	pastDue, err := uc.taskRepo.ListPastDueUncompleted(ctx, uc.now())
	if err != nil {
		return nil, err
	}

	result := &dto.SweepResult{Examined: len(pastDue)}
	for _, task := range pastDue {
		if task.Status != entity.TaskStatusPending && task.Status != entity.TaskStatusBlocked {
			continue
		}
		status, err := evaluateUncompleted(ctx, uc.taskRepo, task.DependsOnTasks)
		if err != nil {
			return nil, err
		}
		if status == task.Status {
			continue
		}
		if err := uc.taskRepo.UpdateStatus(ctx, task.ID, repository.TaskStatusUpdate{Status: status}); err != nil {
			return nil, err
		}
		result.Updated++
	}
	return result, nil
}
