package tasks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/contaflow-api/internal/application/dto"
	"github.com/jhoicas/contaflow-api/internal/domain"
	"github.com/jhoicas/contaflow-api/internal/domain/entity"
	"github.com/jhoicas/contaflow-api/internal/domain/repository"
	"github.com/jhoicas/contaflow-api/pkg/logger"
)

// TaskUseCase cubre la creación manual de tareas y los listados.
type TaskUseCase struct {
	taskRepo     repository.TaskRepository
	companyRepo  repository.CompanyRepository
	activityRepo repository.ActivityRepository
	log          *logger.Logger
	now          func() time.Time
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(taskRepo repository.TaskRepository, companyRepo repository.CompanyRepository, activityRepo repository.ActivityRepository, log *logger.Logger) *TaskUseCase {
	return &TaskUseCase{taskRepo: taskRepo, companyRepo: companyRepo, activityRepo: activityRepo, log: log, now: time.Now}
}

// CreateManual crea una tarea sin plantilla (template_id = null) para una
// empresa del usuario. Si declara dependencias, el estado inicial se decide con
// la misma regla del motor de estados (pending o blocked).
func (uc *TaskUseCase) CreateManual(ctx context.Context, companyID, userID string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	company, err := uc.companyRepo.GetByIDAndUser(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	dueDate, err := time.Parse("2006-01-02", in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	status := entity.TaskStatusPending
	if len(in.DependsOnTasks) > 0 {
		status, err = evaluateUncompleted(ctx, uc.taskRepo, in.DependsOnTasks)
		if err != nil {
			return nil, err
		}
	}

	now := uc.now()
	task := &entity.Task{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		TemplateID:     nil,
		Title:          in.Title,
		Description:    in.Description,
		DueDate:        dueDate,
		Status:         status,
		Notes:          in.Notes,
		DependsOnTasks: in.DependsOnTasks,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	entry := &entity.ActivityLog{
		ID:          uuid.New().String(),
		UserID:      userID,
		CompanyID:   &companyID,
		TaskID:      &task.ID,
		Action:      entity.ActionTaskCreatedManual,
		Description: "Created manual task: " + task.Title,
		CreatedAt:   now,
	}
	if err := uc.activityRepo.Insert(ctx, entry); err != nil {
		uc.log.Error().Err(err).Str("task_id", task.ID).Msg("no se pudo registrar activity_log")
	}

	return ToTaskResponse(task, uc.now()), nil
}

// ListByCompanyForUser lista tareas de una empresa del usuario. Una empresa
// ajena devuelve domain.ErrNotFound, igual que el resto de rutas acotadas.
func (uc *TaskUseCase) ListByCompanyForUser(ctx context.Context, companyID, userID, status string, limit, offset int) (*dto.TaskListResponse, error) {
	company, err := uc.companyRepo.GetByIDAndUser(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return uc.ListByCompany(ctx, companyID, status, limit, offset)
}

// ListByCompany lista tareas de una empresa ordenadas por vencimiento, con
// filtro opcional de estado y paginación. Devuelve el total sin paginar.
// Sin filtro de propietario: lo usan los endpoints RPC de administración.
func (uc *TaskUseCase) ListByCompany(ctx context.Context, companyID, status string, limit, offset int) (*dto.TaskListResponse, error) {
	list, count, err := uc.taskRepo.ListByCompany(ctx, companyID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	items := make([]dto.TaskResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *ToTaskResponse(t, now))
	}
	return &dto.TaskListResponse{Count: count, Data: items}, nil
}

// ToTaskResponse convierte la entidad a DTO. IsOverdue se deriva de DueDate:
// nunca es un valor almacenado.
func ToTaskResponse(t *entity.Task, today time.Time) *dto.TaskResponse {
	if t == nil {
		return nil
	}
	return &dto.TaskResponse{
		ID:             t.ID,
		CompanyID:      t.CompanyID,
		TemplateID:     t.TemplateID,
		Title:          t.Title,
		Description:    t.Description,
		DueDate:        t.DueDate.Format("2006-01-02"),
		Status:         t.Status,
		IsOverdue:      t.IsOverdue(today),
		CompletedAt:    t.CompletedAt,
		CompletedBy:    t.CompletedBy,
		Notes:          t.Notes,
		DependsOnTasks: t.DependsOnTasks,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
