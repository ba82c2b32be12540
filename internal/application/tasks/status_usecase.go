// Package tasks contiene el ciclo de vida de las tareas: el motor de estados
// (toggle de completitud consciente de dependencias), el motor de generación
// desde plantillas, el barrido periódico y los recordatorios por email.
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

// StatusUseCase decide el estado correcto de una tarea ante un toggle de
// completitud, respetando el orden de dependencias.
type StatusUseCase struct {
	taskRepo     repository.TaskRepository
	activityRepo repository.ActivityRepository
	log          *logger.Logger
	now          func() time.Time
}

// NewStatusUseCase construye el motor de estados.
func NewStatusUseCase(taskRepo repository.TaskRepository, activityRepo repository.ActivityRepository, log *logger.Logger) *StatusUseCase {
	return &StatusUseCase{taskRepo: taskRepo, activityRepo: activityRepo, log: log, now: time.Now}
}

// SetTaskCompletion aplica el toggle de completitud:
//
//   - completed=true  → estado completed incondicional, con CompletedAt/CompletedBy.
//   - completed=false → pending si no hay dependencias o todas están completadas;
//     blocked si alguna dependencia falta o no está completada. Metadatos en nil.
//
// El estado y los metadatos se persisten en un solo UPDATE por fila. La entrada
// de bitácora task_completed se escribe solo al completar y es best-effort: su
// fallo se registra pero no revierte ni hace fallar la operación.
func (uc *StatusUseCase) SetTaskCompletion(ctx context.Context, taskID string, completed bool, actingUserID string) (*dto.TaskStatusResponse, error) {
	task, err := uc.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}

	var upd repository.TaskStatusUpdate
	if completed {
		now := uc.now()
		upd = repository.TaskStatusUpdate{
			Status:      entity.TaskStatusCompleted,
			CompletedAt: &now,
			CompletedBy: &actingUserID,
		}
	} else {
		status, err := uc.evaluateUncompleted(ctx, task.DependsOnTasks)
		if err != nil {
			return nil, err
		}
		upd = repository.TaskStatusUpdate{Status: status}
	}

	if err := uc.taskRepo.UpdateStatus(ctx, taskID, upd); err != nil {
		return nil, err
	}

	if completed {
		entry := &entity.ActivityLog{
			ID:          uuid.New().String(),
			UserID:      actingUserID,
			CompanyID:   &task.CompanyID,
			TaskID:      &task.ID,
			Action:      entity.ActionTaskCompleted,
			Description: "Completed task: " + task.Title,
			CreatedAt:   uc.now(),
		}
		if err := uc.activityRepo.Insert(ctx, entry); err != nil {
			// Deliberado: el fallo del side effect no revierte el cambio de estado.
			uc.log.Error().Err(err).Str("task_id", task.ID).Msg("no se pudo registrar activity_log")
		}
	}

	return &dto.TaskStatusResponse{ID: task.ID, Status: upd.Status}, nil
}

// evaluateUncompleted calcula el estado de una tarea no completada según sus
// dependencias: pending sin dependencias o con todas completadas; blocked si
// alguna falta o no está completada. La evaluación solo distingue el valor
// completed: in_progress cuenta como "no completada".
func (uc *StatusUseCase) evaluateUncompleted(ctx context.Context, dependsOn []string) (string, error) {
	return evaluateUncompleted(ctx, uc.taskRepo, dependsOn)
}

func evaluateUncompleted(ctx context.Context, taskRepo repository.TaskRepository, dependsOn []string) (string, error) {
	if len(dependsOn) == 0 {
		return entity.TaskStatusPending, nil
	}
	deps, err := taskRepo.GetByIDs(ctx, dependsOn)
	if err != nil {
		return "", err
	}
	completedByID := make(map[string]bool, len(deps))
	for _, dep := range deps {
		completedByID[dep.ID] = dep.Status == entity.TaskStatusCompleted
	}
	for _, id := range dependsOn {
		// Dependencia inexistente = dependencia incumplida. La lista puede
		// traer IDs repetidos; se evalúa por ID, no por conteo.
		if !completedByID[id] {
			return entity.TaskStatusBlocked, nil
		}
	}
	return entity.TaskStatusPending, nil
}
