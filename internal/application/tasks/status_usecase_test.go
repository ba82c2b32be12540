package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/contaflow-api/internal/domain"
	"github.com/jhoicas/contaflow-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatusUseCase(taskRepo *fakeTaskRepo, activityRepo *fakeActivityRepo) *StatusUseCase {
	uc := NewStatusUseCase(taskRepo, activityRepo, testLogger())
	uc.now = func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) }
	return uc
}

func TestSetTaskCompletion_CompletarEscribeMetadatos(t *testing.T) {
	taskRepo := newFakeTaskRepo(&entity.Task{
		ID:        "t1",
		CompanyID: "c1",
		Title:     "Declarația TVA",
		Status:    entity.TaskStatusPending,
	})
	activityRepo := &fakeActivityRepo{}
	uc := newStatusUseCase(taskRepo, activityRepo)

	out, err := uc.SetTaskCompletion(context.Background(), "t1", true, "u1")
	require.NoError(t, err)
	assert.Equal(t, "t1", out.ID)
	assert.Equal(t, entity.TaskStatusCompleted, out.Status)

	upd, ok := taskRepo.updates["t1"]
	require.True(t, ok)
	assert.Equal(t, entity.TaskStatusCompleted, upd.Status)
	require.NotNil(t, upd.CompletedAt)
	assert.Equal(t, time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC), *upd.CompletedAt)
	require.NotNil(t, upd.CompletedBy)
	assert.Equal(t, "u1", *upd.CompletedBy)
}

func TestSetTaskCompletion_CompletarIgnoraDependencias(t *testing.T) {
	// Completar es incondicional: las dependencias solo importan al descompletar.
	taskRepo := newFakeTaskRepo(
		&entity.Task{ID: "dep", CompanyID: "c1", Status: entity.TaskStatusPending},
		&entity.Task{ID: "t1", CompanyID: "c1", Status: entity.TaskStatusBlocked, DependsOnTasks: []string{"dep"}},
	)
	uc := newStatusUseCase(taskRepo, &fakeActivityRepo{})

	out, err := uc.SetTaskCompletion(context.Background(), "t1", true, "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusCompleted, out.Status)
}

func TestSetTaskCompletion_DescompletarSinDependenciasQuedaPendiente(t *testing.T) {
	now := time.Now()
	uid := "u1"
	taskRepo := newFakeTaskRepo(&entity.Task{
		ID:          "t1",
		CompanyID:   "c1",
		Status:      entity.TaskStatusCompleted,
		CompletedAt: &now,
		CompletedBy: &uid,
	})
	uc := newStatusUseCase(taskRepo, &fakeActivityRepo{})

	out, err := uc.SetTaskCompletion(context.Background(), "t1", false, "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusPending, out.Status)

	// Los metadatos de completitud se limpian en el mismo UPDATE.
	upd := taskRepo.updates["t1"]
	assert.Nil(t, upd.CompletedAt)
	assert.Nil(t, upd.CompletedBy)
}

func TestSetTaskCompletion_DescompletarConDependenciasCompletadasQuedaPendiente(t *testing.T) {
	taskRepo := newFakeTaskRepo(
		&entity.Task{ID: "dep1", CompanyID: "c1", Status: entity.TaskStatusCompleted},
		&entity.Task{ID: "dep2", CompanyID: "c1", Status: entity.TaskStatusCompleted},
		&entity.Task{ID: "t1", CompanyID: "c1", Status: entity.TaskStatusCompleted, DependsOnTasks: []string{"dep1", "dep2"}},
	)
	uc := newStatusUseCase(taskRepo, &fakeActivityRepo{})

	out, err := uc.SetTaskCompletion(context.Background(), "t1", false, "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusPending, out.Status)
}

func TestSetTaskCompletion_DescompletarConDependenciaIncompletaQuedaBloqueada(t *testing.T) {
	// in_progress cuenta como "no completada" para la evaluación.
	taskRepo := newFakeTaskRepo(
		&entity.Task{ID: "dep1", CompanyID: "c1", Status: entity.TaskStatusCompleted},
		&entity.Task{ID: "dep2", CompanyID: "c1", Status: entity.TaskStatusInProgress},
		&entity.Task{ID: "t1", CompanyID: "c1", Status: entity.TaskStatusCompleted, DependsOnTasks: []string{"dep1", "dep2"}},
	)
	uc := newStatusUseCase(taskRepo, &fakeActivityRepo{})

	out, err := uc.SetTaskCompletion(context.Background(), "t1", false, "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusBlocked, out.Status)
}

func TestSetTaskCompletion_DependenciaInexistenteQuedaBloqueada(t *testing.T) {
	taskRepo := newFakeTaskRepo(
		&entity.Task{ID: "t1", CompanyID: "c1", Status: entity.TaskStatusCompleted, DependsOnTasks: []string{"fantasma"}},
	)
	uc := newStatusUseCase(taskRepo, &fakeActivityRepo{})

	out, err := uc.SetTaskCompletion(context.Background(), "t1", false, "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusBlocked, out.Status)
}

func TestSetTaskCompletion_DependenciasDuplicadasNoBloquean(t *testing.T) {
	// Un ID repetido en depends_on_tasks no cuenta como dependencia faltante.
	taskRepo := newFakeTaskRepo(
		&entity.Task{ID: "dep1", CompanyID: "c1", Status: entity.TaskStatusCompleted},
		&entity.Task{ID: "t1", CompanyID: "c1", Status: entity.TaskStatusCompleted, DependsOnTasks: []string{"dep1", "dep1"}},
	)
	uc := newStatusUseCase(taskRepo, &fakeActivityRepo{})

	out, err := uc.SetTaskCompletion(context.Background(), "t1", false, "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusPending, out.Status)
}

func TestSetTaskCompletion_CompletarRepetidoEsEstable(t *testing.T) {
	// No hay dedup: cada completar escribe metadatos y una entrada de bitácora.
	taskRepo := newFakeTaskRepo(&entity.Task{
		ID: "t1", CompanyID: "c1", Title: "TVA", Status: entity.TaskStatusPending,
	})
	activityRepo := &fakeActivityRepo{}
	uc := newStatusUseCase(taskRepo, activityRepo)

	for i := 0; i < 2; i++ {
		out, err := uc.SetTaskCompletion(context.Background(), "t1", true, "u1")
		require.NoError(t, err)
		assert.Equal(t, entity.TaskStatusCompleted, out.Status)
	}
	assert.Equal(t, entity.TaskStatusCompleted, taskRepo.tasks["t1"].Status)
	assert.Len(t, activityRepo.entries, 2)
}

func TestSetTaskCompletion_TareaInexistente(t *testing.T) {
	uc := newStatusUseCase(newFakeTaskRepo(), &fakeActivityRepo{})

	out, err := uc.SetTaskCompletion(context.Background(), "no-existe", true, "u1")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetTaskCompletion_BitacoraSoloAlCompletar(t *testing.T) {
	taskRepo := newFakeTaskRepo(&entity.Task{
		ID: "t1", CompanyID: "c1", Title: "IPC21", Status: entity.TaskStatusPending,
	})
	activityRepo := &fakeActivityRepo{}
	uc := newStatusUseCase(taskRepo, activityRepo)

	_, err := uc.SetTaskCompletion(context.Background(), "t1", true, "u1")
	require.NoError(t, err)
	require.Len(t, activityRepo.entries, 1)
	entry := activityRepo.entries[0]
	assert.Equal(t, entity.ActionTaskCompleted, entry.Action)
	assert.Equal(t, "u1", entry.UserID)
	assert.Equal(t, "Completed task: IPC21", entry.Description)
	require.NotNil(t, entry.TaskID)
	assert.Equal(t, "t1", *entry.TaskID)

	_, err = uc.SetTaskCompletion(context.Background(), "t1", false, "u1")
	require.NoError(t, err)
	assert.Len(t, activityRepo.entries, 1, "descompletar no escribe bitácora")
}

func TestSetTaskCompletion_FalloDeBitacoraNoRevierte(t *testing.T) {
	taskRepo := newFakeTaskRepo(&entity.Task{
		ID: "t1", CompanyID: "c1", Status: entity.TaskStatusPending,
	})
	activityRepo := &fakeActivityRepo{insertErr: errors.New("tabla llena")}
	uc := newStatusUseCase(taskRepo, activityRepo)

	out, err := uc.SetTaskCompletion(context.Background(), "t1", true, "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusCompleted, out.Status)
	assert.Equal(t, entity.TaskStatusCompleted, taskRepo.tasks["t1"].Status)
}
