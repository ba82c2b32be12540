package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/contaflow-api/internal/domain"
	"github.com/jhoicas/contaflow-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func testCompany() *entity.Company {
	tvaType := entity.TVATypeMonthly
	return &entity.Company{
		ID:               "c1",
		UserID:           "u1",
		Name:             "Exemplu SRL",
		FiscalCode:       "1003600012345",
		OrganizationType: entity.OrgTypeSRL,
		IsTVAPayer:       true,
		TVAType:          &tvaType,
		HasEmployees:     false,
		Status:           entity.CompanyStatusActive,
	}
}

func newGenerationUseCase(
	companyRepo *fakeCompanyRepo,
	templateRepo *fakeTemplateRepo,
	overrideRepo *fakeOverrideRepo,
	taskRepo *fakeTaskRepo,
	activityRepo *fakeActivityRepo,
) *GenerationUseCase {
	uc := NewGenerationUseCase(companyRepo, templateRepo, overrideRepo, taskRepo, activityRepo, testLogger())
	uc.now = func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) }
	return uc
}

func TestGenerateForCompany_PlantillaMensual(t *testing.T) {
	companyRepo := newFakeCompanyRepo(testCompany())
	templateRepo := &fakeTemplateRepo{templates: []*entity.TaskTemplate{{
		ID:          "tpl1",
		Name:        "Declarația TVA",
		Description: "Forma TVA12",
		Frequency:   entity.FrequencyMonthly,
		DeadlineDay: 25,
		IsActive:    true,
	}}}
	taskRepo := newFakeTaskRepo()
	activityRepo := &fakeActivityRepo{}
	uc := newGenerationUseCase(companyRepo, templateRepo, newFakeOverrideRepo(), taskRepo, activityRepo)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	res, err := uc.GenerateForCompany(context.Background(), "c1", &start, intPtr(3), "u1")
	require.NoError(t, err)

	// Ventana [2026-03-01, 2026-06-01): marzo, abril y mayo.
	assert.Equal(t, 3, res.TasksCreated)
	assert.Equal(t, 1, res.TemplatesApplied)
	assert.Equal(t, 0, res.TemplatesSkipped)
	assert.Empty(t, res.TemplateErrors)

	require.Len(t, taskRepo.created, 3)
	assert.Equal(t, time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC), taskRepo.created[0].DueDate)
	assert.Equal(t, time.Date(2026, 4, 25, 0, 0, 0, 0, time.UTC), taskRepo.created[1].DueDate)
	assert.Equal(t, time.Date(2026, 5, 25, 0, 0, 0, 0, time.UTC), taskRepo.created[2].DueDate)
	for _, task := range taskRepo.created {
		assert.Equal(t, entity.TaskStatusPending, task.Status)
		assert.Equal(t, "Declarația TVA", task.Title)
		require.NotNil(t, task.TemplateID)
		assert.Equal(t, "tpl1", *task.TemplateID)
	}

	require.Len(t, activityRepo.entries, 1)
	assert.Equal(t, entity.ActionTasksGenerated, activityRepo.entries[0].Action)
}

func TestGenerateForCompany_AplicabilidadOmitePlantilla(t *testing.T) {
	company := testCompany()
	company.IsTVAPayer = false
	company.TVAType = nil
	companyRepo := newFakeCompanyRepo(company)
	templateRepo := &fakeTemplateRepo{templates: []*entity.TaskTemplate{
		{ID: "tpl-tva", Name: "TVA", Frequency: entity.FrequencyMonthly, DeadlineDay: 25, AppliesToTVAPayers: true, IsActive: true},
		{ID: "tpl-emp", Name: "IPC21", Frequency: entity.FrequencyMonthly, DeadlineDay: 25, AppliesToEmployers: true, IsActive: true},
		{ID: "tpl-ong", Name: "Raport ONG", Frequency: entity.FrequencyMonthly, DeadlineDay: 10, AppliesToOrgTypes: []string{entity.OrgTypeONG}, IsActive: true},
	}}
	taskRepo := newFakeTaskRepo()
	uc := newGenerationUseCase(companyRepo, templateRepo, newFakeOverrideRepo(), taskRepo, &fakeActivityRepo{})

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	res, err := uc.GenerateForCompany(context.Background(), "c1", &start, intPtr(1), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, res.TasksCreated)
	assert.Equal(t, 3, res.TemplatesSkipped)
	assert.Empty(t, taskRepo.created)
}

func TestGenerateForCompany_OverrideDesactivada(t *testing.T) {
	companyRepo := newFakeCompanyRepo(testCompany())
	templateRepo := &fakeTemplateRepo{templates: []*entity.TaskTemplate{{
		ID: "tpl1", Name: "TVA", Frequency: entity.FrequencyMonthly, DeadlineDay: 25, IsActive: true,
	}}}
	overrideRepo := newFakeOverrideRepo(&entity.TaskTemplateOverride{
		ID: "ov1", CompanyID: "c1", TemplateID: "tpl1", IsDisabled: true,
	})
	taskRepo := newFakeTaskRepo()
	uc := newGenerationUseCase(companyRepo, templateRepo, overrideRepo, taskRepo, &fakeActivityRepo{})

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	res, err := uc.GenerateForCompany(context.Background(), "c1", &start, intPtr(3), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, res.TasksCreated)
	assert.Equal(t, 1, res.TemplatesSkipped)
}

func TestGenerateForCompany_OverrideConDiaPersonalizado(t *testing.T) {
	companyRepo := newFakeCompanyRepo(testCompany())
	templateRepo := &fakeTemplateRepo{templates: []*entity.TaskTemplate{{
		ID: "tpl1", Name: "TVA", Frequency: entity.FrequencyMonthly, DeadlineDay: 25, IsActive: true,
	}}}
	overrideRepo := newFakeOverrideRepo(&entity.TaskTemplateOverride{
		ID: "ov1", CompanyID: "c1", TemplateID: "tpl1", CustomDeadlineDay: intPtr(10),
	})
	taskRepo := newFakeTaskRepo()
	uc := newGenerationUseCase(companyRepo, templateRepo, overrideRepo, taskRepo, &fakeActivityRepo{})

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	res, err := uc.GenerateForCompany(context.Background(), "c1", &start, intPtr(1), "u1")
	require.NoError(t, err)
	require.Equal(t, 1, res.TasksCreated)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), taskRepo.created[0].DueDate)
}

func TestGenerateForCompany_FrecuenciaDesconocidaSeAisla(t *testing.T) {
	companyRepo := newFakeCompanyRepo(testCompany())
	templateRepo := &fakeTemplateRepo{templates: []*entity.TaskTemplate{
		{ID: "tpl-mala", Name: "Rota", Frequency: "biweekly", DeadlineDay: 5, IsActive: true},
		{ID: "tpl-ok", Name: "TVA", Frequency: entity.FrequencyMonthly, DeadlineDay: 25, IsActive: true},
	}}
	taskRepo := newFakeTaskRepo()
	uc := newGenerationUseCase(companyRepo, templateRepo, newFakeOverrideRepo(), taskRepo, &fakeActivityRepo{})

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	res, err := uc.GenerateForCompany(context.Background(), "c1", &start, intPtr(1), "u1")
	require.NoError(t, err, "una plantilla inválida no aborta la corrida")
	assert.Equal(t, 1, res.TasksCreated)
	assert.Equal(t, 1, res.TemplatesApplied)
	require.Len(t, res.TemplateErrors, 1)
	assert.Contains(t, res.TemplateErrors[0], "Rota")
}

func TestGenerateForCompany_VentanaFueraDeRango(t *testing.T) {
	uc := newGenerationUseCase(newFakeCompanyRepo(testCompany()), &fakeTemplateRepo{}, newFakeOverrideRepo(), newFakeTaskRepo(), &fakeActivityRepo{})

	for _, months := range []int{0, -1, 37} {
		_, err := uc.GenerateForCompany(context.Background(), "c1", nil, &months, "u1")
		// Sentinela sin envolver: los handlers lo mapean a 400 con comparación directa.
		assert.Equal(t, domain.ErrInvalidInput, err, "months_ahead=%d", months)
	}
}

func TestGenerateForCompany_EmpresaInexistente(t *testing.T) {
	uc := newGenerationUseCase(newFakeCompanyRepo(), &fakeTemplateRepo{}, newFakeOverrideRepo(), newFakeTaskRepo(), &fakeActivityRepo{})

	_, err := uc.GenerateForCompany(context.Background(), "no-existe", nil, nil, "u1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatuses_ReevaluaSoloPendientesYBloqueadas(t *testing.T) {
	past := time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)
	taskRepo := newFakeTaskRepo(
		&entity.Task{ID: "dep-ok", CompanyID: "c1", Status: entity.TaskStatusCompleted, DueDate: past},
		&entity.Task{ID: "dep-no", CompanyID: "c1", Status: entity.TaskStatusPending, DueDate: past},
		// pending con dependencia incumplida → pasa a blocked
		&entity.Task{ID: "t-pend", CompanyID: "c1", Status: entity.TaskStatusPending, DueDate: past, DependsOnTasks: []string{"dep-no"}},
		// blocked con dependencia ya completada → vuelve a pending
		&entity.Task{ID: "t-bloq", CompanyID: "c1", Status: entity.TaskStatusBlocked, DueDate: past, DependsOnTasks: []string{"dep-ok"}},
		// in_progress es un estado manual: el barrido no lo toca
		&entity.Task{ID: "t-prog", CompanyID: "c1", Status: entity.TaskStatusInProgress, DueDate: past},
	)
	uc := newGenerationUseCase(newFakeCompanyRepo(), &fakeTemplateRepo{}, newFakeOverrideRepo(), taskRepo, &fakeActivityRepo{})

	res, err := uc.UpdateStatuses(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, res.Examined, "completed no entra al barrido")
	// dep-no queda pending (sin cambio), t-pend y t-bloq cambian, t-prog no se toca.
	assert.Equal(t, 2, res.Updated)
	assert.Equal(t, entity.TaskStatusBlocked, taskRepo.tasks["t-pend"].Status)
	assert.Equal(t, entity.TaskStatusPending, taskRepo.tasks["t-bloq"].Status)
	assert.Equal(t, entity.TaskStatusInProgress, taskRepo.tasks["t-prog"].Status)
	_, touched := taskRepo.updates["t-prog"]
	assert.False(t, touched)
}
