package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/contaflow-api/internal/domain/entity"
	"github.com/jhoicas/contaflow-api/internal/domain/schedule"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(n int) *int { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Applies: predicados de aplicabilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestApplies(t *testing.T) {
	srlTVA := &entity.Company{OrganizationType: entity.OrgTypeSRL, IsTVAPayer: true}
	iiNoTVA := &entity.Company{OrganizationType: entity.OrgTypeII, IsTVAPayer: false}
	srlEmployer := &entity.Company{OrganizationType: entity.OrgTypeSRL, HasEmployees: true}

	cases := []struct {
		name    string
		tpl     entity.TaskTemplate
		company *entity.Company
		want    bool
	}{
		{"sin predicados aplica a todos", entity.TaskTemplate{}, iiNoTVA, true},
		{"TVA requerido y empresa paga TVA", entity.TaskTemplate{AppliesToTVAPayers: true}, srlTVA, true},
		{"TVA requerido y empresa no paga TVA", entity.TaskTemplate{AppliesToTVAPayers: true}, iiNoTVA, false},
		{"empleador requerido sin empleados", entity.TaskTemplate{AppliesToEmployers: true}, srlTVA, false},
		{"empleador requerido con empleados", entity.TaskTemplate{AppliesToEmployers: true}, srlEmployer, true},
		{"forma jurídica incluida", entity.TaskTemplate{AppliesToOrgTypes: []string{entity.OrgTypeSRL, entity.OrgTypeONG}}, srlTVA, true},
		{"forma jurídica excluida", entity.TaskTemplate{AppliesToOrgTypes: []string{entity.OrgTypeONG}}, srlTVA, false},
		{"lista vacía aplica a todas las formas", entity.TaskTemplate{AppliesToOrgTypes: []string{}}, iiNoTVA, true},
		{
			"todos los predicados deben cumplirse",
			entity.TaskTemplate{AppliesToTVAPayers: true, AppliesToOrgTypes: []string{entity.OrgTypeII}},
			iiNoTVA,
			false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, schedule.Applies(&tc.tpl, tc.company))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolve: precedencia de overrides
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_SinOverrideUsaPlantilla(t *testing.T) {
	tpl := &entity.TaskTemplate{DeadlineDay: 25, DeadlineMonth: intPtr(3)}
	d, skip := schedule.Resolve(tpl, nil)
	assert.False(t, skip)
	assert.Equal(t, 25, d.Day)
	require.NotNil(t, d.Month)
	assert.Equal(t, 3, *d.Month)
}

// P5: el día custom del override tiene prioridad sobre el de la plantilla.
func TestResolve_OverridePersonalizaDia(t *testing.T) {
	tpl := &entity.TaskTemplate{DeadlineDay: 25}
	ov := &entity.TaskTemplateOverride{CustomDeadlineDay: intPtr(10)}
	d, skip := schedule.Resolve(tpl, ov)
	assert.False(t, skip)
	assert.Equal(t, 10, d.Day)
}

// P6: un override deshabilitado suprime la plantilla sin importar lo demás.
func TestResolve_OverrideDeshabilitadoSuprime(t *testing.T) {
	tpl := &entity.TaskTemplate{DeadlineDay: 25}
	ov := &entity.TaskTemplateOverride{IsDisabled: true, CustomDeadlineDay: intPtr(10)}
	_, skip := schedule.Resolve(tpl, ov)
	assert.True(t, skip)
}

func TestResolve_OverrideSinCamposCustomMantienePlantilla(t *testing.T) {
	tpl := &entity.TaskTemplate{DeadlineDay: 25, DeadlineMonth: intPtr(1)}
	ov := &entity.TaskTemplateOverride{Notes: "revisar con el cliente"}
	d, skip := schedule.Resolve(tpl, ov)
	assert.False(t, skip)
	assert.Equal(t, 25, d.Day)
	assert.Equal(t, 1, *d.Month)
}

// ──────────────────────────────────────────────────────────────────────────────
// Occurrences: enumeración por frecuencia
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de la especificación: mensual día 25, 3 meses → 25 ene, 25 feb, 25 mar.
func TestOccurrences_MensualTresMeses(t *testing.T) {
	got, err := schedule.Occurrences(entity.FrequencyMonthly, schedule.Deadline{Day: 25}, date(2024, time.January, 1), 3)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		date(2024, time.January, 25),
		date(2024, time.February, 25),
		date(2024, time.March, 25),
	}, got)
}

// Día 31 se ajusta al último día de los meses cortos (febrero bisiesto incluido).
func TestOccurrences_MensualDia31SeAjusta(t *testing.T) {
	got, err := schedule.Occurrences(entity.FrequencyMonthly, schedule.Deadline{Day: 31}, date(2024, time.January, 1), 4)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		date(2024, time.January, 31),
		date(2024, time.February, 29), // 2024 es bisiesto
		date(2024, time.March, 31),
		date(2024, time.April, 30),
	}, got)
}

func TestOccurrences_FebreroNoBisiesto(t *testing.T) {
	got, err := schedule.Occurrences(entity.FrequencyMonthly, schedule.Deadline{Day: 30}, date(2023, time.February, 1), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, date(2023, time.February, 28), got[0])
}

// La ocurrencia anterior a la fecha de inicio queda fuera de la ventana.
func TestOccurrences_MensualInicioDespuesDelDia(t *testing.T) {
	got, err := schedule.Occurrences(entity.FrequencyMonthly, schedule.Deadline{Day: 10}, date(2024, time.January, 15), 2)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2024, time.February, 10), date(2024, time.March, 10)}, got)
}

func TestOccurrences_Trimestral(t *testing.T) {
	got, err := schedule.Occurrences(entity.FrequencyQuarterly, schedule.Deadline{Day: 25}, date(2024, time.January, 1), 12)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		date(2024, time.March, 25),
		date(2024, time.June, 25),
		date(2024, time.September, 25),
		date(2024, time.December, 25),
	}, got)
}

func TestOccurrences_TrimestralVentanaCorta(t *testing.T) {
	got, err := schedule.Occurrences(entity.FrequencyQuarterly, schedule.Deadline{Day: 25}, date(2024, time.May, 1), 3)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2024, time.June, 25)}, got)
}

func TestOccurrences_Anual(t *testing.T) {
	got, err := schedule.Occurrences(entity.FrequencyAnnual, schedule.Deadline{Day: 25, Month: intPtr(3)}, date(2024, time.January, 1), 24)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		date(2024, time.March, 25),
		date(2025, time.March, 25),
	}, got)
}

// Sin DeadlineMonth la frecuencia anual cae en enero.
func TestOccurrences_AnualSinMesUsaEnero(t *testing.T) {
	got, err := schedule.Occurrences(entity.FrequencyAnnual, schedule.Deadline{Day: 15}, date(2024, time.January, 1), 12)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2024, time.January, 15)}, got)
}

func TestOccurrences_Semanal(t *testing.T) {
	got, err := schedule.Occurrences(entity.FrequencyWeekly, schedule.Deadline{Day: 1}, date(2024, time.January, 1), 1)
	require.NoError(t, err)
	assert.Equal(t, []time.Time{
		date(2024, time.January, 1),
		date(2024, time.January, 8),
		date(2024, time.January, 15),
		date(2024, time.January, 22),
		date(2024, time.January, 29),
	}, got)
}

func TestOccurrences_FrecuenciaDesconocida(t *testing.T) {
	_, err := schedule.Occurrences("biweekly", schedule.Deadline{Day: 1}, date(2024, time.January, 1), 1)
	assert.Error(t, err)
}
