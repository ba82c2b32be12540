// Package schedule contiene la lógica pura de generación de vencimientos:
// predicados de aplicabilidad, resolución de overrides y enumeración de
// ocurrencias por frecuencia. No toca persistencia ni red, lo que permite
// probarla con tablas de casos.
package schedule

import (
	"fmt"
	"time"

	"github.com/jhoicas/contaflow-api/internal/domain"
	"github.com/jhoicas/contaflow-api/internal/domain/entity"
)

// Deadline es la regla de vencimiento efectiva para un par (empresa, plantilla)
// después de aplicar el override.
type Deadline struct {
	Day   int  // 1-31
	Month *int // 1-12, solo frecuencia anual
}

// Applies evalúa los predicados de aplicabilidad de una plantilla sobre una
// empresa. Todos deben cumplirse:
//   - AppliesToTVAPayers ⇒ la empresa paga TVA
//   - AppliesToEmployers ⇒ la empresa tiene empleados
//   - AppliesToOrgTypes no vacío ⇒ contiene la forma jurídica de la empresa
func Applies(tpl *entity.TaskTemplate, company *entity.Company) bool {
	if tpl.AppliesToTVAPayers && !company.IsTVAPayer {
		return false
	}
	if tpl.AppliesToEmployers && !company.HasEmployees {
		return false
	}
	if len(tpl.AppliesToOrgTypes) > 0 {
		found := false
		for _, t := range tpl.AppliesToOrgTypes {
			if t == company.OrganizationType {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Resolve aplica el override de la empresa sobre la plantilla.
// skip=true cuando el override desactiva la plantilla para esa empresa.
// Los campos Custom* del override tienen prioridad sobre los de la plantilla.
func Resolve(tpl *entity.TaskTemplate, ov *entity.TaskTemplateOverride) (d Deadline, skip bool) {
	d = Deadline{Day: tpl.DeadlineDay, Month: tpl.DeadlineMonth}
	if ov == nil {
		return d, false
	}
	if ov.IsDisabled {
		return d, true
	}
	if ov.CustomDeadlineDay != nil {
		d.Day = *ov.CustomDeadlineDay
	}
	if ov.CustomDeadlineMonth != nil {
		d.Month = ov.CustomDeadlineMonth
	}
	return d, false
}

// Occurrences enumera las fechas de vencimiento de una plantilla dentro de la
// ventana [start, start+monthsAhead meses). Las fechas se normalizan a
// medianoche UTC (due_date es una fecha, no un instante).
//
// Devuelve domain.ErrInvalidTemplate envuelto si la frecuencia es desconocida.
func Occurrences(frequency string, d Deadline, start time.Time, monthsAhead int) ([]time.Time, error) {
	from := dateOnly(start)
	until := from.AddDate(0, monthsAhead, 0)

	switch frequency {
	case entity.FrequencyMonthly:
		return monthlyOccurrences(d.Day, 1, from, until), nil
	case entity.FrequencyQuarterly:
		return quarterlyOccurrences(d.Day, from, until), nil
	case entity.FrequencyAnnual:
		month := time.January
		if d.Month != nil {
			month = time.Month(*d.Month)
		}
		return annualOccurrences(d.Day, month, from, until), nil
	case entity.FrequencyWeekly:
		return weeklyOccurrences(from, until), nil
	default:
		return nil, fmt.Errorf("%w: frecuencia desconocida %q", domain.ErrInvalidTemplate, frequency)
	}
}

// monthlyOccurrences devuelve un vencimiento cada `step` meses, en el día
// indicado de cada mes (ajustado al último día si el mes es más corto).
func monthlyOccurrences(day, step int, from, until time.Time) []time.Time {
	var out []time.Time
	cursor := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	for cursor.Before(until) {
		due := clampedDate(cursor.Year(), cursor.Month(), day)
		if !due.Before(from) && due.Before(until) {
			out = append(out, due)
		}
		cursor = cursor.AddDate(0, step, 0)
	}
	return out
}

// quarterlyOccurrences vence en el mes de cierre de cada trimestre natural
// (marzo, junio, septiembre, diciembre).
func quarterlyOccurrences(day int, from, until time.Time) []time.Time {
	var out []time.Time
	cursor := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	for cursor.Month()%3 != 0 {
		cursor = cursor.AddDate(0, 1, 0)
	}
	for cursor.Before(until) {
		due := clampedDate(cursor.Year(), cursor.Month(), day)
		if !due.Before(from) && due.Before(until) {
			out = append(out, due)
		}
		cursor = cursor.AddDate(0, 3, 0)
	}
	return out
}

// annualOccurrences vence una vez al año en (month, day).
func annualOccurrences(day int, month time.Month, from, until time.Time) []time.Time {
	var out []time.Time
	for year := from.Year(); year <= until.Year(); year++ {
		due := clampedDate(year, month, day)
		if !due.Before(from) && due.Before(until) {
			out = append(out, due)
		}
	}
	return out
}

// weeklyOccurrences vence cada 7 días tomando la fecha de inicio como referencia.
func weeklyOccurrences(from, until time.Time) []time.Time {
	var out []time.Time
	for due := from; due.Before(until); due = due.AddDate(0, 0, 7) {
		out = append(out, due)
	}
	return out
}

// clampedDate construye la fecha (year, month, day) ajustando day al último día
// del mes cuando lo excede (ej. día 31 en abril → 30; día 30 en febrero → 28/29).
// Consciente de años bisiestos vía la normalización de time.Date.
func clampedDate(year int, month time.Month, day int) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
