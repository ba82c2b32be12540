// Package pdf implementa el informe mensual de cumplimiento en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + Cod. fiscal  │  Mes/Año del informe      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total | Completadas | Pendientes | Vencidas       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Obligación | Vencimiento | Estado | Completada por  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: tasa de cumplimiento + leyenda                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/contaflow-api/internal/application/dto"
	"github.com/jhoicas/contaflow-api/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 22, Green: 130, Blue: 60}
	colorRed     = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// Nombres de meses en rumano (idioma del informe que recibe el cliente).
var monthNames = [...]string{
	"", "Ianuarie", "Februarie", "Martie", "Aprilie", "Mai", "Iunie",
	"Iulie", "August", "Septembrie", "Octombrie", "Noiembrie", "Decembrie",
}

// Asegura que MarotoReportGenerator implementa reports.PDFGenerator.
var _ reports.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// MonthlyReport genera el PDF del informe mensual y devuelve sus bytes.
func (g *MarotoReportGenerator) MonthlyReport(report *dto.MonthlyReportResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Raport lunar de conformitate", true).
		WithAuthor(report.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(report.Tasks) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + código fiscal (izq) y período del informe (der).
func headerRow(report *dto.MonthlyReportResponse) core.Row {
	period := fmt.Sprintf("%s %d", monthName(report.Month), report.Year)

	return row.New(18).Add(
		col.New(7).Add(
			text.New(report.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Cod fiscal: "+report.FiscalCode, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RAPORT LUNAR DE CONFORMITATE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRow: contadores agregados del mes.
func summaryRow(report *dto.MonthlyReportResponse) core.Row {
	stat := func(label string, value int, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(fmt.Sprintf("%d", value), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center,
				Color: color, Top: 1,
			}),
			text.New(label, props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 9,
			}),
		)
	}
	return row.New(16).Add(
		stat("Total obligații", report.TotalTasks, colorPrimary),
		stat("Finalizate", report.CompletedTasks, colorGreen),
		stat("În așteptare", report.PendingTasks+report.BlockedTasks, colorGray),
		stat("Restante", report.OverdueTasks, colorRed),
	)
}

// tableHeaderRow: cabecera de la tabla de obligaciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Obligație", 5, align.Left),
		h("Scadență", 2, align.Center),
		h("Stare", 2, align.Center),
		h("Finalizată de", 3, align.Left),
	)
}

// tableRows: una fila por obligación del mes.
func tableRows(tasks []dto.ReportTaskItemDTO) []core.Row {
	result := make([]core.Row, 0, len(tasks))
	for _, t := range tasks {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				t.Title,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				t.DueDate,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				statusLabel(t.Status),
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: statusColor(t.Status)},
			)),
			col.New(3).Add(text.New(
				t.CompletedBy,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
		))
	}
	return result
}

// footerRow: tasa de cumplimiento + leyenda.
func footerRow(report *dto.MonthlyReportResponse) core.Row {
	rate := fmt.Sprintf("Rata de conformitate: %.0f%%", report.ComplianceRate*100)
	return row.New(14).Add(
		col.New(12).Add(
			text.New(rate, props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2,
			}),
			text.New(
				"Raport generat automat de ContaFlow. Stările reflectă situația la data generării.",
				props.Text{Size: 6.5, Color: colorGray, Top: 9},
			),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func monthName(m int) string {
	if m >= 1 && m <= 12 {
		return monthNames[m]
	}
	return fmt.Sprintf("%d", m)
}

// statusLabel traduce el estado persistido a la etiqueta del informe.
func statusLabel(status string) string {
	switch status {
	case "completed":
		return "Finalizată"
	case "pending":
		return "În așteptare"
	case "in_progress":
		return "În lucru"
	case "blocked":
		return "Blocată"
	}
	return status
}

func statusColor(status string) *props.Color {
	switch status {
	case "completed":
		return colorGreen
	case "blocked":
		return colorRed
	}
	return colorGray
}
