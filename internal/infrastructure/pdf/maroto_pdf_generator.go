// Package pdf implementa la representación imprimible de una hoja de tiempo
// semanal, pensada para adjuntarla al paquete de facturación del cliente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empleado │ Semana (lunes — domingo) + estado        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Categoría | Fact. | Reg | Extra | Fest | PTO │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: horas por tipo                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  HALLAZGOS: excepciones de cumplimiento vigentes             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	apptimesheet "github.com/talento-hr/talento-api/internal/application/timesheet"
	"github.com/talento-hr/talento-api/internal/domain/entity"
	domaints "github.com/talento-hr/talento-api/internal/domain/timesheet"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ apptimesheet.WeekPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa timesheet.WeekPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateWeekPDF genera el PDF de la hoja semanal y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateWeekPDF(
	_ context.Context,
	employee *entity.Employee,
	ts *entity.Timesheet,
	exceptions map[string][]entity.Exception,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de tiempo semanal", true).
		WithAuthor("talento-hr", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(employee, ts))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range entryRows(ts.Entries) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(ts))

	if len(exceptions) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		for _, r := range exceptionRows(ts.Entries, exceptions) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empleado (izq) y semana + estado (der).
func headerRow(employee *entity.Employee, ts *entity.Timesheet) core.Row {
	weekStart := domaints.WeekStart(ts.WeekEnding)
	period := fmt.Sprintf("%s — %s", weekStart.Format("02/01/2006"), ts.WeekEnding.Format("02/01/2006"))

	return row.New(18).Add(
		col.New(7).Add(
			text.New(employee.FullName(), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(employee.Title, "—")+"   |   "+nonEmpty(employee.Department, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("HOJA DE TIEMPO SEMANAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(period, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Estado: "+string(ts.Status), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de registros.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Categoría", 3, align.Left),
		h("Fact.", 1, align.Center),
		h("Reg.", 1, align.Right),
		h("Extra", 1, align.Right),
		h("Fest.", 2, align.Right),
		h("Desc.", 2, align.Right),
	)
}

// entryRows: una fila por registro de la semana.
func entryRows(entries []*entity.TimeEntry) []core.Row {
	result := make([]core.Row, 0, len(entries))
	for _, e := range entries {
		billable := "No"
		if e.Billable {
			billable = "Sí"
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				e.Date.Format("02/01/2006"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(
				e.Category,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				billable,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				e.RegularHours.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				e.OvertimeHours.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				e.HolidayHours.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				e.TimeOffHours.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: totales de horas por tipo, alineados a la derecha.
func totalsRow(ts *entity.Timesheet) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	total := ts.TotalRegular.Add(ts.TotalOvertime).Add(ts.TotalHoliday).Add(ts.TotalTimeOff)

	return row.New(32).Add(
		col.New(4),
		col.New(4).Add(
			label("Horas regulares:"),
			label("Horas extra:"),
			label("Festivo / descanso:"),
			grandLabel("TOTAL SEMANA:"),
		),
		col.New(4).Add(
			value(ts.TotalRegular.StringFixed(2)),
			value(ts.TotalOvertime.StringFixed(2)),
			value(ts.TotalHoliday.Add(ts.TotalTimeOff).StringFixed(2)),
			grandValue(total.StringFixed(2)),
		),
	)
}

// exceptionRows: hallazgos de cumplimiento por registro.
func exceptionRows(entries []*entity.TimeEntry, exceptions map[string][]entity.Exception) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("HALLAZGOS DE CUMPLIMIENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorAlert, Top: 1,
			}),
		)),
	}
	for _, e := range entries {
		for _, ex := range exceptions[e.ID] {
			rows = append(rows, row.New(5).Add(col.New(12).Add(
				text.New(
					fmt.Sprintf("%s — [%s] %s", e.Date.Format("02/01/2006"), ex.Kind, ex.Message),
					props.Text{Size: 7, Color: colorGray, Top: 0.5, Left: 2},
				),
			)))
		}
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
