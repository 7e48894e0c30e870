// Package pdf implementa la versión imprimible del reporte de merma.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + período del reporte                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: merma total del período                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Departamento | Unidades | Valor | % del total        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Mes | Unidades perdidas | Valor perdido              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fecha de generación                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/jhoicas/merma-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 153, Green: 27, Blue: 27}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator genera el PDF del reporte de merma usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateShrinkageReport genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateShrinkageReport(
	_ context.Context,
	report *dto.ShrinkageReportDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Merma de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Merma por departamento
	m.AddRows(sectionTitleRow("MERMA POR DEPARTAMENTO"))
	m.AddRows(deptHeaderRow())
	for _, r := range deptDetailRows(report.ByDepartment) {
		m.AddRows(r)
	}

	// Tendencia mensual
	m.AddRows(line.NewRow(3))
	m.AddRows(sectionTitleRow("TENDENCIA MENSUAL"))
	m.AddRows(trendHeaderRow())
	for _, r := range trendDetailRows(report.MonthlyTrend) {
		m.AddRows(r)
	}

	// Footer
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y período del reporte (der).
func headerRow(report *dto.ShrinkageReportDTO) core.Row {
	periodo := fmt.Sprintf("%s a %s", report.Period.StartDate, report.Period.EndDate)
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE MERMA DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Pérdidas por daño y robo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Período", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(periodo, props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRow: merma total del período.
func summaryRow(report *dto.ShrinkageReportDTO) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("MERMA TOTAL ESTIMADA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
			}),
			text.New("$"+formatMoney(report.TotalLoss.StringFixed(0)), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 6,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

func deptHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Departamento", 5, align.Left),
		h("Unidades", 2, align.Right),
		h("Valor perdido", 3, align.Right),
		h("% del total", 2, align.Right),
	)
}

func deptDetailRows(depts []dto.DepartmentShrinkageDTO) []core.Row {
	result := make([]core.Row, 0, len(depts))
	for _, d := range depts {
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(
				d.Department,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", d.UnitsLost),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+formatMoney(d.TotalLoss.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				d.SharePct.StringFixed(1)+"%",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func trendHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Mes", 4, align.Left),
		h("Unidades perdidas", 4, align.Right),
		h("Valor perdido", 4, align.Right),
	)
}

func trendDetailRows(trend []dto.MonthlyShrinkageDTO) []core.Row {
	result := make([]core.Row, 0, len(trend))
	for _, t := range trend {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				t.Month,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				fmt.Sprintf("%d", t.UnitsLost),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(4).Add(text.New(
				"$"+formatMoney(t.TotalLoss.StringFixed(0)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func footerRow() core.Row {
	generado := time.Now().Format("02/01/2006 15:04")
	return row.New(8).Add(col.New(12).Add(
		text.New("Generado el "+generado+". Documento interno de control de pérdidas.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
