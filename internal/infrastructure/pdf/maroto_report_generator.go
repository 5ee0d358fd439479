// Package pdf genera el reporte mensual de movimientos de stock en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + mes del reporte                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Entradas | Salidas | Stock total                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Cant | Lámina | Ubicación | Usuario   │
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

	"github.com/jhoicas/acrilico-stock-api/internal/application/dto"
	"github.com/jhoicas/acrilico-stock-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator genera el PDF del reporte mensual usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMonthlyReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMonthlyReport(
	summary *dto.MonthlyReportDTO,
	movements []*entity.StockMovement,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte mensual de stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range movementRows(movements) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + mes del reporte.
func headerRow(summary *dto.MonthlyReportDTO) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("STOCK DE LÁMINAS ACRÍLICAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de movimientos del mes", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%04d-%02d", summary.Year, summary.Month), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 4,
			}),
		),
	)
}

// summaryRow: entradas/salidas del mes y stock total actual.
func summaryRow(summary *dto.MonthlyReportDTO) core.Row {
	metric := func(label string, value int64) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center,
				Color: colorGray, Top: 1,
			}),
			text.New(fmt.Sprintf("%d", value), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		metric("ENTRADAS DEL MES", summary.Entries),
		metric("SALIDAS DEL MES", summary.Exits),
		metric("STOCK TOTAL ACTUAL", summary.TotalStock),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Tipo", 1, align.Center),
		h("Cant.", 1, align.Right),
		h("Lámina", 4, align.Left),
		h("Ubicación", 2, align.Left),
		h("Usuario", 2, align.Left),
	)
}

// movementRows: una fila por movimiento del mes, más recientes primero.
func movementRows(movements []*entity.StockMovement) []core.Row {
	result := make([]core.Row, 0, len(movements))
	for _, mv := range movements {
		desc := fmt.Sprintf("%s %smm %s", mv.SheetType, mv.SheetThickness.String(), mv.SheetSize)
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				mv.CreatedAt.Format("02/01/2006 15:04"),
				props.Text{Size: 8, Top: 1},
			)),
			col.New(1).Add(text.New(
				mv.Kind,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", mv.Quantity),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(4).Add(text.New(desc, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(mv.SheetLocation, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(mv.ActorName, props.Text{Size: 8, Top: 1})),
		))
	}
	return result
}
