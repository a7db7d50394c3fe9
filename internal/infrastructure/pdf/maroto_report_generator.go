// Package pdf implementa la exportación del histórico derivado de un
// producto como reporte PDF para el dashboard.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del producto │ ID + Inventario inicial      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Día | Compra (cant/precio/monto)                    │
//	│         | Venta (cant/precio/monto) | Inventario            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Total compras / Total ventas / Inventario final   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-analytics-api/internal/application/usecase"
	"github.com/jhoicas/retail-analytics-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Verificar en tiempo de compilación que implementa el puerto.
var _ usecase.HistoryPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa usecase.HistoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateHistoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateHistoryPDF(_ context.Context, product *entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Histórico de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, rec := range product.Records {
		m.AddRows(recordRow(rec))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(product))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del producto (izq), ID e inventario inicial (der).
func headerRow(product *entity.Product) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Producto: "+product.ID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Inventario inicial", props.Text{
				Size: 9, Align: align.Right, Color: colorGray, Top: 2,
			}),
			text.New(strconv.Itoa(product.OpeningInventory), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Center,
		}))
	}
	return row.New(8).Add(
		header(1, "Día"),
		header(1, "Compra"),
		header(2, "P. compra"),
		header(2, "M. compra"),
		header(1, "Venta"),
		header(2, "P. venta"),
		header(2, "M. venta"),
		header(1, "Inv."),
	)
}

func recordRow(rec entity.DailyRecord) core.Row {
	cell := func(size int, value string, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a}))
	}
	return row.New(6).Add(
		cell(1, strconv.Itoa(rec.Day), align.Center),
		cell(1, strconv.Itoa(rec.ProcurementQty), align.Right),
		cell(2, rec.ProcurementPrice.StringFixed(2), align.Right),
		cell(2, rec.ProcurementAmount().StringFixed(2), align.Right),
		cell(1, strconv.Itoa(rec.SalesQty), align.Right),
		cell(2, rec.SalesPrice.StringFixed(2), align.Right),
		cell(2, rec.SalesAmount().StringFixed(2), align.Right),
		cell(1, strconv.Itoa(rec.Inventory), align.Right),
	)
}

func totalsRow(product *entity.Product) core.Row {
	totalProcurement := decimal.Zero
	totalSales := decimal.Zero
	finalInventory := product.OpeningInventory
	for _, rec := range product.Records {
		totalProcurement = totalProcurement.Add(rec.ProcurementAmount())
		totalSales = totalSales.Add(rec.SalesAmount())
		finalInventory = rec.Inventory
	}

	label := func(size int, s string) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorGray,
		}))
	}
	value := func(size int, s string) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
		}))
	}
	return row.New(10).Add(
		label(3, "Total compras:"),
		value(2, totalProcurement.StringFixed(2)),
		label(2, "Total ventas:"),
		value(2, totalSales.StringFixed(2)),
		label(2, "Inv. final:"),
		value(1, strconv.Itoa(finalInventory)),
	)
}
