// Package pdf implementa el reporte de stock en PDF usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ítem | Categoría | Cant | Peso | Costo | Valor       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Valor total / Peso total de la flota               │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	appexport "github.com/jhoicas/despensa-api/internal/application/export"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appexport.StockReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa export.StockReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateStockReport genera el PDF del reporte de stock y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateStockReport(records []dto.ItemExportRecord, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Stock de Cocina", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, rec := range records {
		m.AddRows(tableDetailRow(rec))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(records))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Reporte de Stock de Cocina", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 4, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header("Ítem", 3),
		header("Categoría", 2),
		header("Cant", 1),
		header("Peso (lbs)", 2),
		header("Costo Unit", 2),
		header("Valor Total", 2),
	)
}

func tableDetailRow(rec dto.ItemExportRecord) core.Row {
	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Top: 1, Align: a}))
	}
	return row.New(6).Add(
		cell(rec.Name, 3, align.Left),
		cell(rec.Category, 2, align.Left),
		cell(rec.Quantity.String(), 1, align.Left),
		cell(rec.TotalWeight.StringFixed(2), 2, align.Left),
		cell("$"+rec.CostPerUnit.StringFixed(2), 2, align.Left),
		cell("$"+rec.TotalValue.StringFixed(2), 2, align.Left),
	)
}

func totalsRow(records []dto.ItemExportRecord) core.Row {
	totalValue, totalWeight := decimal.Zero, decimal.Zero
	for _, rec := range records {
		totalValue = totalValue.Add(rec.TotalValue)
		totalWeight = totalWeight.Add(rec.TotalWeight)
	}
	return row.New(10).Add(
		col.New(6).Add(
			text.New(fmt.Sprintf("Ítems: %d", len(records)), props.Text{
				Size: 9, Top: 2, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New(
				fmt.Sprintf("Peso total: %s lbs   ·   Valor total: $%s",
					totalWeight.StringFixed(2), totalValue.StringFixed(2)),
				props.Text{Style: fontstyle.Bold, Size: 10, Top: 2, Align: align.Right, Color: colorPrimary},
			),
		),
	)
}
