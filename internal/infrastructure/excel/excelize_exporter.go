// Package excel implementa el export plano de ítems a XLSX usando excelize.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	appexport "github.com/jhoicas/despensa-api/internal/application/export"
)

var _ appexport.WorkbookGenerator = (*ExcelizeExporter)(nil)

const sheetName = "Stock"

// Encabezados en el orden del registro plano de export.
var headers = []string{
	"Name", "Category", "Quantity", "Weight/Container", "Total Weight", "Unit",
	"Cost/Unit", "Total Value", "Supplier", "Location", "Expiration Date",
	"Minimum Stock", "Last Updated",
}

// ExcelizeExporter implementa export.WorkbookGenerator.
type ExcelizeExporter struct{}

// NewExcelizeExporter construye el exportador.
func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

// GenerateWorkbook construye el XLSX en memoria y devuelve sus bytes.
func (e *ExcelizeExporter) GenerateWorkbook(records []dto.ItemExportRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: encabezado %s: %w", h, err)
		}
	}

	for i, rec := range records {
		values := []any{
			rec.Name,
			rec.Category,
			rec.Quantity.InexactFloat64(),
			rec.WeightPerContainer.InexactFloat64(),
			rec.TotalWeight.InexactFloat64(),
			rec.Unit,
			rec.CostPerUnit.InexactFloat64(),
			rec.TotalValue.InexactFloat64(),
			rec.Supplier,
			rec.Location,
			rec.ExpirationDate,
			rec.MinimumStock.InexactFloat64(),
			rec.LastUpdated,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
