package export

import (
	"time"

	"github.com/jhoicas/despensa-api/internal/application/dto"
)

// StockReportGenerator puerto para el render PDF del reporte de stock.
type StockReportGenerator interface {
	GenerateStockReport(records []dto.ItemExportRecord, generatedAt time.Time) ([]byte, error)
}

// WorkbookGenerator puerto para el export plano a planilla (XLSX).
type WorkbookGenerator interface {
	GenerateWorkbook(records []dto.ItemExportRecord) ([]byte, error)
}
