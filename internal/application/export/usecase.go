// Package export arma el registro plano por ítem para salida a archivo/reporte
// y delega el render a los generadores de infraestructura (XLSX, PDF).
package export

import (
	"sort"
	"time"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ExportUseCase exportaciones de solo lectura del snapshot de ítems.
type ExportUseCase struct {
	repo     repository.ItemRepository
	pdf      StockReportGenerator
	workbook WorkbookGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(repo repository.ItemRepository, pdf StockReportGenerator, workbook WorkbookGenerator) *ExportUseCase {
	return &ExportUseCase{repo: repo, pdf: pdf, workbook: workbook}
}

// Records registros planos de todos los ítems, orden estable por nombre.
// Las fechas salen como fecha calendario (2006-01-02); los timestamps internos
// del motor se quedan dentro del motor.
func (uc *ExportUseCase) Records() ([]dto.ItemExportRecord, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	records := make([]dto.ItemExportRecord, 0, len(items))
	for _, item := range items {
		records = append(records, toExportRecord(item))
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}

// StockReportPDF reporte de stock en PDF.
func (uc *ExportUseCase) StockReportPDF() ([]byte, error) {
	records, err := uc.Records()
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateStockReport(records, time.Now().UTC())
}

// Workbook export plano en XLSX.
func (uc *ExportUseCase) Workbook() ([]byte, error) {
	records, err := uc.Records()
	if err != nil {
		return nil, err
	}
	return uc.workbook.GenerateWorkbook(records)
}

func toExportRecord(item *entity.Item) dto.ItemExportRecord {
	rec := dto.ItemExportRecord{
		Name:               item.Name,
		Category:           string(item.Category),
		Quantity:           item.Quantity,
		WeightPerContainer: item.WeightPerContainer,
		TotalWeight:        item.TotalWeight,
		Unit:               item.Unit,
		CostPerUnit:        item.CostPerUnit,
		TotalValue:         item.TotalValue,
		Supplier:           item.Supplier,
		Location:           item.Location,
		MinimumStock:       item.MinimumStock,
		LastUpdated:        item.UpdatedAt.Format(dateLayout),
	}
	if item.ExpirationDate != nil {
		rec.ExpirationDate = item.ExpirationDate.Format(dateLayout)
	}
	return rec
}
