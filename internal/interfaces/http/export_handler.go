package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/despensa-api/internal/application/dto"
	appexport "github.com/jhoicas/despensa-api/internal/application/export"
)

// ExportHandler maneja las exportaciones a archivo (XLSX, PDF).
type ExportHandler struct {
	uc *appexport.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *appexport.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Workbook godoc
// @Summary      Export plano de ítems a XLSX
// @Tags         export
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/export/items.xlsx [get]
func (h *ExportHandler) Workbook(c *fiber.Ctx) error {
	data, err := h.uc.Workbook()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="items.xlsx"`)
	return c.Send(data)
}

// StockReport godoc
// @Summary      Reporte de stock en PDF
// @Tags         export
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/export/report.pdf [get]
func (h *ExportHandler) StockReport(c *fiber.Ctx) error {
	data, err := h.uc.StockReportPDF()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-report.pdf"`)
	return c.Send(data)
}
