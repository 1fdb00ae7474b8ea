package http

import (
	"github.com/gofiber/fiber/v2"
	appexport "github.com/jhoicas/despensa-api/internal/application/export"
	appinventory "github.com/jhoicas/despensa-api/internal/application/inventory"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
	"github.com/jhoicas/despensa-api/internal/domain/conversion"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC     *usecase.ItemUseCase
	CommandUC  *usecase.CommandUseCase
	GapUC      *usecase.GapUseCase
	ForecastUC *appinventory.ForecastUseCase
	ExportUC   *appexport.ExportUseCase
	Converter  *conversion.Converter
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Items
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Post("/import", itemHandler.BulkImport)
	items.Post("/reset-baseline", itemHandler.ResetAllBaselines)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Post("/:id/reset-baseline", itemHandler.ResetBaseline)

	// Comandos de colaboradores externos (POS, voz, escaneo)
	commands := api.Group("/commands")
	commandHandler := NewCommandHandler(deps.CommandUC)
	commands.Post("/sale", commandHandler.ApplySale)
	commands.Post("/voice", commandHandler.ApplyVoice)
	commands.Post("/scan", commandHandler.ApplyScan)

	// Lecturas derivadas
	statsHandler := NewStatsHandler(deps.GapUC, deps.ForecastUC)
	api.Get("/gap/summary", statsHandler.GapSummary)
	api.Get("/forecast", statsHandler.Forecast)

	// Export a archivo
	export := api.Group("/export")
	exportHandler := NewExportHandler(deps.ExportUC)
	export.Get("/items.xlsx", exportHandler.Workbook)
	export.Get("/report.pdf", exportHandler.StockReport)

	// Convertidor peso/volumen
	conv := api.Group("/conversion")
	conversionHandler := NewConversionHandler(deps.Converter)
	conv.Get("/estimate-weight", conversionHandler.EstimateWeight)
	conv.Get("/estimate-volume", conversionHandler.EstimateVolume)
	conv.Get("/recommend-container", conversionHandler.RecommendContainer)
}
