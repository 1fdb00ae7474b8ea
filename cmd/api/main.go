package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appexport "github.com/jhoicas/despensa-api/internal/application/export"
	appinventory "github.com/jhoicas/despensa-api/internal/application/inventory"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
	"github.com/jhoicas/despensa-api/internal/domain/conversion"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
	infraexcel "github.com/jhoicas/despensa-api/internal/infrastructure/excel"
	"github.com/jhoicas/despensa-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/despensa-api/internal/infrastructure/pdf"
	"github.com/jhoicas/despensa-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/despensa-api/internal/interfaces/http"
	"github.com/jhoicas/despensa-api/pkg/config"
	"github.com/jhoicas/despensa-api/pkg/logger"
)

const swaggerFilePath = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	// Repositorio de ítems: memoria por defecto; PostgreSQL como adaptador de
	// persistencia opcional (DB_DRIVER=postgres).
	var itemRepo repository.ItemRepository
	if cfg.DB.Driver == "postgres" {
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		itemRepo = postgres.NewItemRepository(pool)
	} else {
		itemRepo = memory.NewItemRepository()
	}

	app := newServer(cfg, log, itemRepo)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// newServer arma la app fiber completa: middlewares, casos de uso y rutas.
// El middleware de swagger hace os.Stat del archivo y entra en pánico si no
// existe, así que solo se registra cuando el archivo está presente; sin él la
// API arranca igual, solo sin UI de docs.
func newServer(cfg *config.Config, log *logger.Logger, itemRepo repository.ItemRepository) *fiber.App {
	converter := conversion.NewConverter()

	itemUC := usecase.NewItemUseCase(itemRepo)
	commandUC := usecase.NewCommandUseCase(itemUC, converter)
	gapUC := usecase.NewGapUseCase(itemRepo)
	forecastUC := appinventory.NewForecastUseCase(itemRepo, appinventory.Config{
		BaseRateDryGood:     cfg.Engine.BaseRateDryGood,
		BaseRatePerishable:  cfg.Engine.BaseRatePerishable,
		DemandBoost:         cfg.Engine.DemandBoost,
		SeasonalAmplitude:   cfg.Engine.SeasonalAmplitude,
		UrgencyCriticalDays: cfg.Engine.UrgencyCriticalDays,
		UrgencyHighDays:     cfg.Engine.UrgencyHighDays,
		UrgencyMediumDays:   cfg.Engine.UrgencyMediumDays,
		OrderingCost:        cfg.Engine.OrderingCost,
		HoldingCostRate:     cfg.Engine.HoldingCostRate,
		SafetyMultiplier:    cfg.Engine.SafetyMultiplier,
	})
	exportUC := appexport.NewExportUseCase(itemRepo, infrapdf.NewMarotoReportGenerator(), infraexcel.NewExcelizeExporter())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFilePath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFilePath,
			Path:     "docs",
			Title:    "Despensa API",
		}))
	} else {
		log.Warn().Str("file", swaggerFilePath).Msg("swagger.json no encontrado; UI de docs deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:     itemUC,
		CommandUC:  commandUC,
		GapUC:      gapUC,
		ForecastUC: forecastUC,
		ExportUC:   exportUC,
		Converter:  converter,
	})

	return app
}
