package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/despensa-api/internal/application/dto"
	appinventory "github.com/jhoicas/despensa-api/internal/application/inventory"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
)

const defaultHorizonDays = 30

// StatsHandler maneja los endpoints de lectura derivada: brecha de consumo y
// pronóstico de reposición.
type StatsHandler struct {
	gap      *usecase.GapUseCase
	forecast *appinventory.ForecastUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(gap *usecase.GapUseCase, forecast *appinventory.ForecastUseCase) *StatsHandler {
	return &StatsHandler{gap: gap, forecast: forecast}
}

// GapSummary godoc
// @Summary      Estadísticas de brecha de consumo de la flota
// @Description  Promedio de brecha sobre los ítems con línea base, conteo de
//
//	brechas > 50 y lista de brechas >= 75 descendente.
//
// @Tags         stats
// @Produce      json
// @Success      200  {object}  dto.GapSummaryDTO
// @Router       /api/gap/summary [get]
func (h *StatsHandler) GapSummary(c *fiber.Ctx) error {
	summary, err := h.gap.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}

// Forecast godoc
// @Summary      Pronóstico de reposición dentro del horizonte
// @Description  Ítems cuya fecha proyectada de agotamiento cae dentro de
//
//	horizon_days, ascendente por fecha, con recomendación EOQ.
//
// @Tags         stats
// @Produce      json
// @Param        horizon_days  query  int  false  "Horizonte en días (default 30)"
// @Success      200  {object}  dto.ForecastResponse
// @Router       /api/forecast [get]
func (h *StatsHandler) Forecast(c *fiber.Ctx) error {
	horizon := c.QueryInt("horizon_days", defaultHorizonDays)
	if horizon <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "horizon_days debe ser > 0"})
	}
	resp, err := h.forecast.Forecast(horizon)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(resp)
}
