// Package inventory contiene el pronosticador de reposición: proyección de
// agotamiento por ítem y recomendación de orden basada en EOQ (Economic Order
// Quantity). El modelo de consumo es heurístico por tablas — tasas base por
// clase, multiplicadores por categoría y un factor estacional sinusoidal — no
// un modelo ajustado a historia real de consumo.
package inventory

import (
	"math"
	"sort"
	"time"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	dominv "github.com/jhoicas/despensa-api/internal/domain/inventory"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Config constantes del pronosticador. Se cargan una vez al inicio desde
// pkg/config y no mutan en runtime.
type Config struct {
	BaseRateDryGood     float64
	BaseRatePerishable  float64
	DemandBoost         float64
	SeasonalAmplitude   float64
	UrgencyCriticalDays int
	UrgencyHighDays     int
	UrgencyMediumDays   int
	OrderingCost        float64
	HoldingCostRate     float64
	SafetyMultiplier    float64
}

// categoryMultipliers tabla canónica de multiplicadores de consumo por
// categoría (default 1.0 para las no listadas). El sistema original definía
// dos tablas con valores distintos según la vista; esta es la única versión
// que rige aquí (ver DESIGN.md).
var categoryMultipliers = map[entity.Category]float64{
	entity.CategoryProduce:    1.5,
	entity.CategorySeafood:    1.4,
	entity.CategoryDairy:      1.3,
	entity.CategoryMeat:       1.2,
	entity.CategoryBeverages:  1.1,
	entity.CategoryDryGoods:   0.8,
	entity.CategoryFrozen:     0.7,
	entity.CategoryCondiments: 0.6,
	entity.CategorySpices:     0.4,
}

// ForecastUseCase calcula pronósticos frescos en cada petición sobre un
// snapshot inmutable de ítems; no persiste estado de pronóstico.
type ForecastUseCase struct {
	repo repository.ItemRepository
	cfg  Config
	now  func() time.Time
}

// NewForecastUseCase construye el pronosticador.
func NewForecastUseCase(repo repository.ItemRepository, cfg Config) *ForecastUseCase {
	return &ForecastUseCase{repo: repo, cfg: cfg, now: func() time.Time { return time.Now().UTC() }}
}

// Forecast devuelve los ítems cuya fecha proyectada de agotamiento cae dentro
// del horizonte (días), ascendente por fecha. Ítems sin consumo proyectado
// (tasa 0) quedan fuera de los pronósticos acotados en el tiempo.
func (uc *ForecastUseCase) Forecast(horizonDays int) (*dto.ForecastResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	now := uc.now()
	resp := &dto.ForecastResponse{
		HorizonDays: horizonDays,
		GeneratedAt: now,
		Items:       []dto.ForecastItemDTO{},
	}
	for _, item := range items {
		f, ok := uc.forecastItem(item, now)
		if !ok || f.DaysUntilEmpty > horizonDays {
			continue
		}
		resp.Items = append(resp.Items, f)
	}
	sort.Slice(resp.Items, func(i, j int) bool {
		return resp.Items[i].PredictedRunOutDate.Before(resp.Items[j].PredictedRunOutDate)
	})
	return resp, nil
}

// ForecastItem pronóstico individual (sin filtro de horizonte). ok=false si el
// ítem no tiene agotamiento proyectado (tasa de consumo no positiva).
func (uc *ForecastUseCase) ForecastItem(id string) (*dto.ForecastItemDTO, bool, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, false, err
	}
	if item == nil {
		return nil, false, nil
	}
	f, ok := uc.forecastItem(item, uc.now())
	if !ok {
		return nil, false, nil
	}
	return &f, true, nil
}

func (uc *ForecastUseCase) forecastItem(item *entity.Item, now time.Time) (dto.ForecastItemDTO, bool) {
	rate := uc.dailyConsumption(item, now)
	if rate <= 0 {
		return dto.ForecastItemDTO{}, false
	}

	qty := item.Quantity.InexactFloat64()
	days := int(math.Floor(qty / rate))
	runOut := now.AddDate(0, 0, days)

	eoq, recommended := uc.recommendOrder(item, rate)

	return dto.ForecastItemDTO{
		ItemID:              item.ID,
		Name:                item.Name,
		Category:            string(item.Category),
		Quantity:            item.Quantity,
		MinimumStock:        item.MinimumStock,
		StockStatus:         string(dominv.Status(item)),
		DailyConsumption:    rate,
		DaysUntilEmpty:      days,
		PredictedRunOutDate: runOut,
		Urgency:             uc.urgency(days),
		EOQ:                 eoq,
		RecommendedOrderQty: recommended,
		EstimatedCost:       recommended.Mul(item.CostPerUnit),
		Confidence:          uc.confidence(item),
	}, true
}

// dailyConsumption tasa diaria estimada:
// baseRate(clase) * categoryMultiplier * seasonalFactor * demandBoost.
func (uc *ForecastUseCase) dailyConsumption(item *entity.Item, now time.Time) float64 {
	base := uc.cfg.BaseRatePerishable
	if item.IsDryGood {
		base = uc.cfg.BaseRateDryGood
	}
	mult, ok := categoryMultipliers[item.Category]
	if !ok {
		mult = 1.0
	}
	return base * mult * uc.seasonalFactor(now) * uc.cfg.DemandBoost
}

// seasonalFactor multiplicador periódico (período ~1 año) acotado a
// [1-amplitud, 1+amplitud]. Heurística, no ajustada a datos.
func (uc *ForecastUseCase) seasonalFactor(now time.Time) float64 {
	a := uc.cfg.SeasonalAmplitude
	f := 1 + a*math.Sin(2*math.Pi*float64(now.YearDay())/365)
	if f < 1-a {
		f = 1 - a
	}
	if f > 1+a {
		f = 1 + a
	}
	return f
}

// recommendOrder EOQ = sqrt(2 * demandaAnual * costoOrden / costoMantener),
// con guardia: demanda o costo de mantener no positivos saltan la raíz y caen
// al piso basado en minimumStock (nunca división por cero ni NaN).
// Recomendado = max(minimumStock * safetyMultiplier, round(EOQ)).
func (uc *ForecastUseCase) recommendOrder(item *entity.Item, dailyRate float64) (float64, decimal.Decimal) {
	annualDemand := dailyRate * 365
	holdingCost := item.CostPerUnit.InexactFloat64() * uc.cfg.HoldingCostRate

	var eoq float64
	if annualDemand > 0 && holdingCost > 0 {
		eoq = math.Sqrt(2 * annualDemand * uc.cfg.OrderingCost / holdingCost)
	}

	floor := item.MinimumStock.InexactFloat64() * uc.cfg.SafetyMultiplier
	recommended := math.Max(floor, math.Round(eoq))
	return eoq, decimal.NewFromFloat(recommended)
}

// urgency clasificación discreta por días hasta agotamiento. Los umbrales son
// constantes de configuración y se aplican igual en todos los puntos de
// llamada.
func (uc *ForecastUseCase) urgency(daysUntilEmpty int) string {
	switch {
	case daysUntilEmpty <= uc.cfg.UrgencyCriticalDays:
		return "critical"
	case daysUntilEmpty <= uc.cfg.UrgencyHighDays:
		return "high"
	case daysUntilEmpty <= uc.cfg.UrgencyMediumDays:
		return "medium"
	default:
		return "low"
	}
}

// confidence heurística informativa en [0, 0.98], creciente con el stock
// actual relativo al mínimo. No participa en ninguna decisión.
func (uc *ForecastUseCase) confidence(item *entity.Item) float64 {
	qty := item.Quantity.InexactFloat64()
	if qty <= 0 {
		return 0
	}
	min := item.MinimumStock.InexactFloat64()
	ratio := qty
	if min > 0 {
		ratio = qty / min
	}
	c := 0.5 + 0.12*ratio
	if c > 0.98 {
		c = 0.98
	}
	return math.Round(c*100) / 100
}
