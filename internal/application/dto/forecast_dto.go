package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ForecastItemDTO proyección de agotamiento y recomendación EOQ de un ítem.
// Se calcula fresco en cada petición; no hay estado de pronóstico persistido.
type ForecastItemDTO struct {
	ItemID              string          `json:"item_id"`
	Name                string          `json:"name"`
	Category            string          `json:"category"`
	Quantity            decimal.Decimal `json:"quantity"`
	MinimumStock        decimal.Decimal `json:"minimum_stock"`
	StockStatus         string          `json:"stock_status"`
	DailyConsumption    float64         `json:"daily_consumption"`
	DaysUntilEmpty      int             `json:"days_until_empty"`
	PredictedRunOutDate time.Time       `json:"predicted_run_out_date"`
	Urgency             string          `json:"urgency"` // critical | high | medium | low
	EOQ                 float64         `json:"eoq"`
	RecommendedOrderQty decimal.Decimal `json:"recommended_order_qty"`
	EstimatedCost       decimal.Decimal `json:"estimated_cost"`
	Confidence          float64         `json:"confidence"` // [0, 0.98], informativo
}

// ForecastResponse lista de pronósticos dentro del horizonte pedido, ascendente
// por fecha de agotamiento. La selección de qué materializar en órdenes de
// compra es del colaborador externo.
type ForecastResponse struct {
	HorizonDays int               `json:"horizon_days"`
	GeneratedAt time.Time         `json:"generated_at"`
	Items       []ForecastItemDTO `json:"items"`
}
