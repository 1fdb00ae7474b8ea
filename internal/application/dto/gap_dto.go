package dto

import "github.com/shopspring/decimal"

// GapItemDTO ítem con brecha de consumo definida, para las vistas de atención
// urgente.
type GapItemDTO struct {
	ItemID             string          `json:"item_id"`
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	Quantity           decimal.Decimal `json:"quantity"`
	BeginningInventory decimal.Decimal `json:"beginning_inventory"`
	GapPercentage      decimal.Decimal `json:"gap_percentage"`
	ValueLoss          decimal.Decimal `json:"value_loss"` // a costo unitario actual
}

// GapSummaryDTO estadísticas de brecha sobre toda la flota de ítems.
type GapSummaryDTO struct {
	AverageGap       decimal.Decimal `json:"average_gap"`        // media sobre brechas definidas; sin ítems => 0
	HighGapItems     int             `json:"high_gap_items"`     // brecha > 50
	CriticalGapItems []GapItemDTO    `json:"critical_gap_items"` // brecha >= 75, descendente
	TotalValueLoss   decimal.Decimal `json:"total_value_loss"`
	TrackedItems     int             `json:"tracked_items"` // ítems con brecha definida
}
