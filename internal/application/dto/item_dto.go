package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest body para POST /api/items. Quantity se convierte en la
// línea base inicial (beginning_inventory) del ítem.
type CreateItemRequest struct {
	Name               string           `json:"name"`
	Category           string           `json:"category"`
	Supplier           string           `json:"supplier,omitempty"`
	Location           string           `json:"location,omitempty"`
	Unit               string           `json:"unit,omitempty"`
	ContainerType      string           `json:"container_type,omitempty"`
	Quantity           decimal.Decimal  `json:"quantity"`
	CostPerUnit        decimal.Decimal  `json:"cost_per_unit"`
	WeightPerContainer decimal.Decimal  `json:"weight_per_container"`
	MinimumStock       decimal.Decimal  `json:"minimum_stock"`
	IsDryGood          bool             `json:"is_dry_good"`
	DensityLbsPerCup   *decimal.Decimal `json:"density_lbs_per_cup,omitempty"`
	ExpirationDate     *time.Time       `json:"expiration_date,omitempty"`
}

// UpdateItemRequest body para PUT /api/items/:id. Campos nil no se tocan.
// beginning_inventory NO es actualizable aquí: solo cambia vía reset explícito.
type UpdateItemRequest struct {
	Name               *string          `json:"name,omitempty"`
	Category           *string          `json:"category,omitempty"`
	Supplier           *string          `json:"supplier,omitempty"`
	Location           *string          `json:"location,omitempty"`
	Unit               *string          `json:"unit,omitempty"`
	ContainerType      *string          `json:"container_type,omitempty"`
	Quantity           *decimal.Decimal `json:"quantity,omitempty"`
	CostPerUnit        *decimal.Decimal `json:"cost_per_unit,omitempty"`
	WeightPerContainer *decimal.Decimal `json:"weight_per_container,omitempty"`
	MinimumStock       *decimal.Decimal `json:"minimum_stock,omitempty"`
	IsDryGood          *bool            `json:"is_dry_good,omitempty"`
	DensityLbsPerCup   *decimal.Decimal `json:"density_lbs_per_cup,omitempty"`
	ExpirationDate     *time.Time       `json:"expiration_date,omitempty"`
}

// ItemResponse ítem con todos los campos derivados para las vistas de tarjetas
// y widgets de estadísticas.
type ItemResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Category           string           `json:"category"`
	Supplier           string           `json:"supplier,omitempty"`
	Location           string           `json:"location,omitempty"`
	Unit               string           `json:"unit,omitempty"`
	ContainerType      string           `json:"container_type,omitempty"`
	Quantity           decimal.Decimal  `json:"quantity"`
	CostPerUnit        decimal.Decimal  `json:"cost_per_unit"`
	WeightPerContainer decimal.Decimal  `json:"weight_per_container"`
	MinimumStock       decimal.Decimal  `json:"minimum_stock"`
	TotalValue         decimal.Decimal  `json:"total_value"`
	TotalWeight        decimal.Decimal  `json:"total_weight"`
	BeginningInventory *decimal.Decimal `json:"beginning_inventory,omitempty"`
	GapPercentage      *decimal.Decimal `json:"gap_percentage,omitempty"`
	LastReset          *time.Time       `json:"last_reset,omitempty"`
	IsDryGood          bool             `json:"is_dry_good"`
	DensityLbsPerCup   *decimal.Decimal `json:"density_lbs_per_cup,omitempty"`
	ExpirationDate     *time.Time       `json:"expiration_date,omitempty"`
	StockStatus        string           `json:"stock_status"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// ItemListResponse listado con totales de flota para dashboards.
type ItemListResponse struct {
	Items       []ItemResponse  `json:"items"`
	Total       int             `json:"total"`
	TotalValue  decimal.Decimal `json:"total_value"`
	TotalWeight decimal.Decimal `json:"total_weight"`
}

// BulkImportRequest body para POST /api/items/import.
type BulkImportRequest struct {
	Items []CreateItemRequest `json:"items"`
}

// SkippedRow fila malformada omitida durante un import masivo.
type SkippedRow struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// BulkImportResult resultado de un import: las filas malformadas se omiten una
// a una, nunca abortan el lote completo.
type BulkImportResult struct {
	Imported int            `json:"imported"`
	Skipped  []SkippedRow   `json:"skipped,omitempty"`
	Items    []ItemResponse `json:"items"`
}
