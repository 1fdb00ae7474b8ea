package dto

import "github.com/shopspring/decimal"

// ItemExportRecord registro plano por ítem para exportación a archivo/reporte.
// Los campos de fecha van como fecha calendario (2006-01-02), no como timestamp:
// es el formato que esperan los consumidores de planillas.
type ItemExportRecord struct {
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	Quantity           decimal.Decimal `json:"quantity"`
	WeightPerContainer decimal.Decimal `json:"weight_per_container"`
	TotalWeight        decimal.Decimal `json:"total_weight"`
	Unit               string          `json:"unit"`
	CostPerUnit        decimal.Decimal `json:"cost_per_unit"`
	TotalValue         decimal.Decimal `json:"total_value"`
	Supplier           string          `json:"supplier"`
	Location           string          `json:"location"`
	ExpirationDate     string          `json:"expiration_date"` // 2006-01-02, vacío si no aplica
	MinimumStock       decimal.Decimal `json:"minimum_stock"`
	LastUpdated        string          `json:"last_updated"` // 2006-01-02
}
