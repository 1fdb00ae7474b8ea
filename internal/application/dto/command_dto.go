package dto

import "github.com/shopspring/decimal"

// Comandos de mutación de cantidad que emiten los colaboradores externos
// (POS simulado, parser de voz, decodificador de escaneo). El motor los recibe
// ya parseados; aquí no hay protocolo POS ni reconocimiento real.

// SaleCommandRequest deducción por venta: coincidencia por nombre + uso estimado.
type SaleCommandRequest struct {
	ItemName string          `json:"item_name"`
	Quantity decimal.Decimal `json:"quantity"`
}

// VoiceCommandRequest comando de voz parseado: acción + palabra clave + cantidad.
type VoiceCommandRequest struct {
	Action   string          `json:"action"` // "add" | "subtract"
	Keyword  string          `json:"keyword"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ScanCommandRequest resultado de decodificar un escaneo: tipo de contenedor +
// nivel de llenado + grano. El peso por contenedor se estima con el convertidor
// de densidades y se crea un spec de ítem inicial.
type ScanCommandRequest struct {
	ContainerType string           `json:"container_type"`
	FillPercent   float64          `json:"fill_percent"`
	GoodName      string           `json:"good_name"`
	CostPerUnit   decimal.Decimal  `json:"cost_per_unit"`
	MinimumStock  *decimal.Decimal `json:"minimum_stock,omitempty"`
	Supplier      string           `json:"supplier,omitempty"`
	Location      string           `json:"location,omitempty"`
}
