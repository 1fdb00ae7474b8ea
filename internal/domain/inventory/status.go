package inventory

import (
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// StockStatus estado de stock evaluado al momento de la lectura. Nunca se
// persiste: es función pura de Quantity vs MinimumStock.
type StockStatus string

const (
	StatusAdequate   StockStatus = "adequate"
	StatusLow        StockStatus = "low"
	StatusCritical   StockStatus = "critical"
	StatusOutOfStock StockStatus = "out_of_stock"
)

var half = decimal.NewFromFloat(0.5)

// Status clasifica el stock actual de un ítem:
//
//	quantity == 0                    -> out_of_stock
//	quantity <= minimumStock * 0.5   -> critical
//	quantity <= minimumStock         -> low
//	resto                            -> adequate
//
// Con MinimumStock == 0 todo ítem con stock es adequate.
func Status(it *entity.Item) StockStatus {
	if !it.Quantity.GreaterThan(decimal.Zero) {
		return StatusOutOfStock
	}
	if it.MinimumStock.GreaterThan(decimal.Zero) {
		if !it.Quantity.GreaterThan(it.MinimumStock.Mul(half)) {
			return StatusCritical
		}
		if !it.Quantity.GreaterThan(it.MinimumStock) {
			return StatusLow
		}
	}
	return StatusAdequate
}
