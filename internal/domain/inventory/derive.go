package inventory

import (
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Recalculate recalcula los campos derivados del ítem como un solo paso lógico:
//
//	TotalValue  = Quantity * CostPerUnit
//	TotalWeight = Quantity * WeightPerContainer
//	GapPercentage = clamp(0, 100, (BeginningInventory - Quantity) / BeginningInventory * 100)
//
// La brecha solo está definida si BeginningInventory está definido y > 0; en
// cualquier otro caso queda nil. Llamar después de TODA mutación: ningún
// estado intermedio entre cantidad y derivados debe ser observable.
func Recalculate(it *entity.Item) {
	it.TotalValue = it.Quantity.Mul(it.CostPerUnit)
	it.TotalWeight = it.Quantity.Mul(it.WeightPerContainer)

	if it.BeginningInventory == nil || !it.BeginningInventory.GreaterThan(decimal.Zero) {
		it.GapPercentage = nil
		return
	}
	gap := it.BeginningInventory.Sub(it.Quantity).
		Div(*it.BeginningInventory).
		Mul(hundred).
		Round(2)
	if gap.IsNegative() {
		gap = decimal.Zero
	}
	if gap.GreaterThan(hundred) {
		gap = hundred
	}
	it.GapPercentage = &gap
}

// ValueLoss valor monetario consumido desde el último reset de línea base:
// (BeginningInventory - Quantity) * CostPerUnit, usando el costo ACTUAL para
// ambos términos (simplificación documentada: no se rastrea el costo histórico).
// Devuelve cero si no hay línea base o si la cantidad creció sobre la base.
func ValueLoss(it *entity.Item) decimal.Decimal {
	if it.BeginningInventory == nil {
		return decimal.Zero
	}
	loss := it.BeginningInventory.Sub(it.Quantity).Mul(it.CostPerUnit)
	if loss.IsNegative() {
		return decimal.Zero
	}
	return loss
}
