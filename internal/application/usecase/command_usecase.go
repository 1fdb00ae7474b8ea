package usecase

import (
	"fmt"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/conversion"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/pkg/fold"
	"github.com/shopspring/decimal"
)

// CommandUseCase adapta los comandos de mutación de colaboradores externos
// (venta POS simulada, comando de voz parseado, escaneo decodificado) a
// operaciones del ItemUseCase. La coincidencia por nombre pliega mayúsculas y
// diacríticos: "Azúcar" encuentra "azucar".
type CommandUseCase struct {
	items     *ItemUseCase
	converter *conversion.Converter
}

// NewCommandUseCase construye el caso de uso de comandos.
func NewCommandUseCase(items *ItemUseCase, converter *conversion.Converter) *CommandUseCase {
	return &CommandUseCase{items: items, converter: converter}
}

// ApplySaleDeduction deduce el uso estimado de una venta. La cantidad se
// recorta a 0 si la deducción supera el stock actual; nunca falla por eso.
func (uc *CommandUseCase) ApplySaleDeduction(in dto.SaleCommandRequest) (*dto.ItemResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: quantity debe ser > 0", domain.ErrInvalidInput)
	}
	item, err := uc.matchByName(in.ItemName)
	if err != nil {
		return nil, err
	}
	newQty := item.Quantity.Sub(in.Quantity)
	return uc.items.Update(item.ID, dto.UpdateItemRequest{Quantity: &newQty})
}

// ApplyVoiceCommand aplica un comando de voz ya parseado (add | subtract).
func (uc *CommandUseCase) ApplyVoiceCommand(in dto.VoiceCommandRequest) (*dto.ItemResponse, error) {
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: quantity debe ser > 0", domain.ErrInvalidInput)
	}
	item, err := uc.matchByName(in.Keyword)
	if err != nil {
		return nil, err
	}
	var newQty decimal.Decimal
	switch in.Action {
	case "add":
		newQty = item.Quantity.Add(in.Quantity)
	case "subtract":
		newQty = item.Quantity.Sub(in.Quantity)
	default:
		return nil, fmt.Errorf("%w: action debe ser add o subtract", domain.ErrInvalidInput)
	}
	return uc.items.Update(item.ID, dto.UpdateItemRequest{Quantity: &newQty})
}

// ApplyScan convierte un escaneo decodificado (contenedor + % de llenado +
// grano) en un spec de ítem inicial: el peso por contenedor se estima con la
// tabla de densidades y el ítem nace como granel seco con cantidad 1.
func (uc *CommandUseCase) ApplyScan(in dto.ScanCommandRequest) (*dto.ItemResponse, error) {
	if in.GoodName == "" {
		return nil, fmt.Errorf("%w: good_name requerido", domain.ErrInvalidInput)
	}
	if in.FillPercent < 0 || in.FillPercent > 100 {
		return nil, fmt.Errorf("%w: fill_percent fuera de [0, 100]", domain.ErrInvalidInput)
	}
	weight := uc.converter.EstimateWeight(in.ContainerType, in.FillPercent, in.GoodName)
	density := decimal.NewFromFloat(uc.converter.Density(in.GoodName))

	minStock := decimal.NewFromInt(1)
	if in.MinimumStock != nil && !in.MinimumStock.IsNegative() {
		minStock = *in.MinimumStock
	}
	return uc.items.Create(dto.CreateItemRequest{
		Name:               in.GoodName,
		Category:           string(entity.CategoryDryGoods),
		Supplier:           in.Supplier,
		Location:           in.Location,
		Unit:               "containers",
		ContainerType:      in.ContainerType,
		Quantity:           decimal.NewFromInt(1),
		CostPerUnit:        in.CostPerUnit,
		WeightPerContainer: decimal.NewFromFloat(weight).Round(2),
		MinimumStock:       minStock,
		IsDryGood:          true,
		DensityLbsPerCup:   &density,
	})
}

// matchByName busca el ítem cuyo nombre plegado coincide con la palabra clave.
// Preferencia: igualdad exacta plegada; si no, la primera contención.
func (uc *CommandUseCase) matchByName(keyword string) (*entity.Item, error) {
	if keyword == "" {
		return nil, fmt.Errorf("%w: nombre vacío", domain.ErrInvalidInput)
	}
	items, err := uc.items.repo.List()
	if err != nil {
		return nil, err
	}
	var partial *entity.Item
	for _, it := range items {
		if fold.Fold(it.Name) == fold.Fold(keyword) {
			return it, nil
		}
		if partial == nil && fold.Matches(it.Name, keyword) {
			partial = it
		}
	}
	if partial != nil {
		return partial, nil
	}
	return nil, domain.ErrNoMatch
}
