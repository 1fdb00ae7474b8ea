package usecase_test

import (
	"testing"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/conversion"
	"github.com/jhoicas/despensa-api/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommandUC() (*usecase.ItemUseCase, *usecase.CommandUseCase) {
	itemUC := usecase.NewItemUseCase(memory.NewItemRepository())
	return itemUC, usecase.NewCommandUseCase(itemUC, conversion.NewConverter())
}

// ──────────────────────────────────────────────────────────────────────────────
// Deducción de venta POS
// ──────────────────────────────────────────────────────────────────────────────

func TestApplySaleDeduction_CoincideConTildesYMayusculas(t *testing.T) {
	itemUC, cmdUC := newCommandUC()
	_, err := itemUC.Create(dto.CreateItemRequest{
		Name: "Azúcar Morena", Category: "Dry Goods", Quantity: dec(6), CostPerUnit: dec(9),
	})
	require.NoError(t, err)

	// El POS manda el nombre sin tilde y en minúsculas.
	updated, err := cmdUC.ApplySaleDeduction(dto.SaleCommandRequest{
		ItemName: "azucar morena", Quantity: dec(2),
	})
	require.NoError(t, err)
	assert.True(t, updated.Quantity.Equal(dec(4)))
}

func TestApplySaleDeduction_RecortaACeroNuncaNegativo(t *testing.T) {
	itemUC, cmdUC := newCommandUC()
	_, err := itemUC.Create(dto.CreateItemRequest{Name: "Olive Oil", Quantity: dec(1)})
	require.NoError(t, err)

	updated, err := cmdUC.ApplySaleDeduction(dto.SaleCommandRequest{
		ItemName: "olive oil", Quantity: dec(5),
	})
	require.NoError(t, err)
	assert.True(t, updated.Quantity.Equal(decimal.Zero),
		"deducir más que el stock recorta a 0, nunca falla ni queda negativo")
}

func TestApplySaleDeduction_SinCoincidenciaEsNoMatch(t *testing.T) {
	_, cmdUC := newCommandUC()
	_, err := cmdUC.ApplySaleDeduction(dto.SaleCommandRequest{ItemName: "caviar", Quantity: dec(1)})
	assert.ErrorIs(t, err, domain.ErrNoMatch)
}

func TestApplySaleDeduction_CantidadNoPositivaEsInvalida(t *testing.T) {
	_, cmdUC := newCommandUC()
	_, err := cmdUC.ApplySaleDeduction(dto.SaleCommandRequest{ItemName: "rice", Quantity: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Comando de voz
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyVoiceCommand_AddYSubtract(t *testing.T) {
	itemUC, cmdUC := newCommandUC()
	_, err := itemUC.Create(dto.CreateItemRequest{Name: "White Rice", Quantity: dec(10)})
	require.NoError(t, err)

	added, err := cmdUC.ApplyVoiceCommand(dto.VoiceCommandRequest{
		Action: "add", Keyword: "rice", Quantity: dec(3),
	})
	require.NoError(t, err)
	assert.True(t, added.Quantity.Equal(dec(13)))

	subtracted, err := cmdUC.ApplyVoiceCommand(dto.VoiceCommandRequest{
		Action: "subtract", Keyword: "rice", Quantity: dec(5),
	})
	require.NoError(t, err)
	assert.True(t, subtracted.Quantity.Equal(dec(8)))
}

func TestApplyVoiceCommand_AccionDesconocidaEsInvalida(t *testing.T) {
	itemUC, cmdUC := newCommandUC()
	_, err := itemUC.Create(dto.CreateItemRequest{Name: "White Rice", Quantity: dec(10)})
	require.NoError(t, err)

	_, err = cmdUC.ApplyVoiceCommand(dto.VoiceCommandRequest{
		Action: "multiply", Keyword: "rice", Quantity: dec(2),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta por escaneo
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyScan_CreaItemConPesoEstimado(t *testing.T) {
	_, cmdUC := newCommandUC()

	item, err := cmdUC.ApplyScan(dto.ScanCommandRequest{
		ContainerType: "large bin",
		FillPercent:   80,
		GoodName:      "White Rice",
		CostPerUnit:   dec(18.5),
	})
	require.NoError(t, err)

	assert.Equal(t, "White Rice", item.Name)
	assert.Equal(t, "Dry Goods", item.Category)
	assert.True(t, item.IsDryGood)
	assert.True(t, item.Quantity.Equal(dec(1)), "el escaneo da de alta un contenedor")
	// 60 cups * 0.8 * 0.41 lbs/cup = 19.68 lbs
	assert.True(t, item.WeightPerContainer.Equal(dec(19.68)),
		"peso estimado esperado 19.68, obtuvo %s", item.WeightPerContainer)
	require.NotNil(t, item.DensityLbsPerCup)
	assert.True(t, item.DensityLbsPerCup.Equal(dec(0.41)))
}

func TestApplyScan_FillPercentFueraDeRango(t *testing.T) {
	_, cmdUC := newCommandUC()
	_, err := cmdUC.ApplyScan(dto.ScanCommandRequest{GoodName: "Rice", FillPercent: 120})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
