package usecase_test

import (
	"testing"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
	"github.com/jhoicas/despensa-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedGapFleet arma una flota con brechas conocidas:
//
//	Rice:   12 -> 8  de 12  => 33.33
//	Flour:  10 -> 2  de 10  => 80.00
//	Sugar:   8 -> 2  de  8  => 75.00
//	Milk:   recién creado   => 0.00
func seedGapFleet(t *testing.T) (*usecase.ItemUseCase, *usecase.GapUseCase) {
	t.Helper()
	repo := memory.NewItemRepository()
	itemUC := usecase.NewItemUseCase(repo)

	fleet := []struct {
		name     string
		initial  float64
		current  float64
		cost     float64
	}{
		{"White Rice", 12, 8, 18.5},
		{"All-Purpose Flour", 10, 2, 5},
		{"Azúcar", 8, 2, 4},
		{"Whole Milk", 6, 6, 3.2},
	}
	for _, f := range fleet {
		created, err := itemUC.Create(dto.CreateItemRequest{
			Name: f.name, Category: "Dry Goods", Quantity: dec(f.initial), CostPerUnit: dec(f.cost),
		})
		require.NoError(t, err)
		if f.current != f.initial {
			qty := dec(f.current)
			_, err = itemUC.Update(created.ID, dto.UpdateItemRequest{Quantity: &qty})
			require.NoError(t, err)
		}
	}
	return itemUC, usecase.NewGapUseCase(repo)
}

func TestSummary_PromedioSoloSobreBrechasDefinidas(t *testing.T) {
	_, gapUC := seedGapFleet(t)

	summary, err := gapUC.Summary()
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TrackedItems)
	// (33.33 + 80 + 75 + 0) / 4 = 47.08
	assert.True(t, summary.AverageGap.Equal(dec(47.08)),
		"promedio esperado 47.08, obtuvo %s", summary.AverageGap)
}

func TestSummary_ConteoDeBrechasAltasEsEstrictamenteMayorA50(t *testing.T) {
	_, gapUC := seedGapFleet(t)

	summary, err := gapUC.Summary()
	require.NoError(t, err)

	// Solo Flour (80) y Sugar (75) superan 50; Rice (33.33) no.
	assert.Equal(t, 2, summary.HighGapItems)
}

func TestSummary_CriticasOrdenadasDescendente(t *testing.T) {
	_, gapUC := seedGapFleet(t)

	summary, err := gapUC.Summary()
	require.NoError(t, err)

	require.Len(t, summary.CriticalGapItems, 2, "75 es inclusivo en el corte crítico")
	assert.Equal(t, "All-Purpose Flour", summary.CriticalGapItems[0].Name)
	assert.Equal(t, "Azúcar", summary.CriticalGapItems[1].Name)
	assert.True(t, summary.CriticalGapItems[0].GapPercentage.Equal(dec(80)))
	assert.True(t, summary.CriticalGapItems[1].GapPercentage.Equal(dec(75)))
}

func TestSummary_PerdidaDeValorACostoActual(t *testing.T) {
	_, gapUC := seedGapFleet(t)

	summary, err := gapUC.Summary()
	require.NoError(t, err)

	// Rice (12-8)*18.5 + Flour (10-2)*5 + Sugar (8-2)*4 + Milk 0 = 74 + 40 + 24
	assert.True(t, summary.TotalValueLoss.Equal(dec(138)),
		"pérdida esperada 138, obtuvo %s", summary.TotalValueLoss)
}

func TestSummary_FlotaVaciaDevuelveCeros(t *testing.T) {
	repo := memory.NewItemRepository()
	gapUC := usecase.NewGapUseCase(repo)

	summary, err := gapUC.Summary()
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TrackedItems)
	assert.True(t, summary.AverageGap.IsZero())
	assert.Empty(t, summary.CriticalGapItems)
}

func TestSummary_ItemsSinBaselineQuedanFuera(t *testing.T) {
	repo := memory.NewItemRepository()
	itemUC := usecase.NewItemUseCase(repo)
	gapUC := usecase.NewGapUseCase(repo)

	// Un ítem creado con cantidad 0 no tiene brecha definida.
	_, err := itemUC.Create(dto.CreateItemRequest{Name: "Pending Delivery", Quantity: dec(0)})
	require.NoError(t, err)

	summary, err := gapUC.Summary()
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TrackedItems)
}
