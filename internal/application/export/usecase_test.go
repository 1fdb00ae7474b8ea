package export_test

import (
	"testing"
	"time"

	"github.com/jhoicas/despensa-api/internal/application/export"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// seedExportRepo dos ítems: uno con todos los campos (incl. vencimiento) y uno
// mínimo sin vencimiento. "White Rice" < "Whole Milk" en orden alfabético.
func seedExportRepo(t *testing.T) *memory.ItemRepository {
	t.Helper()
	repo := memory.NewItemRepository()

	expira := time.Date(2026, 9, 30, 18, 45, 0, 0, time.UTC)
	require.NoError(t, repo.Create(&entity.Item{
		ID:                 "milk-1",
		Name:               "Whole Milk",
		Category:           entity.CategoryDairy,
		Supplier:           "Lechería Local",
		Location:           "Walk-in",
		Unit:               "gallons",
		Quantity:           dec(6),
		CostPerUnit:        dec(3.2),
		WeightPerContainer: dec(8.6),
		TotalValue:         dec(19.2),
		TotalWeight:        dec(51.6),
		MinimumStock:       dec(2),
		ExpirationDate:     &expira,
		UpdatedAt:          time.Date(2026, 8, 15, 23, 59, 59, 0, time.UTC),
	}))
	require.NoError(t, repo.Create(&entity.Item{
		ID:        "rice-1",
		Name:      "White Rice",
		Category:  entity.CategoryDryGoods,
		Quantity:  dec(12),
		UpdatedAt: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
	}))
	return repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro plano de export
// ──────────────────────────────────────────────────────────────────────────────

func TestRecords_OrdenEstablePorNombre(t *testing.T) {
	uc := export.NewExportUseCase(seedExportRepo(t), nil, nil)

	records, err := uc.Records()
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "White Rice", records[0].Name)
	assert.Equal(t, "Whole Milk", records[1].Name)
}

func TestRecords_MapeoDeCamposYFechasCalendario(t *testing.T) {
	uc := export.NewExportUseCase(seedExportRepo(t), nil, nil)

	records, err := uc.Records()
	require.NoError(t, err)
	require.Len(t, records, 2)

	milk := records[1]
	assert.Equal(t, "Whole Milk", milk.Name)
	assert.Equal(t, "Dairy", milk.Category)
	assert.Equal(t, "Lechería Local", milk.Supplier)
	assert.Equal(t, "Walk-in", milk.Location)
	assert.Equal(t, "gallons", milk.Unit)
	assert.True(t, milk.Quantity.Equal(dec(6)))
	assert.True(t, milk.WeightPerContainer.Equal(dec(8.6)))
	assert.True(t, milk.TotalWeight.Equal(dec(51.6)))
	assert.True(t, milk.CostPerUnit.Equal(dec(3.2)))
	assert.True(t, milk.TotalValue.Equal(dec(19.2)))
	assert.True(t, milk.MinimumStock.Equal(dec(2)))

	// Las fechas salen como fecha calendario, sin hora ni zona.
	assert.Equal(t, "2026-09-30", milk.ExpirationDate)
	assert.Equal(t, "2026-08-15", milk.LastUpdated)
}

func TestRecords_SinVencimientoQuedaVacio(t *testing.T) {
	uc := export.NewExportUseCase(seedExportRepo(t), nil, nil)

	records, err := uc.Records()
	require.NoError(t, err)

	rice := records[0]
	assert.Equal(t, "White Rice", rice.Name)
	assert.Empty(t, rice.ExpirationDate, "sin fecha de vencimiento el campo va vacío")
	assert.Equal(t, "2026-08-20", rice.LastUpdated)
}
