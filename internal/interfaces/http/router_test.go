package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/export"
	appinventory "github.com/jhoicas/despensa-api/internal/application/inventory"
	"github.com/jhoicas/despensa-api/internal/application/usecase"
	"github.com/jhoicas/despensa-api/internal/domain/conversion"
	"github.com/jhoicas/despensa-api/internal/infrastructure/excel"
	"github.com/jhoicas/despensa-api/internal/infrastructure/memory"
	"github.com/jhoicas/despensa-api/internal/infrastructure/pdf"
	apihttp "github.com/jhoicas/despensa-api/internal/interfaces/http"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp monta la app completa sobre el repositorio en memoria.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	repo := memory.NewItemRepository()
	itemUC := usecase.NewItemUseCase(repo)
	converter := conversion.NewConverter()

	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		ItemUC:     itemUC,
		CommandUC:  usecase.NewCommandUseCase(itemUC, converter),
		GapUC:      usecase.NewGapUseCase(repo),
		ForecastUC: appinventory.NewForecastUseCase(repo, appinventory.Config{
			BaseRateDryGood:     0.3,
			BaseRatePerishable:  0.8,
			DemandBoost:         1,
			UrgencyCriticalDays: 3,
			UrgencyHighDays:     7,
			UrgencyMediumDays:   14,
			OrderingCost:        50,
			HoldingCostRate:     0.25,
			SafetyMultiplier:    3,
		}),
		ExportUC:  export.NewExportUseCase(repo, pdf.NewMarotoReportGenerator(), excel.NewExcelizeExporter()),
		Converter: converter,
	})
	return app
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func createRiceHTTP(t *testing.T, app *fiber.App) dto.ItemResponse {
	t.Helper()
	status, raw := doJSON(t, app, "POST", "/api/items/", map[string]any{
		"name":          "White Rice",
		"category":      "Dry Goods",
		"quantity":      12,
		"cost_per_unit": 18.5,
		"minimum_stock": 3,
		"is_dry_good":   true,
	})
	require.Equal(t, fiber.StatusCreated, status, "cuerpo: %s", raw)
	var item dto.ItemResponse
	require.NoError(t, json.Unmarshal(raw, &item))
	return item
}

func TestCreateItem_Retorna201ConDerivados(t *testing.T) {
	app := newTestApp(t)
	item := createRiceHTTP(t, app)

	assert.NotEmpty(t, item.ID)
	assert.True(t, item.TotalValue.Equal(dec(222)), "12 * 18.5 = 222")
	require.NotNil(t, item.BeginningInventory)
	assert.True(t, item.BeginningInventory.Equal(dec(12)))
	require.NotNil(t, item.GapPercentage)
	assert.True(t, item.GapPercentage.IsZero())
}

func TestCreateItem_ValidacionRetorna400(t *testing.T) {
	app := newTestApp(t)
	status, raw := doJSON(t, app, "POST", "/api/items/", map[string]any{
		"name": "", "quantity": 5,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "VALIDATION", errResp.Code)
}

func TestGetItem_Inexistente404(t *testing.T) {
	app := newTestApp(t)
	status, raw := doJSON(t, app, "GET", "/api/items/no-such-id", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &errResp))
	assert.Equal(t, "NOT_FOUND", errResp.Code)
}

func TestUpdateItem_ParcialRecalculaBrecha(t *testing.T) {
	app := newTestApp(t)
	item := createRiceHTTP(t, app)

	status, raw := doJSON(t, app, "PUT", "/api/items/"+item.ID, map[string]any{
		"quantity": 8,
	})
	require.Equal(t, fiber.StatusOK, status, "cuerpo: %s", raw)

	var updated dto.ItemResponse
	require.NoError(t, json.Unmarshal(raw, &updated))
	require.NotNil(t, updated.GapPercentage)
	assert.True(t, updated.GapPercentage.Equal(dec(33.33)),
		"brecha esperada 33.33, obtuvo %s", updated.GapPercentage)
	assert.Equal(t, "White Rice", updated.Name, "los campos ausentes no se tocan")
}

func TestUpdateItem_Inexistente404(t *testing.T) {
	app := newTestApp(t)
	status, _ := doJSON(t, app, "PUT", "/api/items/no-such-id", map[string]any{"quantity": 1})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDeleteItem_IdDesconocido204(t *testing.T) {
	app := newTestApp(t)
	status, _ := doJSON(t, app, "DELETE", "/api/items/no-such-id", nil)
	assert.Equal(t, fiber.StatusNoContent, status)
}

func TestResetBaseline_PorRuta(t *testing.T) {
	app := newTestApp(t)
	item := createRiceHTTP(t, app)

	status, raw := doJSON(t, app, "PUT", "/api/items/"+item.ID, map[string]any{"quantity": 8})
	require.Equal(t, fiber.StatusOK, status, "cuerpo: %s", raw)

	status, raw = doJSON(t, app, "POST", "/api/items/"+item.ID+"/reset-baseline", nil)
	require.Equal(t, fiber.StatusOK, status, "cuerpo: %s", raw)

	var reset dto.ItemResponse
	require.NoError(t, json.Unmarshal(raw, &reset))
	require.NotNil(t, reset.BeginningInventory)
	assert.True(t, reset.BeginningInventory.Equal(dec(8)))
	require.NotNil(t, reset.GapPercentage)
	assert.True(t, reset.GapPercentage.IsZero())
	assert.NotNil(t, reset.LastReset)
}

func TestBulkImport_FilasMalformadasSeOmiten(t *testing.T) {
	app := newTestApp(t)
	status, raw := doJSON(t, app, "POST", "/api/items/import", map[string]any{
		"items": []map[string]any{
			{"name": "Oats", "category": "Dry Goods", "quantity": 4},
			{"name": "", "quantity": 4},
		},
	})
	require.Equal(t, fiber.StatusOK, status, "cuerpo: %s", raw)

	var result dto.BulkImportResult
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 1, result.Skipped[0].Index)
}

func TestGapSummary_Endpoint(t *testing.T) {
	app := newTestApp(t)
	item := createRiceHTTP(t, app)

	status, raw := doJSON(t, app, "PUT", "/api/items/"+item.ID, map[string]any{"quantity": 8})
	require.Equal(t, fiber.StatusOK, status, "cuerpo: %s", raw)

	status, raw = doJSON(t, app, "GET", "/api/gap/summary", nil)
	require.Equal(t, fiber.StatusOK, status, "cuerpo: %s", raw)

	var summary dto.GapSummaryDTO
	require.NoError(t, json.Unmarshal(raw, &summary))
	assert.Equal(t, 1, summary.TrackedItems)
	assert.True(t, summary.AverageGap.Equal(dec(33.33)))
}

func TestForecast_Endpoint(t *testing.T) {
	app := newTestApp(t)
	createRiceHTTP(t, app)

	status, raw := doJSON(t, app, "GET", "/api/forecast?horizon_days=365", nil)
	require.Equal(t, fiber.StatusOK, status, "cuerpo: %s", raw)

	var resp dto.ForecastResponse
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, 365, resp.HorizonDays)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "White Rice", resp.Items[0].Name)
}

func TestEstimateWeight_Endpoint(t *testing.T) {
	app := newTestApp(t)
	status, raw := doJSON(t, app, "GET",
		"/api/conversion/estimate-weight?container=large+bin&fill_percent=80&good=white+rice", nil)
	require.Equal(t, fiber.StatusOK, status, "cuerpo: %s", raw)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.InDelta(t, 19.68, out["estimated_lbs"], 0.01)
}

func TestExportWorkbook_DevuelveXLSX(t *testing.T) {
	app := newTestApp(t)
	createRiceHTTP(t, app)

	status, raw := doJSON(t, app, "GET", "/api/export/items.xlsx", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, raw)
	// Un XLSX es un zip: firma PK.
	assert.Equal(t, []byte{'P', 'K'}, raw[:2])
}
