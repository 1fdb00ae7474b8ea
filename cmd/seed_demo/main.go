// Siembra un set de ítems de demo contra la API (POST /api/items/import).
// Útil para probar las vistas de brecha y pronóstico sin cargar datos a mano:
//
//	go run ./cmd/seed_demo -url http://localhost:8080
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/shopspring/decimal"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "URL base de la API")
	flag.Parse()

	req := dto.BulkImportRequest{Items: demoItems()}
	body, err := json.Marshal(req)
	if err != nil {
		fmt.Fprintln(os.Stderr, "serializar payload:", err)
		os.Exit(1)
	}

	resp, err := http.Post(*baseURL+"/api/items/import", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintln(os.Stderr, "POST /api/items/import:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	out, _ := io.ReadAll(resp.Body)
	fmt.Printf("status=%d\n%s\n", resp.StatusCode, out)
}

func demoItems() []dto.CreateItemRequest {
	d := decimal.NewFromFloat
	density := func(v float64) *decimal.Decimal {
		dv := d(v)
		return &dv
	}
	return []dto.CreateItemRequest{
		{
			Name: "White Rice", Category: "Dry Goods", Supplier: "Granos del Valle",
			Location: "Despensa A", Unit: "containers", ContainerType: "large bin",
			Quantity: d(12), CostPerUnit: d(18.50), WeightPerContainer: d(19.68),
			MinimumStock: d(3), IsDryGood: true, DensityLbsPerCup: density(0.41),
		},
		{
			Name: "All-Purpose Flour", Category: "Dry Goods", Supplier: "Molinos Andinos",
			Location: "Despensa A", Unit: "containers", ContainerType: "medium bin",
			Quantity: d(8), CostPerUnit: d(12.00), WeightPerContainer: d(10.8),
			MinimumStock: d(2), IsDryGood: true, DensityLbsPerCup: density(0.27),
		},
		{
			Name: "Azúcar", Category: "Dry Goods", Supplier: "Ingenio La Cabaña",
			Location: "Despensa B", Unit: "containers", ContainerType: "small bin",
			Quantity: d(6), CostPerUnit: d(9.75), WeightPerContainer: d(9),
			MinimumStock: d(2), IsDryGood: true, DensityLbsPerCup: density(0.45),
		},
		{
			Name: "Tomatoes", Category: "Produce", Supplier: "Finca El Rosal",
			Location: "Cuarto frío", Unit: "cases",
			Quantity: d(5), CostPerUnit: d(22.00), WeightPerContainer: d(25),
			MinimumStock: d(2),
		},
		{
			Name: "Whole Milk", Category: "Dairy", Supplier: "Lácteos San Martín",
			Location: "Cuarto frío", Unit: "crates",
			Quantity: d(4), CostPerUnit: d(15.30), WeightPerContainer: d(34),
			MinimumStock: d(2),
		},
		{
			Name: "Chicken Breast", Category: "Meat", Supplier: "Avícola Santander",
			Location: "Congelador 1", Unit: "cases",
			Quantity: d(3), CostPerUnit: d(48.00), WeightPerContainer: d(40),
			MinimumStock: d(1),
		},
		{
			Name: "Olive Oil", Category: "Condiments", Supplier: "Importadora Mediterránea",
			Location: "Despensa B", Unit: "bottles",
			Quantity: d(10), CostPerUnit: d(14.25), WeightPerContainer: d(2.1),
			MinimumStock: d(4),
		},
		{
			Name: "Black Beans", Category: "Dry Goods", Supplier: "Granos del Valle",
			Location: "Despensa A", Unit: "containers", ContainerType: "medium bin",
			Quantity: d(7), CostPerUnit: d(16.40), WeightPerContainer: d(15.2),
			MinimumStock: d(2), IsDryGood: true, DensityLbsPerCup: density(0.38),
		},
	}
}
