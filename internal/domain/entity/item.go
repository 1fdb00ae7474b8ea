package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa una unidad de stock de la cocina (contenedor, caja o unidad suelta).
// TotalValue y TotalWeight son derivados: el caso de uso los recalcula en cada
// mutación y nunca se asignan de forma independiente. BeginningInventory es la
// línea base contra la que se mide la brecha de consumo; solo cambia con un
// reset explícito.
type Item struct {
	ID            string
	Name          string
	Category      Category
	Supplier      string
	Location      string
	Unit          string // etiqueta de unidad: "lbs", "containers", "bottles"...
	ContainerType string // etiqueta del contenedor físico: "large bin", "quart container"...

	Quantity           decimal.Decimal // conteo de contenedores/unidades, >= 0
	CostPerUnit        decimal.Decimal
	WeightPerContainer decimal.Decimal
	MinimumStock       decimal.Decimal // piso de reorden

	// Derivados (invariantes: siempre = Quantity * CostPerUnit / * WeightPerContainer).
	TotalValue  decimal.Decimal
	TotalWeight decimal.Decimal

	// Línea base de consumo. GapPercentage está definido sii
	// BeginningInventory está definido y > 0.
	BeginningInventory *decimal.Decimal
	GapPercentage      *decimal.Decimal
	LastReset          *time.Time

	// Atributos de granel seco.
	IsDryGood        bool
	DensityLbsPerCup *decimal.Decimal // override por ítem de la tabla de densidades

	ExpirationDate *time.Time

	// Todos los timestamps en UTC (ver decisión de unificación en DESIGN.md).
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone devuelve una copia profunda del ítem (los campos decimal son inmutables;
// solo hay que duplicar los punteros para aislar snapshots).
func (i *Item) Clone() *Item {
	cp := *i
	if i.BeginningInventory != nil {
		v := *i.BeginningInventory
		cp.BeginningInventory = &v
	}
	if i.GapPercentage != nil {
		v := *i.GapPercentage
		cp.GapPercentage = &v
	}
	if i.LastReset != nil {
		t := *i.LastReset
		cp.LastReset = &t
	}
	if i.DensityLbsPerCup != nil {
		v := *i.DensityLbsPerCup
		cp.DensityLbsPerCup = &v
	}
	if i.ExpirationDate != nil {
		t := *i.ExpirationDate
		cp.ExpirationDate = &t
	}
	return &cp
}
