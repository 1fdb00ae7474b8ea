// Package conversion implementa la conversión por tablas entre peso de granel
// seco y volumen de llenado de contenedores. Peso y volumen se relacionan
// linealmente a través de la densidad del grano, así que para un grano fijo
// estimar peso y luego volumen es un viaje redondo (propiedad verificada en
// tests).
package conversion

import (
	"sort"

	"github.com/jhoicas/despensa-api/pkg/fold"
)

// Converter convertidor peso<->volumen. Es puro y seguro para uso concurrente:
// las tablas no mutan después de la construcción.
type Converter struct {
	densities  map[string]float64
	containers []ContainerCapacity // ascendente por capacidad
	byLabel    map[string]float64
}

// NewConverter construye el convertidor con las tablas canónicas.
func NewConverter() *Converter {
	return NewConverterWithTables(defaultDensities, defaultContainers)
}

// NewConverterWithTables construye el convertidor con tablas propias (tests,
// cocinas con contenedores no estándar). Copia las tablas y ordena los
// contenedores por capacidad ascendente.
func NewConverterWithTables(densities map[string]float64, containers []ContainerCapacity) *Converter {
	d := make(map[string]float64, len(densities))
	for name, v := range densities {
		d[fold.Fold(name)] = v
	}
	cs := make([]ContainerCapacity, len(containers))
	copy(cs, containers)
	sort.Slice(cs, func(i, j int) bool { return cs[i].Cups < cs[j].Cups })
	byLabel := make(map[string]float64, len(cs))
	for _, c := range cs {
		byLabel[fold.Fold(c.Label)] = c.Cups
	}
	return &Converter{densities: d, containers: cs, byLabel: byLabel}
}

// Density densidad (lbs/cup) del grano; desconocido -> DefaultDensityLbsPerCup.
// Nunca es error: el convertidor degrada a valores por defecto.
func (c *Converter) Density(goodName string) float64 {
	if d, ok := c.densities[fold.Fold(goodName)]; ok {
		return d
	}
	return DefaultDensityLbsPerCup
}

// Capacity capacidad nominal (cups) del contenedor; desconocido -> DefaultContainerCups.
func (c *Converter) Capacity(containerLabel string) float64 {
	if cap, ok := c.byLabel[fold.Fold(containerLabel)]; ok {
		return cap
	}
	return DefaultContainerCups
}

// EstimateWeight peso estimado (lbs) de un contenedor lleno al fillPercent
// (0-100) con el grano indicado: capacidad * (fill/100) * densidad.
func (c *Converter) EstimateWeight(containerLabel string, fillPercent float64, goodName string) float64 {
	return c.Capacity(containerLabel) * (fillPercent / 100) * c.Density(goodName)
}

// EstimateVolume volumen (cups) que ocupa un peso dado del grano indicado.
func (c *Converter) EstimateVolume(weightLbs float64, goodName string) float64 {
	return weightLbs / c.Density(goodName)
}

// RecommendContainer el contenedor más pequeño cuya capacidad alcanza para el
// peso indicado del grano; si ninguno alcanza, el más grande disponible.
func (c *Converter) RecommendContainer(goodName string, weightLbs float64) ContainerCapacity {
	needed := c.EstimateVolume(weightLbs, goodName)
	for _, cc := range c.containers {
		if cc.Cups >= needed {
			return cc
		}
	}
	return c.containers[len(c.containers)-1]
}
