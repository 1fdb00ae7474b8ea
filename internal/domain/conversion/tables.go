package conversion

// Tablas estáticas del convertidor peso/volumen para granel seco. Se cargan una
// sola vez al construir el Converter y no mutan en runtime.

// DefaultDensityLbsPerCup densidad usada para granos desconocidos.
const DefaultDensityLbsPerCup = 0.35

// DefaultContainerCups capacidad usada para contenedores desconocidos.
const DefaultContainerCups = 20.0

// defaultDensities densidad en lbs/cup por nombre plegado del grano.
var defaultDensities = map[string]float64{
	"white rice":        0.41,
	"brown rice":        0.44,
	"all-purpose flour": 0.27,
	"flour":             0.27,
	"sugar":             0.45,
	"brown sugar":       0.48,
	"salt":              0.63,
	"black beans":       0.38,
	"pinto beans":       0.40,
	"lentils":           0.40,
	"oats":              0.18,
	"pasta":             0.23,
	"cornmeal":          0.33,
	"quinoa":            0.36,
}

// ContainerCapacity capacidad nominal de un contenedor físico.
type ContainerCapacity struct {
	Label string
	Cups  float64
}

// defaultContainers tabla ORDENADA ascendente por capacidad; el orden es el
// contrato de RecommendContainer (el primero que alcanza, gana).
var defaultContainers = []ContainerCapacity{
	{Label: "quart container", Cups: 4},
	{Label: "half-gallon container", Cups: 8},
	{Label: "gallon jug", Cups: 16},
	{Label: "small bin", Cups: 20},
	{Label: "medium bin", Cups: 40},
	{Label: "large bin", Cups: 60},
	{Label: "bucket", Cups: 80},
}
