package pools

import "math/rand/v2"

// Sentinel is substituted when a category has no candidate values, so a
// misconfigured pool can never abort challenge generation.
const Sentinel = "Indefinido"

// Pools holds the candidate values for each roulette category.
type Pools struct {
	Sectores    []string `json:"sectores" yaml:"sectores"`
	Productos   []string `json:"productos" yaml:"productos"`
	Estilos     []string `json:"estilos" yaml:"estilos"`
	Publicos    []string `json:"publicos" yaml:"publicos"`
	Valores     []string `json:"valores" yaml:"valores"`
	Territorios []string `json:"territorios" yaml:"territorios"`
}

// Pick selects one value uniformly at random. An empty or nil pool yields
// the sentinel value. Safe for concurrent use.
func Pick(pool []string) string {
	if len(pool) == 0 {
		return Sentinel
	}
	return pool[rand.IntN(len(pool))]
}

// Category names in display order.
const (
	CategorySectores    = "sectores"
	CategoryProductos   = "productos"
	CategoryEstilos     = "estilos"
	CategoryPublicos    = "publicos"
	CategoryValores     = "valores"
	CategoryTerritorios = "territorios"
)

// CategoryNames returns the category keys in display order.
func CategoryNames() []string {
	return []string{
		CategorySectores,
		CategoryProductos,
		CategoryEstilos,
		CategoryPublicos,
		CategoryValores,
		CategoryTerritorios,
	}
}

// Category returns the value list for the named category. Unknown names
// return nil, which Pick degrades to the sentinel.
func (p Pools) Category(name string) []string {
	switch name {
	case CategorySectores:
		return p.Sectores
	case CategoryProductos:
		return p.Productos
	case CategoryEstilos:
		return p.Estilos
	case CategoryPublicos:
		return p.Publicos
	case CategoryValores:
		return p.Valores
	case CategoryTerritorios:
		return p.Territorios
	}
	return nil
}

// SetCategory replaces the value list for the named category.
func (p *Pools) SetCategory(name string, values []string) {
	switch name {
	case CategorySectores:
		p.Sectores = values
	case CategoryProductos:
		p.Productos = values
	case CategoryEstilos:
		p.Estilos = values
	case CategoryPublicos:
		p.Publicos = values
	case CategoryValores:
		p.Valores = values
	case CategoryTerritorios:
		p.Territorios = values
	}
}
