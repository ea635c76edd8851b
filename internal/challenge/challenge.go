// Package challenge renders the creative brief assigned to a team: a
// decorated display text for the screen, a plain export text for reports,
// and a generated brand name. Composition is pure templating; all random
// choices are resolved by the caller.
package challenge

import (
	"fmt"
	"strings"

	"github.com/nucleocolectivo/motorcreativo/internal/pools"
)

// Brand name token pools: 8 × 8 = 64 combinations.
var (
	prefijos = []string{"Nova", "Núcleo", "Conecta", "Nodo", "Raíz", "Pulso", "Zenith", "Ecos"}
	sufijos  = []string{"Lab", "Hub", "360", "Studio", "Tech", "Co", "Space", "Works"}
)

// Deliverables block appended verbatim to manual-mode display text.
const entregablesBase = "\n\n📦 ENTREGABLES ESPERADOS:\n• Resumen Ejecutivo (Problema/Solución)\n• Arquitectura del Proyecto / Mockup Inicial\n• Canvas de Modelo de Negocio o Impacto\n• Estrategia de Implementación Territorial"

// AutomatedProblem is the fixed problem statement used by Team and Global
// modes, where no manual problem field exists.
const AutomatedProblem = "Falta de innovación en el sector"

// NoTeamPlaceholder is rendered when a manual brief has no team name.
const NoTeamPlaceholder = "Sin nombre"

// BrandName generates a brand name from one prefix and one suffix token.
func BrandName() string {
	return pools.Pick(prefijos) + pools.Pick(sufijos)
}

// Fields are the resolved variables a brief is composed from.
type Fields struct {
	Team      string
	Sector    string
	Product   string
	Audience  string
	Problem   string
	Value     string
	Tone      string
	Style     string
	Territory string
}

// Output is one composed challenge.
type Output struct {
	DisplayText string
	ExportText  string
	BrandName   string
}

// ComposeManual renders a manual-mode brief. The caller-supplied problem
// and tone are incorporated verbatim, and the deliverables block is
// appended to the display text only.
func ComposeManual(f Fields, brand string) Output {
	team := f.Team
	if team == "" {
		team = NoTeamPlaceholder
	}

	body := fmt.Sprintf("Desarrolla %s dirigido a %s.\n\n⚠️ PROBLEMA A RESOLVER:\n%s.\n\n✨ IDENTIDAD DE MARCA:\nLa marca debe enfocarse en %q con un estilo %s.",
		f.Product, f.Audience, f.Problem, f.Value, f.Tone)

	display := fmt.Sprintf("🏆 RETO CREATIVO\n======================\n\n👥 Equipo: %s\n💡 Nombre sugerido: %s\n\n🎯 DESAFÍO:\n%s%s",
		team, brand, body, entregablesBase)
	export := fmt.Sprintf("RETO CREATIVO\n\nEquipo: %s\nNombre sugerido: %s\n\nDESAFÍO:\n%s",
		team, brand, body)

	return Output{DisplayText: display, ExportText: export, BrandName: brand}
}

// ComposeAssigned renders a Team/Global-mode brief from freshly sampled
// pool values. Product and audience are lowercased mid-sentence, matching
// how the brief reads aloud.
func ComposeAssigned(f Fields, brand string) Output {
	body := fmt.Sprintf("Desarrolla %s dirigido a %s.\n\n✨ IDENTIDAD DE MARCA:\nLa marca debe enfocarse en %q con un estilo %s.",
		strings.ToLower(f.Product), strings.ToLower(f.Audience), f.Value, f.Style)

	display := fmt.Sprintf("🏆 RETO CREATIVO GLOBAL\n======================\n\n👥 Equipo: %s\n💡 Nombre sugerido: %s\n🏭 Sector: %s\n📍 Territorio: %s\n\n🎯 DESAFÍO:\n%s",
		f.Team, brand, f.Sector, f.Territory, body)
	export := fmt.Sprintf("RETO CREATIVO GLOBAL\n\nEquipo: %s\nNombre sugerido: %s\nSector: %s\nTerritorio: %s\n\nDESAFÍO:\n%s",
		f.Team, brand, f.Sector, f.Territory, body)

	return Output{DisplayText: display, ExportText: export, BrandName: brand}
}
