package challenge

import (
	"strings"
	"testing"
)

func TestBrandNameDrawsFromTokenPools(t *testing.T) {
	validPrefix := func(name string) bool {
		for _, p := range prefijos {
			if strings.HasPrefix(name, p) {
				return true
			}
		}
		return false
	}
	validSuffix := func(name string) bool {
		for _, s := range sufijos {
			if strings.HasSuffix(name, s) {
				return true
			}
		}
		return false
	}

	for i := 0; i < 100; i++ {
		name := BrandName()
		if !validPrefix(name) || !validSuffix(name) {
			t.Fatalf("brand name %q outside prefix×suffix space", name)
		}
	}
}

func TestComposeManual(t *testing.T) {
	f := Fields{
		Team:     "Equipo 1",
		Product:  "app híbrida de alfabetización digital",
		Audience: "jóvenes creativos",
		Problem:  "brecha tecnológica",
		Value:    "innovación",
		Tone:     "minimalista",
	}
	out := ComposeManual(f, "NovaLab")

	if out.BrandName != "NovaLab" {
		t.Errorf("BrandName = %q", out.BrandName)
	}
	if !strings.Contains(out.DisplayText, "Equipo: Equipo 1") {
		t.Error("display text missing team name")
	}
	if !strings.Contains(out.DisplayText, "PROBLEMA A RESOLVER:\nbrecha tecnológica.") {
		t.Error("display text missing verbatim problem statement")
	}
	if !strings.Contains(out.DisplayText, "ENTREGABLES ESPERADOS") {
		t.Error("manual display text must include deliverables block")
	}
	if strings.Contains(out.ExportText, "ENTREGABLES ESPERADOS") {
		t.Error("export text must not include deliverables block")
	}
	if !strings.Contains(out.ExportText, "Nombre sugerido: NovaLab") {
		t.Error("export text missing brand name")
	}
}

func TestComposeManualWithoutTeamUsesPlaceholder(t *testing.T) {
	out := ComposeManual(Fields{Product: "p", Audience: "a", Problem: "x", Value: "v", Tone: "t"}, "EcosHub")
	if !strings.Contains(out.DisplayText, "Equipo: "+NoTeamPlaceholder) {
		t.Error("display text missing placeholder team name")
	}
	if !strings.Contains(out.ExportText, "Equipo: "+NoTeamPlaceholder) {
		t.Error("export text missing placeholder team name")
	}
}

func TestComposeAssigned(t *testing.T) {
	f := Fields{
		Team:      "Equipo 2",
		Sector:    "Tecnología",
		Product:   "Plataforma SaaS",
		Audience:  "Pymes",
		Value:     "Sostenibilidad",
		Style:     "Minimalista",
		Territory: "Medellín",
	}
	out := ComposeAssigned(f, "PulsoTech")

	if !strings.Contains(out.DisplayText, "Desarrolla plataforma saas dirigido a pymes.") {
		t.Error("assigned brief should lowercase product and audience")
	}
	if !strings.Contains(out.DisplayText, "Sector: Tecnología") {
		t.Error("display text missing sector")
	}
	if !strings.Contains(out.DisplayText, "Territorio: Medellín") {
		t.Error("display text missing territory")
	}
	if strings.Contains(out.DisplayText, "ENTREGABLES ESPERADOS") {
		t.Error("assigned display text must not include deliverables block")
	}
	if strings.Contains(out.ExportText, "🏆") || strings.Contains(out.ExportText, "🎯") {
		t.Error("export text must not carry decorative glyphs")
	}
	if !strings.Contains(out.ExportText, "RETO CREATIVO GLOBAL") {
		t.Error("export text missing title")
	}
}

func TestComposeSameInformationalContent(t *testing.T) {
	f := Fields{
		Team:      "Equipo 3",
		Sector:    "Social",
		Product:   "Red Comunitaria",
		Audience:  "Voluntarios",
		Value:     "Empatía",
		Style:     "Cálido / Empático",
		Territory: "Periferias Urbanas",
	}
	out := ComposeAssigned(f, "RaízCo")

	for _, s := range []string{"Equipo 3", "RaízCo", "Social", "Periferias Urbanas", "Empatía"} {
		if !strings.Contains(out.DisplayText, s) {
			t.Errorf("display text missing %q", s)
		}
		if !strings.Contains(out.ExportText, s) {
			t.Errorf("export text missing %q", s)
		}
	}
}
