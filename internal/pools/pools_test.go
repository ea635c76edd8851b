package pools

import (
	"path/filepath"
	"testing"
)

func TestPickEmptyPoolReturnsSentinel(t *testing.T) {
	if got := Pick(nil); got != Sentinel {
		t.Errorf("Pick(nil) = %q, want %q", got, Sentinel)
	}
	if got := Pick([]string{}); got != Sentinel {
		t.Errorf("Pick(empty) = %q, want %q", got, Sentinel)
	}
}

func TestPickMissingCategoryReturnsSentinel(t *testing.T) {
	var p Pools
	for _, name := range CategoryNames() {
		if got := Pick(p.Category(name)); got != Sentinel {
			t.Errorf("Pick on empty category %q = %q, want sentinel", name, got)
		}
	}
	if got := Pick(p.Category("no-such-category")); got != Sentinel {
		t.Errorf("Pick on unknown category = %q, want sentinel", got)
	}
}

func TestPickSingleton(t *testing.T) {
	for i := 0; i < 20; i++ {
		if got := Pick([]string{"solo"}); got != "solo" {
			t.Fatalf("Pick(singleton) = %q", got)
		}
	}
}

func TestPickStaysInPool(t *testing.T) {
	pool := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[Pick(pool)] = true
	}
	for v := range seen {
		if v != "a" && v != "b" && v != "c" {
			t.Errorf("Pick returned value outside pool: %q", v)
		}
	}
	// 200 draws over 3 values should hit all of them.
	if len(seen) != 3 {
		t.Errorf("expected all pool values drawn, got %v", seen)
	}
}

func TestPresetLookup(t *testing.T) {
	for _, name := range PresetNames() {
		p, ok := Preset(name)
		if !ok {
			t.Fatalf("Preset(%q) not found", name)
		}
		for _, cat := range CategoryNames() {
			if len(p.Category(cat)) == 0 {
				t.Errorf("preset %q has empty category %q", name, cat)
			}
		}
	}
	if _, ok := Preset("nope"); ok {
		t.Error("Preset(nope) should not exist")
	}
}

func TestSectorClosedSet(t *testing.T) {
	for _, id := range SectorIDs() {
		opts, ok := Sector(id)
		if !ok {
			t.Fatalf("Sector(%q) not found", id)
		}
		if opts.Label == "" {
			t.Errorf("sector %q has empty label", id)
		}
		if len(opts.Productos) == 0 || len(opts.Problemas) == 0 {
			t.Errorf("sector %q has empty option lists", id)
		}
	}
	if _, ok := Sector("finanzas"); ok {
		t.Error("unknown sector id should be rejected")
	}
}

func TestSetCategory(t *testing.T) {
	p := General()
	p.SetCategory(CategoryValores, []string{"Austeridad"})
	if got := p.Category(CategoryValores); len(got) != 1 || got[0] != "Austeridad" {
		t.Errorf("SetCategory not applied: %v", got)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pools.yaml")
	want := Tech()
	if err := SaveFile(path, want); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	for _, cat := range CategoryNames() {
		w, g := want.Category(cat), got.Category(cat)
		if len(w) != len(g) {
			t.Fatalf("category %q length mismatch: %d vs %d", cat, len(w), len(g))
		}
		for i := range w {
			if w[i] != g[i] {
				t.Errorf("category %q[%d] = %q, want %q", cat, i, g[i], w[i])
			}
		}
	}
}

func TestLoadFileRejectsUnknownCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeTestFile(t, path, "sectores: [Uno]\ncolores: [Rojo]\n")
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for unknown category key")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
