package team

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nucleocolectivo/motorcreativo/internal/strategy"
)

func TestSaveAndLoadState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.json")

	s := NewStore()
	a, _ := s.Add()
	b, _ := s.Add()
	a.Assign(Assignment{
		Sector:      "Social",
		Product:     "Red Comunitaria",
		Style:       "Cálido / Empático",
		DisplayText: "ui",
		ExportText:  "pdf",
		Strategy:    strategy.Result{Mision: "m", Vision: "v", Diferenciador: "d", ImpactoODS: "i"},
	})
	a.Grade(Scores{Innovacion: 5, Coherencia: 4, Visual: 3, Viabilidad: 2, Etica: 1}, "sólido")

	if err := SaveState(path, s.All()); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	loaded, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("loaded %d teams, want 2", loaded.Len())
	}

	la, ok := loaded.Get(a.ID)
	if !ok {
		t.Fatal("team 1 missing after load")
	}
	snap := la.Snapshot()
	if snap.Status != StatusGraded {
		t.Errorf("status = %q, want %q", snap.Status, StatusGraded)
	}
	if snap.Scores.Total() != 15 {
		t.Errorf("total = %d, want 15", snap.Scores.Total())
	}
	if snap.Strategy == nil || snap.Strategy.Mision != "m" {
		t.Errorf("strategy not restored: %+v", snap.Strategy)
	}
	if snap.Feedback != "sólido" {
		t.Errorf("feedback = %q", snap.Feedback)
	}

	lb, ok := loaded.Get(b.ID)
	if !ok {
		t.Fatal("team 2 missing after load")
	}
	if lb.Status() != StatusWaiting {
		t.Errorf("team 2 status = %q, want %q", lb.Status(), StatusWaiting)
	}
	if lb.Strategy() != nil {
		t.Error("team 2 should have no strategy")
	}
}

func TestLoadStateMissingFileYieldsEmptyStore(t *testing.T) {
	s, err := LoadState(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("store size = %d, want 0", s.Len())
	}
}

func TestLoadStateMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadState(path); err == nil {
		t.Error("expected error for malformed roster file")
	}
}

func TestLoadStateNormalizesGenerating(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.json")
	s := NewStore()
	a, _ := s.Add()
	a.SetStatus(StatusGenerating)
	if err := SaveState(path, s.All()); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadState(path)
	if err != nil {
		t.Fatal(err)
	}
	la, _ := loaded.Get(a.ID)
	if la.Status() != StatusWaiting {
		t.Errorf("restored status = %q, want %q", la.Status(), StatusWaiting)
	}
}
