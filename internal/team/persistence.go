package team

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nucleocolectivo/motorcreativo/internal/strategy"
)

// PersistedTeam is the JSON-serializable representation of a Team. Field
// names match the session files written by earlier versions of the tool.
type PersistedTeam struct {
	ID          int              `json:"id"`
	Name        string           `json:"name"`
	Sector      string           `json:"sector"`
	Product     string           `json:"product"`
	Style       string           `json:"style"`
	Status      Status           `json:"status"`
	Scores      Scores           `json:"scores"`
	Feedback    string           `json:"feedback"`
	Strategy    *strategy.Result `json:"iaData"`
	DisplayText string           `json:"challengeUI"`
	ExportText  string           `json:"challengePDF"`
}

// SaveState atomically writes the roster to a JSON file.
func SaveState(path string, teams []*Team) error {
	persisted := make([]PersistedTeam, len(teams))
	for i, t := range teams {
		snap := t.Snapshot()
		persisted[i] = PersistedTeam{
			ID:          t.ID,
			Name:        t.Name,
			Sector:      snap.Sector,
			Product:     snap.Product,
			Style:       snap.Style,
			Status:      snap.Status,
			Scores:      snap.Scores,
			Feedback:    snap.Feedback,
			Strategy:    snap.Strategy,
			DisplayText: snap.DisplayText,
			ExportText:  snap.ExportText,
		}
	}

	data, err := json.MarshalIndent(persisted, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal roster: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write roster temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename roster file: %w", err)
	}
	return nil
}

// LoadState reads a persisted roster into a fresh Store. A missing file
// yields an empty store; malformed JSON is an error so the caller can fall
// back to the default without crashing the session.
func LoadState(path string) (*Store, error) {
	store := NewStore()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	var persisted []PersistedTeam
	if err := json.Unmarshal(data, &persisted); err != nil {
		return nil, fmt.Errorf("unmarshal roster: %w", err)
	}

	for _, pt := range persisted {
		t := &Team{
			ID:          pt.ID,
			Name:        pt.Name,
			sector:      pt.Sector,
			product:     pt.Product,
			style:       pt.Style,
			status:      normalizeStatus(pt.Status),
			scores:      pt.Scores,
			feedback:    pt.Feedback,
			strategy:    pt.Strategy,
			displayText: pt.DisplayText,
			exportText:  pt.ExportText,
		}
		if err := store.add(t); err != nil {
			return nil, fmt.Errorf("restore team %d: %w", pt.ID, err)
		}
	}
	return store, nil
}

// normalizeStatus maps transient states back to a stable one: a crash while
// a challenge was generating must not strand a team in Generando.
func normalizeStatus(s Status) Status {
	switch s {
	case StatusWaiting, StatusAssigned, StatusGraded:
		return s
	case StatusGenerating:
		return StatusWaiting
	}
	return StatusWaiting
}
