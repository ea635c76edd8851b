package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/nucleocolectivo/motorcreativo/internal/pools"
	"github.com/nucleocolectivo/motorcreativo/internal/team"
)

// Store persists session state as plain JSON files under one directory.
// Each key degrades independently: a malformed file falls back to that
// key's default without touching the rest of the session.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) teamsPath() string   { return filepath.Join(s.dir, "teams.json") }
func (s *Store) sessionPath() string { return filepath.Join(s.dir, "session.json") }
func (s *Store) poolsPath() string   { return filepath.Join(s.dir, "pools.json") }

// SaveTeams writes the roster. Failures are returned so callers can log
// them; in-memory state is already committed at that point.
func (s *Store) SaveTeams(teams []*team.Team) error {
	return team.SaveState(s.teamsPath(), teams)
}

// LoadTeams restores the roster, falling back to an empty one on malformed
// data.
func (s *Store) LoadTeams() *team.Store {
	store, err := team.LoadState(s.teamsPath())
	if err != nil {
		slog.Warn("roster state unreadable, starting empty", "path", s.teamsPath(), "error", err)
		return team.NewStore()
	}
	return store
}

// SaveState writes round, timer and started flag.
func (s *Store) SaveState(state State) error {
	return writeJSON(s.sessionPath(), state)
}

// LoadState restores the session counters, falling back to defaults.
func (s *Store) LoadState() State {
	state := DefaultState()
	if err := readJSON(s.sessionPath(), &state); err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("session state unreadable, using defaults", "path", s.sessionPath(), "error", err)
		}
		return DefaultState()
	}
	if state.Round < 1 {
		state.Round = 1
	}
	if state.TimerSeconds < 0 {
		state.TimerSeconds = 0
	}
	return state
}

// SavePools writes the active variable-pool configuration.
func (s *Store) SavePools(p pools.Pools) error {
	return writeJSON(s.poolsPath(), p)
}

// LoadPools restores the pools, falling back to the general preset.
func (s *Store) LoadPools() pools.Pools {
	var p pools.Pools
	if err := readJSON(s.poolsPath(), &p); err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("pool state unreadable, using general preset", "path", s.poolsPath(), "error", err)
		}
		return pools.General()
	}
	return p
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename state file: %w", err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal %s: %w", filepath.Base(path), err)
	}
	return nil
}
