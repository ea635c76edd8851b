package team

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// MaxTeams caps the roster size.
const MaxTeams = 6

// ErrRosterFull is returned when adding a seventh team.
var ErrRosterFull = errors.New("roster is full")

// Store is the mutex-guarded team roster. All roster mutation goes through
// it, which gives the single-writer guarantee the orchestrator relies on.
type Store struct {
	mu    sync.RWMutex
	teams map[int]*Team
}

func NewStore() *Store {
	return &Store{
		teams: make(map[int]*Team),
	}
}

// Add creates a team with the next free id and the default name "Equipo N".
// The seventh add is rejected and leaves the roster unchanged.
func (s *Store) Add() (*Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.teams) >= MaxTeams {
		return nil, ErrRosterFull
	}

	id := 1
	for tid := range s.teams {
		if tid >= id {
			id = tid + 1
		}
	}

	t := newTeam(id, fmt.Sprintf("Equipo %d", id))
	s.teams[id] = t
	return t, nil
}

// add inserts a restored team, used by persistence loading.
func (s *Store) add(t *Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.teams) >= MaxTeams {
		return ErrRosterFull
	}
	if _, exists := s.teams[t.ID]; exists {
		return fmt.Errorf("duplicate team id %d", t.ID)
	}
	s.teams[t.ID] = t
	return nil
}

func (s *Store) Get(id int) (*Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	return t, ok
}

// All returns the teams ordered by id.
func (s *Store) All() []*Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*Team, 0, len(s.teams))
	for _, t := range s.teams {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Ranked returns the teams ordered by descending total score, ties by id.
func (s *Store) Ranked() []*Team {
	result := s.All()
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Scores().Total() > result[j].Scores().Total()
	})
	return result
}

// WithStatus returns teams currently in the given status, ordered by id.
func (s *Store) WithStatus(status Status) []*Team {
	var result []*Team
	for _, t := range s.All() {
		if t.Status() == status {
			result = append(result, t)
		}
	}
	return result
}

func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.teams, id)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.teams)
}

// Clear removes every team, used by session reset.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = make(map[int]*Team)
}
