package team

import (
	"sync"

	"github.com/nucleocolectivo/motorcreativo/internal/strategy"
)

// Status is a team's position in the challenge lifecycle. Values double as
// the classroom-facing labels.
type Status string

const (
	StatusWaiting    Status = "Esperando Reto"
	StatusGenerating Status = "Generando IA..."
	StatusAssigned   Status = "Reto Asignado"
	StatusGraded     Status = "Calificado"
)

// Scores is the fixed five-criterion rubric. Each criterion stays in [0,5].
type Scores struct {
	Innovacion int `json:"innovacion"`
	Coherencia int `json:"coherencia"`
	Visual     int `json:"visual"`
	Viabilidad int `json:"viabilidad"`
	Etica      int `json:"etica"`
}

// Total sums all criteria, range [0,25].
func (s Scores) Total() int {
	return s.Innovacion + s.Coherencia + s.Visual + s.Viabilidad + s.Etica
}

// Criterion identifies one rubric entry for ordered iteration.
type Criterion struct {
	Key   string
	Label string
}

// Criteria returns the rubric entries in display order. The etica criterion
// is labelled "Impacto" on screen, matching the scoring dialog.
func Criteria() []Criterion {
	return []Criterion{
		{Key: "innovacion", Label: "Innovación"},
		{Key: "coherencia", Label: "Coherencia"},
		{Key: "visual", Label: "Visual"},
		{Key: "viabilidad", Label: "Viabilidad"},
		{Key: "etica", Label: "Impacto"},
	}
}

// Get returns the criterion value by key.
func (s Scores) Get(key string) int {
	switch key {
	case "innovacion":
		return s.Innovacion
	case "coherencia":
		return s.Coherencia
	case "visual":
		return s.Visual
	case "viabilidad":
		return s.Viabilidad
	case "etica":
		return s.Etica
	}
	return 0
}

// Set assigns the criterion value by key, clamped to [0,5].
func (s *Scores) Set(key string, value int) {
	if value < 0 {
		value = 0
	}
	if value > 5 {
		value = 5
	}
	switch key {
	case "innovacion":
		s.Innovacion = value
	case "coherencia":
		s.Coherencia = value
	case "visual":
		s.Visual = value
	case "viabilidad":
		s.Viabilidad = value
	case "etica":
		s.Etica = value
	}
}

// Assignment is the bundle of fields written onto a team when a challenge
// lands: applied atomically so the roster never holds a partial result.
type Assignment struct {
	Sector      string
	Product     string
	Style       string
	DisplayText string
	ExportText  string
	Strategy    strategy.Result
}

// Team is one roster entry.
type Team struct {
	// Immutable after creation.
	ID   int
	Name string

	// Mutable fields, protected by mu.
	mu          sync.RWMutex
	sector      string
	product     string
	style       string
	status      Status
	scores      Scores
	feedback    string
	strategy    *strategy.Result
	displayText string
	exportText  string
}

func newTeam(id int, name string) *Team {
	return &Team{
		ID:      id,
		Name:    name,
		sector:  "-",
		product: "-",
		style:   "-",
		status:  StatusWaiting,
	}
}

func (t *Team) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.status
}

func (t *Team) SetStatus(s Status) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.status = s
}

func (t *Team) Scores() Scores {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scores
}

func (t *Team) Feedback() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.feedback
}

// Grade stores the rubric and feedback and marks the team Calificado.
func (t *Team) Grade(scores Scores, feedback string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scores = scores
	t.feedback = feedback
	t.status = StatusGraded
}

// Assign writes a completed challenge onto the team in one step.
func (t *Team) Assign(a Assignment) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sector = a.Sector
	t.product = a.Product
	t.style = a.Style
	t.displayText = a.DisplayText
	t.exportText = a.ExportText
	strat := a.Strategy
	t.strategy = &strat
	t.status = StatusAssigned
}

func (t *Team) Sector() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.sector
}

func (t *Team) Product() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.product
}

func (t *Team) Style() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.style
}

func (t *Team) DisplayText() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.displayText
}

func (t *Team) ExportText() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.exportText
}

// Strategy returns a copy of the attached narrative, or nil if absent.
func (t *Team) Strategy() *strategy.Result {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.strategy == nil {
		return nil
	}
	strat := *t.strategy
	return &strat
}

// Snapshot holds a consistent point-in-time view of the mutable fields.
type Snapshot struct {
	Sector      string
	Product     string
	Style       string
	Status      Status
	Scores      Scores
	Feedback    string
	Strategy    *strategy.Result
	DisplayText string
	ExportText  string
}

// Snapshot reads all mutable fields under a single lock acquisition.
func (t *Team) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var strat *strategy.Result
	if t.strategy != nil {
		s := *t.strategy
		strat = &s
	}
	return Snapshot{
		Sector:      t.sector,
		Product:     t.product,
		Style:       t.style,
		Status:      t.status,
		Scores:      t.scores,
		Feedback:    t.feedback,
		Strategy:    strat,
		DisplayText: t.displayText,
		ExportText:  t.exportText,
	}
}
