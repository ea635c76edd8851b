// Package orchestrator drives challenge assignment: it resolves roulette
// variables, calls strategy enrichment, reconciles results into the roster
// and reports back to the UI through bubbletea messages.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/nucleocolectivo/motorcreativo/internal/challenge"
	"github.com/nucleocolectivo/motorcreativo/internal/pools"
	"github.com/nucleocolectivo/motorcreativo/internal/strategy"
	"github.com/nucleocolectivo/motorcreativo/internal/team"
)

// Mode selects how a spin resolves its variables and where results land.
type Mode int

const (
	ModeManual Mode = iota
	ModeTeam
	ModeGlobal
)

func (m Mode) String() string {
	switch m {
	case ModeManual:
		return "manual"
	case ModeTeam:
		return "team"
	case ModeGlobal:
		return "global"
	}
	return "unknown"
}

// minSpinDuration is the minimum visible spinning time. The reveal waits
// this long even when the real work finishes sooner.
const minSpinDuration = 3 * time.Second

var (
	// ErrBusy means a spin is already in flight; a trigger while locked
	// is a no-op for the caller.
	ErrBusy = errors.New("ya hay una generación en curso")
	// ErrNoEligibleTeams means a Global spin found nobody awaiting a
	// challenge. Informational, not a failure.
	ErrNoEligibleTeams = errors.New("no hay equipos esperando reto")
	// ErrTeamNotFound means a Team spin targeted an unknown id.
	ErrTeamNotFound = errors.New("equipo no encontrado")
)

// TeamResult is one team's share of a Global spin outcome.
type TeamResult struct {
	TeamID   int
	TeamName string
	Output   challenge.Output
	Strategy strategy.Result
}

// ResultMsg reports a completed Manual or Team spin.
type ResultMsg struct {
	Mode     Mode
	TeamID   int
	Title    string
	Output   challenge.Output
	Strategy strategy.Result
	Filename string
}

// GlobalResultMsg reports a completed Global spin. RoundAdvanced tells the
// UI to move the round counter; the orchestrator never touches it itself.
type GlobalResultMsg struct {
	Results       []TeamResult
	RoundAdvanced bool
}

// ManualInput is the facilitator-configured variable set for Manual mode.
// Product is sampled from the sector catalog; everything else comes from
// the form.
type ManualInput struct {
	Sector    pools.SectorID
	TeamName  string
	Audience  string
	Problem   string
	Tone      string
	Value     string
	Territory string
}

// Sender delivers messages into the running UI program.
type Sender interface {
	Send(tea.Msg)
}

// Saver persists the roster after successful mutations. *session.Store
// satisfies it.
type Saver interface {
	SaveTeams(teams []*team.Team) error
}

// Orchestrator owns the assignment workflow. At most one spin is in flight
// at a time, enforced by the assigning flag.
type Orchestrator struct {
	store    *team.Store
	enricher *strategy.Client
	poolsFn  func() pools.Pools
	saver    Saver
	sender   Sender
	minSpin  time.Duration

	assigning atomic.Bool

	mu    sync.Mutex
	token *opToken
}

// opToken is the cancellation handle of one spin. Closing the roulette
// dialog mid-spin cancels the token; the write-back step checks it before
// mutating roster state, so an abandoned spin leaves no trace.
type opToken struct {
	done chan struct{}
	once sync.Once
}

func newOpToken() *opToken {
	return &opToken{done: make(chan struct{})}
}

func (t *opToken) cancel() {
	t.once.Do(func() { close(t.done) })
}

func (t *opToken) cancelled() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithMinSpin overrides the minimum visible spin duration.
func WithMinSpin(d time.Duration) Option {
	return func(o *Orchestrator) { o.minSpin = d }
}

func New(store *team.Store, enricher *strategy.Client, poolsFn func() pools.Pools, saver Saver, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		store:    store,
		enricher: enricher,
		poolsFn:  poolsFn,
		saver:    saver,
		minSpin:  minSpinDuration,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// SetSender wires the UI program. Results are dropped if no sender is set.
func (o *Orchestrator) SetSender(s Sender) {
	o.sender = s
}

// Busy reports whether a spin is in flight.
func (o *Orchestrator) Busy() bool {
	return o.assigning.Load()
}

// Cancel marks the in-flight spin as cancelled. The enrichment call is not
// aborted, but its result will not be written back. Reverting Generando
// statuses is left to the spin goroutine so the roster has a single writer.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.token != nil {
		o.token.cancel()
	}
}

// TriggerManual starts a Manual spin from facilitator-configured fields.
// The roster is not touched in this mode.
func (o *Orchestrator) TriggerManual(in ManualInput) error {
	opts, ok := pools.Sector(in.Sector)
	if !ok {
		return fmt.Errorf("sector %q fuera del catálogo", in.Sector)
	}
	token, err := o.acquire()
	if err != nil {
		return err
	}

	go o.runManual(token, in, opts)
	return nil
}

// TriggerTeam starts a Team spin for one roster entry. The entry moves to
// Generando before the enrichment call is issued so the dashboard shows
// progress immediately.
func (o *Orchestrator) TriggerTeam(teamID int) error {
	t, ok := o.store.Get(teamID)
	if !ok {
		return ErrTeamNotFound
	}
	token, err := o.acquire()
	if err != nil {
		return err
	}

	t.SetStatus(team.StatusGenerating)
	o.saveRoster()

	go o.runTeam(token, t)
	return nil
}

// TriggerGlobal starts a batch spin over every team awaiting a challenge.
// With no eligible teams the lock is released immediately and
// ErrNoEligibleTeams tells the caller to notify instead of opening the
// roulette.
func (o *Orchestrator) TriggerGlobal() error {
	token, err := o.acquire()
	if err != nil {
		return err
	}

	eligible := o.store.WithStatus(team.StatusWaiting)
	if len(eligible) == 0 {
		o.release()
		return ErrNoEligibleTeams
	}

	for _, t := range eligible {
		t.SetStatus(team.StatusGenerating)
	}
	o.saveRoster()

	go o.runGlobal(token, eligible)
	return nil
}

func (o *Orchestrator) acquire() (*opToken, error) {
	if !o.assigning.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	token := newOpToken()
	o.mu.Lock()
	o.token = token
	o.mu.Unlock()
	return token, nil
}

func (o *Orchestrator) release() {
	o.mu.Lock()
	o.token = nil
	o.mu.Unlock()
	o.assigning.Store(false)
}

func (o *Orchestrator) runManual(token *opToken, in ManualInput, opts pools.SectorOptions) {
	defer o.release()
	started := time.Now()

	product := pools.Pick(opts.Productos)
	brand := challenge.BrandName()

	strat := o.enricher.Enrich(context.Background(), strategy.Input{
		Sector:    opts.Label,
		Product:   product,
		Audience:  in.Audience,
		Problem:   in.Problem,
		Value:     in.Value,
		Territory: in.Territory,
	})

	out := challenge.ComposeManual(challenge.Fields{
		Team:     in.TeamName,
		Product:  product,
		Audience: in.Audience,
		Problem:  in.Problem,
		Value:    in.Value,
		Tone:     in.Tone,
	}, brand)

	o.waitMinSpin(started, token)
	if token.cancelled() {
		slog.Info("manual spin cancelled before reveal")
		return
	}

	filename := "Reto_Creativo"
	if in.TeamName != "" {
		filename = "Reto_" + in.TeamName
	}
	o.send(ResultMsg{
		Mode:     ModeManual,
		Title:    "Reto Individual Generado",
		Output:   out,
		Strategy: strat,
		Filename: filename,
	})
}

func (o *Orchestrator) runTeam(token *opToken, t *team.Team) {
	defer o.release()
	started := time.Now()

	assignment, out := o.spinFor(t.Name)

	o.waitMinSpin(started, token)
	if token.cancelled() {
		t.SetStatus(team.StatusWaiting)
		o.saveRoster()
		slog.Info("team spin cancelled, status reverted", "team", t.ID)
		return
	}

	t.Assign(assignment)
	o.saveRoster()

	o.send(ResultMsg{
		Mode:     ModeTeam,
		TeamID:   t.ID,
		Title:    "Reto Asignado: " + t.Name,
		Output:   out,
		Strategy: assignment.Strategy,
		Filename: "Reto_" + t.Name,
	})
}

func (o *Orchestrator) runGlobal(token *opToken, eligible []*team.Team) {
	defer o.release()
	started := time.Now()

	type slot struct {
		assignment team.Assignment
		out        challenge.Output
	}
	slots := make([]slot, len(eligible))

	g, _ := errgroup.WithContext(context.Background())
	for i, t := range eligible {
		g.Go(func() error {
			a, out := o.spinFor(t.Name)
			slots[i] = slot{assignment: a, out: out}
			return nil
		})
	}
	// Enrichment is total: every team lands on a real or fallback
	// strategy, so the group never reports an error.
	_ = g.Wait()

	o.waitMinSpin(started, token)
	if token.cancelled() {
		for _, t := range eligible {
			t.SetStatus(team.StatusWaiting)
		}
		o.saveRoster()
		slog.Info("global spin cancelled, statuses reverted", "teams", len(eligible))
		return
	}

	results := make([]TeamResult, len(eligible))
	for i, t := range eligible {
		t.Assign(slots[i].assignment)
		results[i] = TeamResult{
			TeamID:   t.ID,
			TeamName: t.Name,
			Output:   slots[i].out,
			Strategy: slots[i].assignment.Strategy,
		}
	}
	o.saveRoster()

	o.send(GlobalResultMsg{Results: results, RoundAdvanced: true})
}

// spinFor resolves one automated assignment: samples every category from
// the active pools, enriches, and composes the brief.
func (o *Orchestrator) spinFor(teamName string) (team.Assignment, challenge.Output) {
	p := o.poolsFn()

	sector := pools.Pick(p.Sectores)
	product := pools.Pick(p.Productos)
	style := pools.Pick(p.Estilos)
	audience := pools.Pick(p.Publicos)
	value := pools.Pick(p.Valores)
	territory := pools.Pick(p.Territorios)
	brand := challenge.BrandName()

	strat := o.enricher.Enrich(context.Background(), strategy.Input{
		Sector:    sector,
		Product:   product,
		Audience:  audience,
		Problem:   challenge.AutomatedProblem,
		Value:     value,
		Territory: territory,
	})

	out := challenge.ComposeAssigned(challenge.Fields{
		Team:      teamName,
		Sector:    sector,
		Product:   product,
		Audience:  audience,
		Value:     value,
		Style:     style,
		Territory: territory,
	}, brand)

	return team.Assignment{
		Sector:      sector,
		Product:     product,
		Style:       style,
		DisplayText: out.DisplayText,
		ExportText:  out.ExportText,
		Strategy:    strat,
	}, out
}

// waitMinSpin blocks until the minimum spin duration has elapsed since
// started, returning early if the spin is cancelled.
func (o *Orchestrator) waitMinSpin(started time.Time, token *opToken) {
	remaining := o.minSpin - time.Since(started)
	if remaining <= 0 {
		return
	}
	select {
	case <-time.After(remaining):
	case <-token.done:
	}
}

func (o *Orchestrator) saveRoster() {
	if o.saver == nil {
		return
	}
	if err := o.saver.SaveTeams(o.store.All()); err != nil {
		slog.Error("failed to persist roster", "error", err)
	}
}

func (o *Orchestrator) send(msg tea.Msg) {
	if o.sender == nil {
		slog.Warn("no sender configured, dropping message")
		return
	}
	o.sender.Send(msg)
}
