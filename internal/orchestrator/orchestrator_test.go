package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nucleocolectivo/motorcreativo/internal/pools"
	"github.com/nucleocolectivo/motorcreativo/internal/strategy"
	"github.com/nucleocolectivo/motorcreativo/internal/team"
)

type stubGenerator struct {
	result strategy.Result
	err    error
}

func (s *stubGenerator) Generate(ctx context.Context, in strategy.Input) (strategy.Result, error) {
	if s.err != nil {
		return strategy.Result{}, s.err
	}
	return s.result, nil
}

type captureSender struct {
	msgs chan tea.Msg
}

func newCaptureSender() *captureSender {
	return &captureSender{msgs: make(chan tea.Msg, 16)}
}

func (c *captureSender) Send(msg tea.Msg) {
	c.msgs <- msg
}

func (c *captureSender) wait(t *testing.T) tea.Msg {
	t.Helper()
	select {
	case msg := <-c.msgs:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func (c *captureSender) expectNone(t *testing.T) {
	t.Helper()
	select {
	case msg := <-c.msgs:
		t.Fatalf("unexpected message %T", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

type memorySaver struct {
	mu    sync.Mutex
	saves int
}

func (m *memorySaver) SaveTeams(teams []*team.Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	return nil
}

func (m *memorySaver) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func fixedPools() pools.Pools {
	return pools.Pools{
		Sectores:    []string{"Tecnología y Desarrollo"},
		Productos:   []string{"Una App Móvil"},
		Estilos:     []string{"Minimalista"},
		Publicos:    []string{"Jóvenes Creativos"},
		Valores:     []string{"Sostenibilidad"},
		Territorios: []string{"Medellín"},
	}
}

func newTestOrchestrator(gen strategy.Generator, opts ...Option) (*Orchestrator, *team.Store, *captureSender, *memorySaver) {
	store := team.NewStore()
	sender := newCaptureSender()
	saver := &memorySaver{}
	opts = append([]Option{WithMinSpin(0)}, opts...)
	o := New(store, strategy.NewClient(gen), fixedPools, saver, opts...)
	o.SetSender(sender)
	return o, store, sender, saver
}

func waitIdle(t *testing.T, o *Orchestrator) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for o.Busy() {
		if time.Now().After(deadline) {
			t.Fatal("orchestrator never released the spin lock")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestTriggerTeamAssignsOnlyTarget(t *testing.T) {
	gen := &stubGenerator{result: strategy.Result{
		Mision: "m", Vision: "v", Diferenciador: "d", ImpactoODS: "i",
	}}
	o, store, sender, _ := newTestOrchestrator(gen)

	first, _ := store.Add()
	second, _ := store.Add()

	if err := o.TriggerTeam(first.ID); err != nil {
		t.Fatalf("TriggerTeam() error = %v", err)
	}

	msg := sender.wait(t)
	result, ok := msg.(ResultMsg)
	if !ok {
		t.Fatalf("got message %T, want ResultMsg", msg)
	}
	if result.Mode != ModeTeam {
		t.Errorf("Mode = %v, want team", result.Mode)
	}
	if result.TeamID != first.ID {
		t.Errorf("TeamID = %d, want %d", result.TeamID, first.ID)
	}
	if result.Title != "Reto Asignado: Equipo 1" {
		t.Errorf("Title = %q", result.Title)
	}
	if result.Filename != "Reto_Equipo 1" {
		t.Errorf("Filename = %q", result.Filename)
	}
	if result.Strategy.Mision != "m" {
		t.Errorf("Strategy.Mision = %q, want stub passthrough", result.Strategy.Mision)
	}

	waitIdle(t, o)
	if got := first.Status(); got != team.StatusAssigned {
		t.Errorf("target status = %q, want %q", got, team.StatusAssigned)
	}
	if first.Sector() != "Tecnología y Desarrollo" {
		t.Errorf("Sector = %q", first.Sector())
	}
	if first.Strategy() == nil {
		t.Error("assigned team has no strategy")
	}
	if got := second.Status(); got != team.StatusWaiting {
		t.Errorf("bystander status = %q, want %q", got, team.StatusWaiting)
	}
}

func TestTriggerTeamUnknownID(t *testing.T) {
	o, _, _, _ := newTestOrchestrator(nil)
	if err := o.TriggerTeam(42); !errors.Is(err, ErrTeamNotFound) {
		t.Errorf("TriggerTeam(42) error = %v, want ErrTeamNotFound", err)
	}
	if o.Busy() {
		t.Error("failed trigger left the lock held")
	}
}

func TestTriggerGlobalNoEligibleTeams(t *testing.T) {
	o, store, sender, _ := newTestOrchestrator(nil)

	graded, _ := store.Add()
	graded.SetStatus(team.StatusGraded)

	if err := o.TriggerGlobal(); !errors.Is(err, ErrNoEligibleTeams) {
		t.Fatalf("TriggerGlobal() error = %v, want ErrNoEligibleTeams", err)
	}
	if o.Busy() {
		t.Error("empty batch left the lock held")
	}
	sender.expectNone(t)
}

func TestTriggerGlobalAssignsAllWaiting(t *testing.T) {
	o, store, sender, _ := newTestOrchestrator(nil)

	first, _ := store.Add()
	second, _ := store.Add()
	third, _ := store.Add()
	third.SetStatus(team.StatusAssigned)

	if err := o.TriggerGlobal(); err != nil {
		t.Fatalf("TriggerGlobal() error = %v", err)
	}

	msg := sender.wait(t)
	result, ok := msg.(GlobalResultMsg)
	if !ok {
		t.Fatalf("got message %T, want GlobalResultMsg", msg)
	}
	if len(result.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(result.Results))
	}
	if !result.RoundAdvanced {
		t.Error("RoundAdvanced = false, want true")
	}
	if result.Results[0].TeamID != first.ID || result.Results[1].TeamID != second.ID {
		t.Errorf("result order = %d,%d, want %d,%d",
			result.Results[0].TeamID, result.Results[1].TeamID, first.ID, second.ID)
	}

	waitIdle(t, o)
	if first.Status() != team.StatusAssigned || second.Status() != team.StatusAssigned {
		t.Errorf("statuses = %q,%q, want both assigned", first.Status(), second.Status())
	}
	if got := third.Sector(); got != "-" {
		t.Errorf("already-assigned team was respun, Sector = %q", got)
	}
}

func TestTriggerWhileBusyIsRejected(t *testing.T) {
	o, store, sender, _ := newTestOrchestrator(nil, WithMinSpin(5*time.Second))

	first, _ := store.Add()

	if err := o.TriggerTeam(first.ID); err != nil {
		t.Fatalf("TriggerTeam() error = %v", err)
	}
	if err := o.TriggerGlobal(); !errors.Is(err, ErrBusy) {
		t.Errorf("TriggerGlobal() during spin error = %v, want ErrBusy", err)
	}
	if err := o.TriggerTeam(first.ID); !errors.Is(err, ErrBusy) {
		t.Errorf("TriggerTeam() during spin error = %v, want ErrBusy", err)
	}

	o.Cancel()
	waitIdle(t, o)
	sender.expectNone(t)
}

func TestCancelRevertsGeneratingStatus(t *testing.T) {
	o, store, sender, _ := newTestOrchestrator(nil, WithMinSpin(5*time.Second))

	first, _ := store.Add()

	if err := o.TriggerTeam(first.ID); err != nil {
		t.Fatalf("TriggerTeam() error = %v", err)
	}
	if got := first.Status(); got != team.StatusGenerating {
		t.Fatalf("status during spin = %q, want %q", got, team.StatusGenerating)
	}

	o.Cancel()
	waitIdle(t, o)

	if got := first.Status(); got != team.StatusWaiting {
		t.Errorf("status after cancel = %q, want %q", got, team.StatusWaiting)
	}
	if first.Strategy() != nil {
		t.Error("cancelled spin wrote a strategy")
	}
	sender.expectNone(t)
}

func TestCancelGlobalRevertsAllGenerating(t *testing.T) {
	o, store, sender, _ := newTestOrchestrator(nil, WithMinSpin(5*time.Second))

	first, _ := store.Add()
	second, _ := store.Add()

	if err := o.TriggerGlobal(); err != nil {
		t.Fatalf("TriggerGlobal() error = %v", err)
	}

	o.Cancel()
	waitIdle(t, o)

	if first.Status() != team.StatusWaiting || second.Status() != team.StatusWaiting {
		t.Errorf("statuses after cancel = %q,%q, want both waiting", first.Status(), second.Status())
	}
	sender.expectNone(t)
}

func TestTriggerManualComposesResult(t *testing.T) {
	gen := &stubGenerator{result: strategy.Result{
		Mision: "m", Vision: "v", Diferenciador: "d", ImpactoODS: "i",
	}}
	o, store, sender, saver := newTestOrchestrator(gen)

	err := o.TriggerManual(ManualInput{
		Sector:    pools.SectorTecnologia,
		TeamName:  "Ayni",
		Audience:  "Comunidades Rurales",
		Problem:   "Brecha digital en zonas apartadas",
		Tone:      "Épico / Inspirador",
		Value:     "Accesibilidad",
		Territory: "Antioquia",
	})
	if err != nil {
		t.Fatalf("TriggerManual() error = %v", err)
	}

	msg := sender.wait(t)
	result, ok := msg.(ResultMsg)
	if !ok {
		t.Fatalf("got message %T, want ResultMsg", msg)
	}
	if result.Mode != ModeManual {
		t.Errorf("Mode = %v, want manual", result.Mode)
	}
	if result.Title != "Reto Individual Generado" {
		t.Errorf("Title = %q", result.Title)
	}
	if result.Filename != "Reto_Ayni" {
		t.Errorf("Filename = %q", result.Filename)
	}
	if !strings.Contains(result.Output.DisplayText, "Equipo: Ayni") {
		t.Errorf("display text missing team name:\n%s", result.Output.DisplayText)
	}
	if !strings.Contains(result.Output.DisplayText, "Brecha digital en zonas apartadas") {
		t.Errorf("display text missing manual problem:\n%s", result.Output.DisplayText)
	}

	waitIdle(t, o)
	if store.Len() != 0 {
		t.Error("manual spin mutated the roster")
	}
	if saver.count() != 0 {
		t.Errorf("manual spin persisted the roster %d times", saver.count())
	}
}

func TestTriggerManualWithoutTeamName(t *testing.T) {
	o, _, sender, _ := newTestOrchestrator(nil)

	err := o.TriggerManual(ManualInput{
		Sector:   pools.SectorSocial,
		Audience: "Familias",
		Problem:  "Desplazamiento forzado",
		Tone:     "Serio",
		Value:    "Dignidad",
	})
	if err != nil {
		t.Fatalf("TriggerManual() error = %v", err)
	}

	result := sender.wait(t).(ResultMsg)
	if result.Filename != "Reto_Creativo" {
		t.Errorf("Filename = %q, want generic default", result.Filename)
	}
	if !strings.Contains(result.Output.DisplayText, "Sin nombre") {
		t.Errorf("display text missing the no-team placeholder:\n%s", result.Output.DisplayText)
	}
}

func TestTriggerManualUnknownSector(t *testing.T) {
	o, _, _, _ := newTestOrchestrator(nil)
	if err := o.TriggerManual(ManualInput{Sector: "gastronomia"}); err == nil {
		t.Fatal("TriggerManual() with unknown sector succeeded")
	}
	if o.Busy() {
		t.Error("failed trigger left the lock held")
	}
}

func TestGeneratorFailureStillAssigns(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	o, store, sender, _ := newTestOrchestrator(gen)

	first, _ := store.Add()

	if err := o.TriggerTeam(first.ID); err != nil {
		t.Fatalf("TriggerTeam() error = %v", err)
	}

	result := sender.wait(t).(ResultMsg)
	if !strings.HasPrefix(result.Strategy.Mision, "Desarrollar ") {
		t.Errorf("Mision = %q, want fallback narrative", result.Strategy.Mision)
	}

	waitIdle(t, o)
	if got := first.Status(); got != team.StatusAssigned {
		t.Errorf("status = %q, want %q even when generation fails", got, team.StatusAssigned)
	}
}

func TestRosterPersistedAfterAssignment(t *testing.T) {
	o, store, sender, saver := newTestOrchestrator(nil)

	first, _ := store.Add()

	if err := o.TriggerTeam(first.ID); err != nil {
		t.Fatalf("TriggerTeam() error = %v", err)
	}
	sender.wait(t)
	waitIdle(t, o)

	// One save when the team enters Generando, one when the result lands.
	if got := saver.count(); got != 2 {
		t.Errorf("saver called %d times, want 2", got)
	}
}
