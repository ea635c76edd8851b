package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nucleocolectivo/motorcreativo/internal/config"
	"github.com/nucleocolectivo/motorcreativo/internal/orchestrator"
	"github.com/nucleocolectivo/motorcreativo/internal/pools"
	"github.com/nucleocolectivo/motorcreativo/internal/session"
	"github.com/nucleocolectivo/motorcreativo/internal/strategy"
	"github.com/nucleocolectivo/motorcreativo/internal/team"
)

func testStyles() Styles {
	return NewStyles(config.Default().Colors)
}

func newTestDashboard(t *testing.T) (dashboardModel, *team.Store) {
	t.Helper()
	store := team.NewStore()
	sstore := session.NewStore(t.TempDir())
	orch := orchestrator.New(store, strategy.NewClient(nil), pools.General, sstore, orchestrator.WithMinSpin(0))
	m := newDashboard(testStyles(), orch, store, sstore, session.DefaultState(), t.TempDir(), 0)
	m.width = 100
	return m, store
}

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	panic("unknown key " + s)
}

func TestDashboardAddTeam(t *testing.T) {
	m, store := newTestDashboard(t)

	m, _ = m.Update(key("a"))

	if store.Len() != 1 {
		t.Fatalf("store.Len() = %d, want 1", store.Len())
	}
	if len(m.notifications) != 1 {
		t.Fatalf("len(notifications) = %d, want 1", len(m.notifications))
	}
	if !strings.Contains(m.notifications[0].text, "Equipo 1") {
		t.Errorf("notification = %q, want it to name the team", m.notifications[0].text)
	}
}

func TestDashboardSeventhAddRejected(t *testing.T) {
	m, store := newTestDashboard(t)

	for i := 0; i < 7; i++ {
		m, _ = m.Update(key("a"))
	}

	if store.Len() != team.MaxTeams {
		t.Fatalf("store.Len() = %d, want %d", store.Len(), team.MaxTeams)
	}
	if m.err == "" {
		t.Error("seventh add produced no user-visible rejection")
	}
}

func TestDashboardNotificationCap(t *testing.T) {
	m, _ := newTestDashboard(t)

	for i := 0; i < 15; i++ {
		m, _ = m.Update(notifyMsg{text: fmt.Sprintf("aviso %d", i)})
	}

	if len(m.notifications) != maxNotifications {
		t.Fatalf("len(notifications) = %d, want %d", len(m.notifications), maxNotifications)
	}
	if m.notifications[len(m.notifications)-1].text != "aviso 14" {
		t.Errorf("newest notification = %q, want aviso 14", m.notifications[len(m.notifications)-1].text)
	}
}

func TestDashboardTimerCountdown(t *testing.T) {
	m, _ := newTestDashboard(t)
	m.state.Started = true
	m.state.TimerSeconds = 2

	m, _ = m.Update(tickMsg(time.Now()))
	if m.state.TimerSeconds != 1 {
		t.Fatalf("TimerSeconds = %d after one tick, want 1", m.state.TimerSeconds)
	}

	m, _ = m.Update(tickMsg(time.Now()))
	if m.state.TimerSeconds != 0 {
		t.Fatalf("TimerSeconds = %d, want 0", m.state.TimerSeconds)
	}
	if m.state.Started {
		t.Error("timer still running at zero")
	}

	found := false
	for _, n := range m.notifications {
		if n.text == "¡Tiempo Finalizado!" {
			found = true
		}
	}
	if !found {
		t.Error("no time-up notification")
	}
}

func TestDashboardTimerPausedDoesNotCount(t *testing.T) {
	m, _ := newTestDashboard(t)
	m.state.Started = false
	m.state.TimerSeconds = 60

	m, _ = m.Update(tickMsg(time.Now()))
	if m.state.TimerSeconds != 60 {
		t.Errorf("paused timer moved to %d", m.state.TimerSeconds)
	}
}

func TestDashboardGlobalResultAdvancesRound(t *testing.T) {
	m, _ := newTestDashboard(t)

	m, _ = m.Update(orchestrator.GlobalResultMsg{
		Results:       []orchestrator.TeamResult{{TeamID: 1, TeamName: "Equipo 1"}},
		RoundAdvanced: true,
	})

	if m.state.Round != 2 {
		t.Errorf("Round = %d, want 2", m.state.Round)
	}
}

func TestDashboardResetSession(t *testing.T) {
	m, store := newTestDashboard(t)
	m, _ = m.Update(key("a"))
	m.state.Round = 3
	m.state.TimerSeconds = 10

	m, _ = m.Update(confirmedMsg{kind: confirmResetSession})

	if store.Len() != 0 {
		t.Errorf("store.Len() = %d after reset, want 0", store.Len())
	}
	if m.state.Round != 1 {
		t.Errorf("Round = %d after reset, want 1", m.state.Round)
	}
	if m.state.TimerSeconds != session.DefaultTimerSeconds {
		t.Errorf("TimerSeconds = %d after reset, want %d", m.state.TimerSeconds, session.DefaultTimerSeconds)
	}
}

func TestDashboardDeleteTeamConfirmFlow(t *testing.T) {
	m, store := newTestDashboard(t)
	m, _ = m.Update(key("a"))

	_, cmd := m.Update(key("x"))
	if cmd == nil {
		t.Fatal("delete key produced no command")
	}
	msg, ok := cmd().(openConfirmMsg)
	if !ok {
		t.Fatalf("got %T, want openConfirmMsg", cmd())
	}
	if msg.kind != confirmDeleteTeam || msg.teamName != "Equipo 1" {
		t.Errorf("confirm msg = %+v", msg)
	}

	m, _ = m.Update(confirmedMsg{kind: confirmDeleteTeam, teamID: msg.teamID, teamName: msg.teamName})
	if store.Len() != 0 {
		t.Errorf("store.Len() = %d after confirmed delete, want 0", store.Len())
	}
}

func TestDashboardViewWaitingTeamRejected(t *testing.T) {
	m, _ := newTestDashboard(t)
	m, _ = m.Update(key("a"))

	m, cmd := m.Update(key("enter"))
	if cmd != nil {
		t.Fatal("viewing a waiting team opened something")
	}
	if m.err == "" {
		t.Error("no rejection message for viewing a waiting team")
	}

	m, cmd = m.Update(key("c"))
	if cmd != nil {
		t.Fatal("scoring a waiting team opened something")
	}
	if m.err == "" {
		t.Error("no rejection message for scoring a waiting team")
	}
}

func TestDashboardViewRendersRanking(t *testing.T) {
	m, store := newTestDashboard(t)
	first, _ := store.Add()
	second, _ := store.Add()
	first.Grade(team.Scores{Innovacion: 1}, "")
	second.Grade(team.Scores{Innovacion: 5}, "")

	view := m.ViewContent()

	// Higher total renders first.
	if strings.Index(view, "Equipo 2") > strings.Index(view, "Equipo 1") {
		t.Error("ranking order not by descending total")
	}
	if !strings.Contains(view, "Ronda 1") {
		t.Error("header missing round counter")
	}
}
