package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nucleocolectivo/motorcreativo/internal/export"
	"github.com/nucleocolectivo/motorcreativo/internal/orchestrator"
	"github.com/nucleocolectivo/motorcreativo/internal/session"
	"github.com/nucleocolectivo/motorcreativo/internal/team"
)

// timerDangerThreshold switches the countdown to the danger style.
const timerDangerThreshold = 5 * 60

const maxNotifications = 10

type notification struct {
	text  string
	time  time.Time
	style lipgloss.Style
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type dashboardModel struct {
	store        *team.Store
	orch         *orchestrator.Orchestrator
	sstore       *session.Store
	state        session.State
	exportDir    string
	timerDefault int

	cursor        int
	notifications []notification
	width         int
	err           string
	styles        Styles
}

func newDashboard(s Styles, orch *orchestrator.Orchestrator, store *team.Store, sstore *session.Store, state session.State, exportDir string, timerDefault int) dashboardModel {
	if timerDefault <= 0 {
		timerDefault = session.DefaultTimerSeconds
	}
	return dashboardModel{
		store:        store,
		orch:         orch,
		sstore:       sstore,
		state:        state,
		exportDir:    exportDir,
		timerDefault: timerDefault,
		styles:       s,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tickCmd()
}

func (m *dashboardModel) notify(text string, level notifyLevel) {
	style := m.styles.Notification
	switch level {
	case notifySuccess:
		style = m.styles.Graded
	case notifyError:
		style = m.styles.Error
	}
	m.notifications = append(m.notifications, notification{
		text:  text,
		time:  time.Now(),
		style: style,
	})
	if len(m.notifications) > maxNotifications {
		m.notifications = m.notifications[len(m.notifications)-maxNotifications:]
	}
}

func (m *dashboardModel) saveState() {
	if err := m.sstore.SaveState(m.state); err != nil {
		m.notify("No se pudo guardar la sesión", notifyError)
	}
}

func (m *dashboardModel) saveTeams() {
	if err := m.sstore.SaveTeams(m.store.All()); err != nil {
		m.notify("No se pudo guardar la sesión", notifyError)
	}
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.state.Started && m.state.TimerSeconds > 0 {
			m.state.TimerSeconds--
			if m.state.TimerSeconds == 0 {
				m.state.Started = false
				m.notify("¡Tiempo Finalizado!", notifyError)
				m.saveState()
			}
		}
		return m, nil

	case notifyMsg:
		m.notify(msg.text, msg.level)
		return m, nil

	case orchestrator.ResultMsg:
		if msg.Mode == orchestrator.ModeTeam {
			m.notify(msg.Title, notifySuccess)
		} else {
			m.notify("Reto individual generado", notifyInfo)
		}
		return m, nil

	case orchestrator.GlobalResultMsg:
		m.notify(fmt.Sprintf("Ronda global completada: %d retos asignados", len(msg.Results)), notifySuccess)
		if msg.RoundAdvanced {
			m.state.Round++
			m.saveState()
		}
		return m, nil

	case confirmedMsg:
		switch msg.kind {
		case confirmDeleteTeam:
			m.store.Remove(msg.teamID)
			if m.cursor >= m.store.Len() && m.cursor > 0 {
				m.cursor = m.store.Len() - 1
			}
			m.saveTeams()
			m.notify("Equipo eliminado: "+msg.teamName, notifyInfo)
		case confirmResetSession:
			m.store.Clear()
			m.cursor = 0
			m.state = session.DefaultState()
			m.state.TimerSeconds = m.timerDefault
			m.saveTeams()
			m.saveState()
			m.notify("Sesión reiniciada", notifyInfo)
		}
		return m, nil

	case tea.KeyMsg:
		m.err = ""
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m dashboardModel) updateKeys(msg tea.KeyMsg) (dashboardModel, tea.Cmd) {
	teams := m.store.Ranked()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(teams)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "a":
		t, err := m.store.Add()
		if err != nil {
			m.err = fmt.Sprintf("Máximo %d equipos por sesión", team.MaxTeams)
			return m, nil
		}
		m.saveTeams()
		m.notify("Equipo agregado: "+t.Name, notifyInfo)

	case "x":
		if t, ok := m.selected(teams); ok {
			return m, func() tea.Msg {
				return openConfirmMsg{
					kind:     confirmDeleteTeam,
					teamID:   t.ID,
					teamName: t.Name,
				}
			}
		}

	case "enter", "v":
		if t, ok := m.selected(teams); ok {
			switch t.Status() {
			case team.StatusAssigned, team.StatusGraded:
				return m, func() tea.Msg { return openViewerMsg{target: t} }
			default:
				m.err = "Este equipo aún no tiene reto asignado"
			}
		}

	case "c":
		if t, ok := m.selected(teams); ok {
			switch t.Status() {
			case team.StatusAssigned, team.StatusGraded:
				return m, func() tea.Msg { return openScoringMsg{target: t} }
			default:
				m.err = "Solo se puede calificar un equipo con reto asignado"
			}
		}

	case "r":
		if t, ok := m.selected(teams); ok {
			if t.Status() != team.StatusWaiting {
				m.err = "El equipo ya tiene un reto asignado"
				return m, nil
			}
			return m, m.triggerTeam(t)
		}

	case "g":
		return m, m.triggerGlobal()

	case "e":
		path, err := export.WriteRankingFile(m.exportDir, teams, m.state.Round)
		if err != nil {
			if errors.Is(err, export.ErrNoData) {
				m.err = "No hay datos para exportar"
			} else {
				m.err = "No se pudo exportar el ranking"
			}
			return m, nil
		}
		m.notify("Ranking exportado: "+path, notifySuccess)

	case "s":
		if m.state.TimerSeconds > 0 {
			m.state.Started = !m.state.Started
			m.saveState()
		}

	case "t":
		m.state.Started = false
		m.state.TimerSeconds = m.timerDefault
		m.saveState()
		m.notify("Temporizador reiniciado", notifyInfo)

	case "R":
		return m, func() tea.Msg {
			return openConfirmMsg{kind: confirmResetSession}
		}
	}

	return m, nil
}

func (m dashboardModel) selected(teams []*team.Team) (*team.Team, bool) {
	if len(teams) == 0 || m.cursor >= len(teams) {
		return nil, false
	}
	return teams[m.cursor], true
}

func (m dashboardModel) triggerTeam(t *team.Team) tea.Cmd {
	id := t.ID
	if err := m.orch.TriggerTeam(id); err != nil {
		return notify("La ruleta ya está girando", notifyError)
	}
	return func() tea.Msg {
		return openRouletteMsg{
			mode:      orchestrator.ModeTeam,
			title:     "Ruleta: " + t.Name,
			pools:     m.sstore.LoadPools(),
			retrigger: func() error { return m.orch.TriggerTeam(id) },
			cancel:    m.orch.Cancel,
		}
	}
}

func (m dashboardModel) triggerGlobal() tea.Cmd {
	if err := m.orch.TriggerGlobal(); err != nil {
		if errors.Is(err, orchestrator.ErrNoEligibleTeams) {
			return notify("No hay equipos esperando reto", notifyInfo)
		}
		return notify("La ruleta ya está girando", notifyError)
	}
	return func() tea.Msg {
		return openRouletteMsg{
			mode:      orchestrator.ModeGlobal,
			title:     "Ruleta Global",
			pools:     m.sstore.LoadPools(),
			retrigger: m.orch.TriggerGlobal,
			cancel:    m.orch.Cancel,
		}
	}
}

func (m dashboardModel) stats() (active, graded int) {
	for _, t := range m.store.All() {
		switch t.Status() {
		case team.StatusGraded:
			graded++
			active++
		case team.StatusAssigned, team.StatusGenerating:
			active++
		}
	}
	return active, graded
}

func (m dashboardModel) styledStatus(s team.Status) string {
	switch s {
	case team.StatusWaiting:
		return m.styles.Waiting.Render(string(s))
	case team.StatusGenerating:
		return m.styles.Generating.Render(string(s))
	case team.StatusAssigned:
		return m.styles.Assigned.Render(string(s))
	case team.StatusGraded:
		return m.styles.Graded.Render(string(s))
	}
	return string(s)
}

func (m dashboardModel) ViewContent() string {
	var b strings.Builder

	b.WriteString(m.styles.Logo.Render(renderLogo(m.width - 8)))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Title.Render("Motor Creativo — Núcleo Colectivo"))
	b.WriteString("\n")

	timerStyle := m.styles.Timer
	if m.state.TimerSeconds < timerDangerThreshold {
		timerStyle = m.styles.TimerDanger
	}
	clock := session.FormatTimer(m.state.TimerSeconds)
	if !m.state.Started {
		clock += " ⏸"
	}
	active, graded := m.stats()
	b.WriteString(fmt.Sprintf("  Ronda %d │ %s │ Activos: %d · Calificados: %d · Total: %d",
		m.state.Round, timerStyle.Render(clock), active, graded, m.store.Len()))
	b.WriteString("\n\n")

	teams := m.store.Ranked()
	if len(teams) == 0 {
		b.WriteString(m.styles.DialogDim.Render("  Sin equipos. Presiona a para agregar uno."))
		b.WriteString("\n")
	} else {
		header := fmt.Sprintf("  %-4s %-14s %-26s %-22s %-16s %-5s", "#", "Equipo", "Sector", "Producto", "Estado", "Total")
		b.WriteString(m.styles.Header.Render(header))
		b.WriteString("\n")

		for i, t := range teams {
			snap := t.Snapshot()

			status := m.styledStatus(snap.Status)
			// Pad styled status to 16 visual characters (fmt %-16s counts
			// bytes which breaks with ANSI escape codes from lipgloss).
			if w := lipgloss.Width(status); w < 16 {
				status += strings.Repeat(" ", 16-w)
			}

			row := fmt.Sprintf("  %-4d %-14s %-26s %-22s %s %-5d",
				i+1,
				truncate(t.Name, 14),
				truncate(snap.Sector, 26),
				truncate(snap.Product, 22),
				status,
				snap.Scores.Total(),
			)

			if i == m.cursor {
				row = m.styles.Selected.Render(row)
			}

			b.WriteString(row)
			b.WriteString("\n")
		}
	}

	// Notifications (newest first)
	if len(m.notifications) > 0 {
		b.WriteString("\n")
		b.WriteString(m.styles.Header.Render("  ── Avisos ──"))
		b.WriteString("\n")
		for i := len(m.notifications) - 1; i >= 0; i-- {
			n := m.notifications[i]
			ts := n.time.Format("15:04")
			b.WriteString(n.style.Render(fmt.Sprintf("  %s %s", ts, n.text)))
			b.WriteString("\n")
		}
	}

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("  " + m.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("  a: agregar │ x: eliminar │ enter: ver reto │ c: calificar │ r: ruleta equipo │ g: ruleta global │ e: exportar CSV │ s: timer │ t: reiniciar timer │ R: reiniciar sesión │ tab: pestaña │ q: salir"))

	return b.String()
}

func truncate(s string, max int) string {
	if lipgloss.Width(s) <= max {
		return s
	}
	r := []rune(s)
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
