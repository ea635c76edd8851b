// Package ui is the terminal front end: a three-tab dashboard (equipos,
// variables, individual) with overlay dialogs for the roulette, scoring,
// challenge viewing and destructive-action confirmation.
package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nucleocolectivo/motorcreativo/internal/orchestrator"
	"github.com/nucleocolectivo/motorcreativo/internal/session"
	"github.com/nucleocolectivo/motorcreativo/internal/team"
)

type tab int

const (
	tabEquipos tab = iota
	tabVariables
	tabIndividual
)

type overlay int

const (
	overlayNone overlay = iota
	overlayRoulette
	overlayScoring
	overlayViewer
	overlayConfirm
)

// notifyLevel picks the footer style of a notification.
type notifyLevel int

const (
	notifyInfo notifyLevel = iota
	notifySuccess
	notifyError
)

// notifyMsg appends a line to the dashboard notification footer.
type notifyMsg struct {
	text  string
	level notifyLevel
}

func notify(text string, level notifyLevel) tea.Cmd {
	return func() tea.Msg { return notifyMsg{text: text, level: level} }
}

type AppModel struct {
	orch      *orchestrator.Orchestrator
	store     *team.Store
	sstore    *session.Store
	styles    Styles
	exportDir string

	activeTab     tab
	activeOverlay overlay

	dashboard dashboardModel
	variables variablesModel
	generator generatorModel

	roulette rouletteModel
	scoring  scoringModel
	viewer   viewerModel
	confirm  confirmModel

	width  int
	height int
}

func NewApp(s Styles, orch *orchestrator.Orchestrator, store *team.Store, sstore *session.Store, state session.State, exportDir string, timerDefault int) AppModel {
	return AppModel{
		orch:      orch,
		store:     store,
		sstore:    sstore,
		styles:    s,
		exportDir: exportDir,
		activeTab: tabEquipos,
		dashboard: newDashboard(s, orch, store, sstore, state, exportDir, timerDefault),
		variables: newVariables(s, sstore, exportDir),
		generator: newGenerator(s, orch),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.dashboard.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dashboard.width = msg.Width
		m.variables.width = msg.Width
		m.generator.width = msg.Width
		m.roulette.width = msg.Width
		return m, nil

	case tickMsg:
		// Keep the tick chain alive regardless of the active view so the
		// countdown keeps moving behind overlays.
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, tea.Batch(cmd, tickCmd())

	case notifyMsg:
		m.dashboard, _ = m.dashboard.Update(msg)
		return m, nil

	case orchestrator.ResultMsg:
		// Dashboard records the notification; the roulette shows the result.
		m.dashboard, _ = m.dashboard.Update(msg)
		if m.activeOverlay == overlayRoulette {
			var cmd tea.Cmd
			m.roulette, cmd = m.roulette.Update(msg)
			return m, cmd
		}
		return m, nil

	case orchestrator.GlobalResultMsg:
		m.dashboard, _ = m.dashboard.Update(msg)
		if m.activeOverlay == overlayRoulette {
			var cmd tea.Cmd
			m.roulette, cmd = m.roulette.Update(msg)
			return m, cmd
		}
		return m, nil

	case openRouletteMsg:
		m.activeOverlay = overlayRoulette
		m.roulette = newRoulette(m.styles, msg, m.width, m.exportDir)
		return m, m.roulette.Init()

	case rouletteClosedMsg:
		m.activeOverlay = overlayNone
		return m, nil

	case openScoringMsg:
		m.activeOverlay = overlayScoring
		m.scoring = newScoring(m.styles, msg.target)
		return m, m.scoring.Init()

	case scoringDoneMsg:
		m.activeOverlay = overlayNone
		if msg.saved {
			return m, tea.Batch(
				m.saveRoster(),
				notify("Calificación guardada: "+msg.teamName, notifySuccess),
			)
		}
		return m, nil

	case openViewerMsg:
		m.activeOverlay = overlayViewer
		m.viewer = newViewer(m.styles, msg.target, m.exportDir)
		return m, nil

	case viewerClosedMsg:
		m.activeOverlay = overlayNone
		return m, nil

	case openConfirmMsg:
		m.activeOverlay = overlayConfirm
		m.confirm = newConfirm(m.styles, msg)
		return m, nil

	case confirmCancelMsg:
		m.activeOverlay = overlayNone
		return m, nil

	case confirmedMsg:
		m.activeOverlay = overlayNone
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd
	}

	if m.activeOverlay != overlayNone {
		return m.updateOverlay(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % 3
			if m.activeTab == tabIndividual {
				return m, m.generator.Init()
			}
			return m, nil
		}
	}

	switch m.activeTab {
	case tabVariables:
		var cmd tea.Cmd
		m.variables, cmd = m.variables.Update(msg)
		return m, cmd
	case tabIndividual:
		var cmd tea.Cmd
		m.generator, cmd = m.generator.Update(msg)
		return m, cmd
	default:
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		return m, cmd
	}
}

func (m AppModel) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activeOverlay {
	case overlayRoulette:
		m.roulette, cmd = m.roulette.Update(msg)
	case overlayScoring:
		m.scoring, cmd = m.scoring.Update(msg)
	case overlayViewer:
		m.viewer, cmd = m.viewer.Update(msg)
	case overlayConfirm:
		m.confirm, cmd = m.confirm.Update(msg)
	}
	return m, cmd
}

// saveRoster persists the roster after a mutation made by an overlay.
func (m AppModel) saveRoster() tea.Cmd {
	return func() tea.Msg {
		if err := m.sstore.SaveTeams(m.store.All()); err != nil {
			return notifyMsg{text: "No se pudo guardar la sesión", level: notifyError}
		}
		return nil
	}
}

func (m AppModel) View() string {
	switch m.activeOverlay {
	case overlayRoulette:
		return m.frame(m.roulette.ViewContent())
	case overlayScoring:
		return m.frame(m.scoring.ViewContent())
	case overlayViewer:
		return m.frame(m.viewer.ViewContent())
	case overlayConfirm:
		return m.frame(m.confirm.ViewContent())
	}

	switch m.activeTab {
	case tabVariables:
		return m.frame(m.variables.ViewContent())
	case tabIndividual:
		return m.frame(m.generator.ViewContent())
	default:
		return m.frame(m.dashboard.ViewContent())
	}
}

func (m AppModel) frame(content string) string {
	maxWidth := m.width - 4
	if maxWidth < 40 {
		maxWidth = 80
	}
	return m.styles.Border.Width(maxWidth).Render(content)
}
