package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nucleocolectivo/motorcreativo/internal/export"
	"github.com/nucleocolectivo/motorcreativo/internal/orchestrator"
	"github.com/nucleocolectivo/motorcreativo/internal/pools"
)

// previewInterval is the cadence of the cosmetic preview re-sampling while
// the roulette is spinning.
const previewInterval = 100 * time.Millisecond

// Placeholder words shown before the first preview tick lands.
var previewPlaceholders = [3]string{"Procesando...", "Conectando...", "Analizando..."}

type roulettePhase int

const (
	phaseSpinning roulettePhase = iota
	phaseResult
)

// openRouletteMsg opens the roulette overlay. The trigger call has already
// been accepted by the orchestrator when this message is emitted.
type openRouletteMsg struct {
	mode      orchestrator.Mode
	title     string
	pools     pools.Pools
	retrigger func() error
	cancel    func()
}

type rouletteClosedMsg struct{}

// previewTickMsg carries the spin sequence it was scheduled for, so a tick
// from an abandoned spin can never touch the current one.
type previewTickMsg struct {
	seq int
}

type rouletteModel struct {
	styles    Styles
	mode      orchestrator.Mode
	title     string
	pools     pools.Pools
	retrigger func() error
	cancel    func()
	exportDir string
	width     int

	phase   roulettePhase
	seq     int
	preview [3]string
	spin    spinner.Model
	info    string
	err     string

	result       *orchestrator.ResultMsg
	globalResult *orchestrator.GlobalResultMsg
}

func newRoulette(s Styles, msg openRouletteMsg, width int, exportDir string) rouletteModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Spinner

	return rouletteModel{
		styles:    s,
		mode:      msg.mode,
		title:     msg.title,
		pools:     msg.pools,
		retrigger: msg.retrigger,
		cancel:    msg.cancel,
		exportDir: exportDir,
		width:     width,
		phase:     phaseSpinning,
		preview:   previewPlaceholders,
		spin:      sp,
	}
}

func (m rouletteModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.previewTick())
}

func (m rouletteModel) previewTick() tea.Cmd {
	seq := m.seq
	return tea.Tick(previewInterval, func(time.Time) tea.Msg {
		return previewTickMsg{seq: seq}
	})
}

func (m rouletteModel) Update(msg tea.Msg) (rouletteModel, tea.Cmd) {
	switch msg := msg.(type) {
	case previewTickMsg:
		// Stale ticks from a previous spin die here; only the live
		// sequence keeps the chain going.
		if msg.seq != m.seq || m.phase != phaseSpinning {
			return m, nil
		}
		m.preview[0] = pools.Pick(m.pools.Sectores)
		m.preview[1] = pools.Pick(m.pools.Productos)
		m.preview[2] = pools.Pick(m.pools.Estilos)
		return m, m.previewTick()

	case spinner.TickMsg:
		if m.phase != phaseSpinning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case orchestrator.ResultMsg:
		m.phase = phaseResult
		m.result = &msg
		m.globalResult = nil
		return m, nil

	case orchestrator.GlobalResultMsg:
		m.phase = phaseResult
		m.globalResult = &msg
		m.result = nil
		return m, nil

	case tea.KeyMsg:
		m.err = ""
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m rouletteModel) updateKeys(msg tea.KeyMsg) (rouletteModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.phase == phaseSpinning && m.cancel != nil {
			m.cancel()
		}
		return m, func() tea.Msg { return rouletteClosedMsg{} }

	case "enter":
		if m.phase == phaseResult {
			return m, func() tea.Msg { return rouletteClosedMsg{} }
		}

	case "r":
		if m.phase != phaseResult {
			return m, nil
		}
		if err := m.retrigger(); err != nil {
			if errors.Is(err, orchestrator.ErrNoEligibleTeams) {
				return m, tea.Sequence(
					notify("No hay equipos esperando reto", notifyInfo),
					func() tea.Msg { return rouletteClosedMsg{} },
				)
			}
			return m, nil
		}
		m.seq++
		m.phase = phaseSpinning
		m.preview = previewPlaceholders
		m.result = nil
		m.globalResult = nil
		m.info = ""
		return m, tea.Batch(m.spin.Tick, m.previewTick())

	case "e":
		if m.phase != phaseResult || m.result == nil {
			return m, nil
		}
		strat := m.result.Strategy
		path, err := export.WriteReportFile(m.exportDir, m.result.Filename, export.Report{
			Title:      m.result.Title,
			ExportText: m.result.Output.ExportText,
			Strategy:   &strat,
		})
		if err != nil {
			m.err = "No se pudo exportar el reporte"
			return m, nil
		}
		m.info = "Reporte exportado: " + path
		return m, nil
	}

	return m, nil
}

func (m rouletteModel) ViewContent() string {
	var b strings.Builder

	b.WriteString(m.styles.DialogTitle.Render(m.title))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseSpinning:
		b.WriteString(fmt.Sprintf("  %s Girando la ruleta...\n\n", m.spin.View()))
		labels := [3]string{"Sector", "Producto", "Estilo"}
		for i, label := range labels {
			b.WriteString(fmt.Sprintf("  %-10s %s\n",
				m.styles.DialogDim.Render(label),
				m.styles.DialogActive.Render(m.preview[i])))
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("  esc: cancelar"))

	case phaseResult:
		if m.result != nil {
			b.WriteString(m.viewSingleResult())
		} else if m.globalResult != nil {
			b.WriteString(m.viewGlobalResult())
		}
	}

	if m.info != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Notification.Render("  " + m.info))
	}
	if m.err != "" {
		b.WriteString("\n\n")
		b.WriteString(m.styles.Error.Render("  " + m.err))
	}

	return b.String()
}

func (m rouletteModel) viewSingleResult() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("  " + m.result.Title))
	b.WriteString("\n\n")

	for _, line := range strings.Split(m.result.Output.DisplayText, "\n") {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Strategy.Render("  ANÁLISIS ESTRATÉGICO (IA):"))
	b.WriteString("\n")
	strat := m.result.Strategy
	b.WriteString(m.styles.Strategy.Render(fmt.Sprintf("  Misión: %s", strat.Mision)))
	b.WriteString("\n")
	b.WriteString(m.styles.Strategy.Render(fmt.Sprintf("  Visión: %s", strat.Vision)))
	b.WriteString("\n")
	b.WriteString(m.styles.Strategy.Render(fmt.Sprintf("  Diferenciador: %s", strat.Diferenciador)))
	b.WriteString("\n")
	b.WriteString(m.styles.Strategy.Render(fmt.Sprintf("  Impacto & ODS: %s", strat.ImpactoODS)))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("  r: relanzar │ e: exportar reporte │ enter/esc: cerrar"))

	return b.String()
}

func (m rouletteModel) viewGlobalResult() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render(fmt.Sprintf("  Retos asignados: %d", len(m.globalResult.Results))))
	b.WriteString("\n\n")

	for _, r := range m.globalResult.Results {
		b.WriteString(fmt.Sprintf("  • %s → %s\n",
			m.styles.DialogActive.Render(r.TeamName),
			r.Output.BrandName))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.DialogDim.Render("  Usa enter/ver reto en la tabla para el detalle de cada equipo."))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("  r: relanzar │ enter/esc: cerrar"))

	return b.String()
}
