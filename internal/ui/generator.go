package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nucleocolectivo/motorcreativo/internal/orchestrator"
	"github.com/nucleocolectivo/motorcreativo/internal/pools"
)

type generatorRow int

const (
	rowSector generatorRow = iota
	rowTeamName
	rowAudience
	rowProblem
	rowTone
	rowValue
	rowTerritory
	generatorRows
)

// generatorModel is the manual-mode form: a sector selector plus the
// dependent option fields of that sector. Changing the sector resets every
// dependent field to its first option.
type generatorModel struct {
	styles Styles
	orch   *orchestrator.Orchestrator
	width  int

	cursor    generatorRow
	sectorIdx int
	nameInput textinput.Model

	audienceIdx  int
	problemIdx   int
	toneIdx      int
	valueIdx     int
	territoryIdx int

	err string
}

func newGenerator(s Styles, orch *orchestrator.Orchestrator) generatorModel {
	ni := textinput.New()
	ni.Placeholder = "nombre del equipo (opcional)"
	ni.CharLimit = 40

	return generatorModel{
		styles:    s,
		orch:      orch,
		nameInput: ni,
	}
}

func (m generatorModel) Init() tea.Cmd {
	if m.cursor == rowTeamName {
		return textinput.Blink
	}
	return nil
}

func (m generatorModel) sectorID() pools.SectorID {
	ids := pools.SectorIDs()
	return ids[m.sectorIdx%len(ids)]
}

func (m generatorModel) options() pools.SectorOptions {
	opts, _ := pools.Sector(m.sectorID())
	return opts
}

func (m *generatorModel) resetDependents() {
	m.audienceIdx = 0
	m.problemIdx = 0
	m.toneIdx = 0
	m.valueIdx = 0
	m.territoryIdx = 0
}

func cycle(idx, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((idx+delta)%n + n) % n
}

func (m generatorModel) Update(msg tea.Msg) (generatorModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.nameInput.Focused() {
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	m.err = ""
	opts := m.options()

	switch keyMsg.String() {
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m.syncFocus()

	case "down":
		if m.cursor < generatorRows-1 {
			m.cursor++
		}
		return m.syncFocus()

	case "left", "right":
		delta := 1
		if keyMsg.String() == "left" {
			delta = -1
		}
		switch m.cursor {
		case rowSector:
			m.sectorIdx = cycle(m.sectorIdx, delta, len(pools.SectorIDs()))
			m.resetDependents()
		case rowAudience:
			m.audienceIdx = cycle(m.audienceIdx, delta, len(opts.Publicos))
		case rowProblem:
			m.problemIdx = cycle(m.problemIdx, delta, len(opts.Problemas))
		case rowTone:
			m.toneIdx = cycle(m.toneIdx, delta, len(opts.Tonos))
		case rowValue:
			m.valueIdx = cycle(m.valueIdx, delta, len(opts.Valores))
		case rowTerritory:
			m.territoryIdx = cycle(m.territoryIdx, delta, len(opts.Territorios))
		case rowTeamName:
			if m.nameInput.Focused() {
				var cmd tea.Cmd
				m.nameInput, cmd = m.nameInput.Update(keyMsg)
				return m, cmd
			}
		}
		return m, nil

	case "enter":
		return m.launch(opts)

	default:
		if m.cursor == rowTeamName {
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(keyMsg)
			return m, cmd
		}
	}

	return m, nil
}

func (m generatorModel) syncFocus() (generatorModel, tea.Cmd) {
	if m.cursor == rowTeamName {
		m.nameInput.Focus()
		return m, textinput.Blink
	}
	m.nameInput.Blur()
	return m, nil
}

func (m generatorModel) launch(opts pools.SectorOptions) (generatorModel, tea.Cmd) {
	input := orchestrator.ManualInput{
		Sector:    m.sectorID(),
		TeamName:  strings.TrimSpace(m.nameInput.Value()),
		Audience:  pick(opts.Publicos, m.audienceIdx),
		Problem:   pick(opts.Problemas, m.problemIdx),
		Tone:      pick(opts.Tonos, m.toneIdx),
		Value:     pick(opts.Valores, m.valueIdx),
		Territory: pick(opts.Territorios, m.territoryIdx),
	}

	if err := m.orch.TriggerManual(input); err != nil {
		m.err = "La ruleta ya está girando"
		return m, nil
	}

	// Preview pools for the spinning view, scoped to the chosen sector.
	preview := pools.Pools{
		Sectores:  []string{opts.Label},
		Productos: opts.Productos,
		Estilos:   opts.Tonos,
	}
	orch := m.orch
	return m, func() tea.Msg {
		return openRouletteMsg{
			mode:      orchestrator.ModeManual,
			title:     "Generador Individual",
			pools:     preview,
			retrigger: func() error { return orch.TriggerManual(input) },
			cancel:    orch.Cancel,
		}
	}
}

func pick(values []string, idx int) string {
	if len(values) == 0 {
		return pools.Sentinel
	}
	return values[idx%len(values)]
}

func (m generatorModel) ViewContent() string {
	var b strings.Builder

	b.WriteString(m.styles.DialogTitle.Render("Generador Individual de Retos"))
	b.WriteString("\n\n")

	opts := m.options()
	rows := []struct {
		row   generatorRow
		label string
		value string
	}{
		{rowSector, "Sector", opts.Label},
		{rowTeamName, "Equipo", m.nameInput.View()},
		{rowAudience, "Público", pick(opts.Publicos, m.audienceIdx)},
		{rowProblem, "Problema", pick(opts.Problemas, m.problemIdx)},
		{rowTone, "Tono", pick(opts.Tonos, m.toneIdx)},
		{rowValue, "Valor", pick(opts.Valores, m.valueIdx)},
		{rowTerritory, "Territorio", pick(opts.Territorios, m.territoryIdx)},
	}

	for _, r := range rows {
		marker := "  "
		label := m.styles.DialogDim.Render(fmt.Sprintf("%-12s", r.label))
		value := r.value
		if r.row == m.cursor {
			marker = "> "
			label = m.styles.DialogActive.Render(fmt.Sprintf("%-12s", r.label))
			if r.row != rowTeamName {
				value = m.styles.DialogActive.Render(value)
			}
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n", marker, label, value))
	}

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("  " + m.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("  ↑/↓: campo │ ←/→: opción │ enter: generar │ tab: pestaña"))

	return b.String()
}
