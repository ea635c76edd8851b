package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nucleocolectivo/motorcreativo/internal/pools"
	"github.com/nucleocolectivo/motorcreativo/internal/session"
)

// variablesModel edits the active roulette pools: preset switching plus
// adding and removing values per category. Every change is persisted
// immediately; the orchestrator reads the saved pools on each spin.
type variablesModel struct {
	styles    Styles
	sstore    *session.Store
	exportDir string
	width     int

	pools    pools.Pools
	category int
	valueIdx int

	adding   bool
	addInput textinput.Model

	info string
	err  string
}

func newVariables(s Styles, sstore *session.Store, exportDir string) variablesModel {
	ai := textinput.New()
	ai.Placeholder = "nuevo valor"
	ai.CharLimit = 60

	return variablesModel{
		styles:    s,
		sstore:    sstore,
		exportDir: exportDir,
		pools:     sstore.LoadPools(),
		addInput:  ai,
	}
}

func (m variablesModel) categoryName() string {
	names := pools.CategoryNames()
	return names[m.category%len(names)]
}

func (m variablesModel) values() []string {
	return m.pools.Category(m.categoryName())
}

func (m *variablesModel) save() {
	if err := m.sstore.SavePools(m.pools); err != nil {
		m.err = "No se pudo guardar la configuración de variables"
	}
}

func (m *variablesModel) clampValueIdx() {
	if n := len(m.values()); m.valueIdx >= n {
		if n == 0 {
			m.valueIdx = 0
		} else {
			m.valueIdx = n - 1
		}
	}
}

func (m variablesModel) Update(msg tea.Msg) (variablesModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.adding {
			var cmd tea.Cmd
			m.addInput, cmd = m.addInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	m.err = ""
	m.info = ""

	if m.adding {
		switch keyMsg.String() {
		case "esc":
			m.adding = false
			m.addInput.SetValue("")
			m.addInput.Blur()
			return m, nil
		case "enter":
			value := strings.TrimSpace(m.addInput.Value())
			if value == "" {
				m.err = "El valor no puede estar vacío"
				return m, nil
			}
			name := m.categoryName()
			m.pools.SetCategory(name, append(m.pools.Category(name), value))
			m.save()
			m.adding = false
			m.addInput.SetValue("")
			m.addInput.Blur()
			m.info = fmt.Sprintf("Agregado a %s: %s", name, value)
			return m, nil
		default:
			var cmd tea.Cmd
			m.addInput, cmd = m.addInput.Update(keyMsg)
			return m, cmd
		}
	}

	switch keyMsg.String() {
	case "1", "2", "3":
		name := pools.PresetNames()[int(keyMsg.String()[0]-'1')]
		p, ok := pools.Preset(name)
		if !ok {
			return m, nil
		}
		m.pools = p
		m.valueIdx = 0
		m.save()
		m.info = "Preset activo: " + name

	case "j", "down":
		names := pools.CategoryNames()
		if m.category < len(names)-1 {
			m.category++
			m.valueIdx = 0
		}

	case "k", "up":
		if m.category > 0 {
			m.category--
			m.valueIdx = 0
		}

	case "h", "left":
		if m.valueIdx > 0 {
			m.valueIdx--
		}

	case "l", "right":
		if m.valueIdx < len(m.values())-1 {
			m.valueIdx++
		}

	case "a":
		m.adding = true
		m.addInput.Focus()
		return m, textinput.Blink

	case "w":
		path := filepath.Join(m.exportDir, "variables.yaml")
		if err := pools.SaveFile(path, m.pools); err != nil {
			m.err = "No se pudo exportar las variables"
			return m, nil
		}
		m.info = "Variables exportadas: " + path

	case "x":
		values := m.values()
		if len(values) == 0 {
			return m, nil
		}
		name := m.categoryName()
		removed := values[m.valueIdx]
		m.pools.SetCategory(name, append(values[:m.valueIdx:m.valueIdx], values[m.valueIdx+1:]...))
		m.clampValueIdx()
		m.save()
		m.info = fmt.Sprintf("Eliminado de %s: %s", name, removed)

	case "q":
		return m, tea.Quit
	}

	return m, nil
}

func (m variablesModel) ViewContent() string {
	var b strings.Builder

	b.WriteString(m.styles.DialogTitle.Render("Variables de la Ruleta"))
	b.WriteString("\n\n")

	b.WriteString(m.styles.DialogDim.Render("  Presets: 1 general · 2 tech · 3 social"))
	b.WriteString("\n\n")

	for i, name := range pools.CategoryNames() {
		marker := "  "
		label := m.styles.DialogDim.Render(fmt.Sprintf("%-12s", name))
		if i == m.category {
			marker = "> "
			label = m.styles.DialogActive.Render(fmt.Sprintf("%-12s", name))
		}

		values := m.pools.Category(name)
		var rendered []string
		for j, v := range values {
			if i == m.category && j == m.valueIdx {
				rendered = append(rendered, m.styles.Selected.Render(v))
			} else {
				rendered = append(rendered, v)
			}
		}
		line := strings.Join(rendered, " · ")
		if len(values) == 0 {
			line = m.styles.Error.Render("(vacío — la ruleta usará \"" + pools.Sentinel + "\")")
		}

		b.WriteString(fmt.Sprintf("  %s%s %s\n", marker, label, line))
	}

	if m.adding {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("  %s %s\n",
			m.styles.DialogActive.Render("Nuevo valor:"),
			m.addInput.View()))
	}

	if m.info != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Notification.Render("  " + m.info))
		b.WriteString("\n")
	}
	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("  " + m.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("  ↑/↓: categoría │ ←/→: valor │ a: agregar │ x: eliminar │ 1/2/3: preset │ w: exportar │ tab: pestaña │ q: salir"))

	return b.String()
}
