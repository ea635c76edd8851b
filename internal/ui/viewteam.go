package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nucleocolectivo/motorcreativo/internal/export"
	"github.com/nucleocolectivo/motorcreativo/internal/team"
)

type openViewerMsg struct {
	target *team.Team
}

type viewerClosedMsg struct{}

// viewerModel shows one team's assigned challenge and strategy, with a
// report export shortcut.
type viewerModel struct {
	styles    Styles
	target    *team.Team
	exportDir string

	info string
	err  string
}

func newViewer(s Styles, target *team.Team, exportDir string) viewerModel {
	return viewerModel{
		styles:    s,
		target:    target,
		exportDir: exportDir,
	}
}

func (m viewerModel) Update(msg tea.Msg) (viewerModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.err = ""

	switch keyMsg.String() {
	case "esc", "enter", "q":
		return m, func() tea.Msg { return viewerClosedMsg{} }

	case "e":
		path, err := export.WriteReportFile(m.exportDir, "Reto_"+m.target.Name, export.TeamReport(m.target))
		if err != nil {
			m.err = "No se pudo exportar el reporte"
			return m, nil
		}
		m.info = "Reporte exportado: " + path
	}

	return m, nil
}

func (m viewerModel) ViewContent() string {
	var b strings.Builder
	snap := m.target.Snapshot()

	b.WriteString(m.styles.DialogTitle.Render("Reto de " + m.target.Name))
	b.WriteString("\n\n")

	for _, line := range strings.Split(snap.DisplayText, "\n") {
		b.WriteString("  " + line + "\n")
	}

	if snap.Strategy != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Strategy.Render("  ANÁLISIS ESTRATÉGICO (IA):"))
		b.WriteString("\n")
		b.WriteString(m.styles.Strategy.Render("  Misión: " + snap.Strategy.Mision))
		b.WriteString("\n")
		b.WriteString(m.styles.Strategy.Render("  Visión: " + snap.Strategy.Vision))
		b.WriteString("\n")
		b.WriteString(m.styles.Strategy.Render("  Diferenciador: " + snap.Strategy.Diferenciador))
		b.WriteString("\n")
		b.WriteString(m.styles.Strategy.Render("  Impacto & ODS: " + snap.Strategy.ImpactoODS))
		b.WriteString("\n")
	}

	if snap.Status == team.StatusGraded {
		b.WriteString("\n")
		b.WriteString(m.styles.Header.Render(fmt.Sprintf("  PUNTAJE: %d / 25", snap.Scores.Total())))
		b.WriteString("\n")
		if snap.Feedback != "" {
			b.WriteString(m.styles.DialogDim.Render("  Feedback: " + snap.Feedback))
			b.WriteString("\n")
		}
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
	b.WriteString(m.styles.Help.Render("  e: exportar reporte │ esc: cerrar"))

	return b.String()
}
