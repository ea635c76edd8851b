package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmKind int

const (
	confirmDeleteTeam confirmKind = iota
	confirmResetSession
)

type openConfirmMsg struct {
	kind     confirmKind
	teamID   int
	teamName string
}

// confirmedMsg is emitted when the user accepts; the dashboard executes the
// action.
type confirmedMsg struct {
	kind     confirmKind
	teamID   int
	teamName string
}

type confirmCancelMsg struct{}

// confirmModel is the blocking prompt in front of destructive actions.
type confirmModel struct {
	styles   Styles
	kind     confirmKind
	teamID   int
	teamName string
}

func newConfirm(s Styles, msg openConfirmMsg) confirmModel {
	return confirmModel{
		styles:   s,
		kind:     msg.kind,
		teamID:   msg.teamID,
		teamName: msg.teamName,
	}
}

func (m confirmModel) Update(msg tea.Msg) (confirmModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "enter":
		return m, func() tea.Msg {
			return confirmedMsg{kind: m.kind, teamID: m.teamID, teamName: m.teamName}
		}
	case "n", "esc":
		return m, func() tea.Msg { return confirmCancelMsg{} }
	}

	return m, nil
}

func (m confirmModel) ViewContent() string {
	var b strings.Builder

	switch m.kind {
	case confirmDeleteTeam:
		b.WriteString(m.styles.DialogTitle.Render("Eliminar Equipo"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Equipo: %s\n\n", m.teamName))
		b.WriteString(m.styles.Error.Render("  Se perderán su reto, sus puntajes y su feedback."))
	case confirmResetSession:
		b.WriteString(m.styles.DialogTitle.Render("Reiniciar Sesión"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.DialogActive.Render("  Esto hará:"))
		b.WriteString("\n")
		b.WriteString("    - Eliminar todos los equipos\n")
		b.WriteString("    - Volver a la ronda 1\n")
		b.WriteString("    - Reiniciar el temporizador\n\n")
		b.WriteString(m.styles.DialogDim.Render("  Las variables de la ruleta se conservan."))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render("  y/enter: confirmar │ n/esc: cancelar"))

	return b.String()
}
