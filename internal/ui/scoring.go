package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nucleocolectivo/motorcreativo/internal/team"
)

type openScoringMsg struct {
	target *team.Team
}

type scoringDoneMsg struct {
	saved    bool
	teamName string
}

// scoringModel is the rubric dialog: the five criteria at 0-5 each plus a
// free-form feedback line. Saving moves the team to Calificado.
type scoringModel struct {
	styles Styles
	target *team.Team

	criteria []team.Criterion
	scores   team.Scores
	cursor   int
	feedback textinput.Model
}

func newScoring(s Styles, target *team.Team) scoringModel {
	fi := textinput.New()
	fi.Placeholder = "feedback del docente"
	fi.CharLimit = 200
	fi.SetValue(target.Feedback())

	return scoringModel{
		styles:   s,
		target:   target,
		criteria: team.Criteria(),
		scores:   target.Scores(),
		feedback: fi,
	}
}

func (m scoringModel) Init() tea.Cmd {
	return nil
}

// feedbackRow is the cursor position after the last criterion.
func (m scoringModel) feedbackRow() int {
	return len(m.criteria)
}

func (m scoringModel) Update(msg tea.Msg) (scoringModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.feedback.Focused() {
			var cmd tea.Cmd
			m.feedback, cmd = m.feedback.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return scoringDoneMsg{saved: false} }

	case "enter":
		m.target.Grade(m.scores, strings.TrimSpace(m.feedback.Value()))
		name := m.target.Name
		return m, func() tea.Msg { return scoringDoneMsg{saved: true, teamName: name} }

	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m.syncFocus()

	case "down":
		if m.cursor < m.feedbackRow() {
			m.cursor++
		}
		return m.syncFocus()

	case "left", "right":
		if m.cursor < len(m.criteria) {
			key := m.criteria[m.cursor].Key
			delta := 1
			if keyMsg.String() == "left" {
				delta = -1
			}
			m.scores.Set(key, m.scores.Get(key)+delta)
			return m, nil
		}
		if m.feedback.Focused() {
			var cmd tea.Cmd
			m.feedback, cmd = m.feedback.Update(keyMsg)
			return m, cmd
		}

	default:
		if m.cursor == m.feedbackRow() {
			var cmd tea.Cmd
			m.feedback, cmd = m.feedback.Update(keyMsg)
			return m, cmd
		}
	}

	return m, nil
}

func (m scoringModel) syncFocus() (scoringModel, tea.Cmd) {
	if m.cursor == m.feedbackRow() {
		m.feedback.Focus()
		return m, textinput.Blink
	}
	m.feedback.Blur()
	return m, nil
}

func (m scoringModel) ViewContent() string {
	var b strings.Builder

	b.WriteString(m.styles.DialogTitle.Render("Calificar: " + m.target.Name))
	b.WriteString("\n\n")

	for i, c := range m.criteria {
		marker := "  "
		label := m.styles.DialogDim.Render(fmt.Sprintf("%-12s", c.Label))
		if i == m.cursor {
			marker = "> "
			label = m.styles.DialogActive.Render(fmt.Sprintf("%-12s", c.Label))
		}
		value := m.scores.Get(c.Key)
		bar := strings.Repeat("●", value) + strings.Repeat("○", 5-value)
		b.WriteString(fmt.Sprintf("  %s%s %s %d/5\n", marker, label, bar, value))
	}

	marker := "  "
	label := m.styles.DialogDim.Render(fmt.Sprintf("%-12s", "Feedback"))
	if m.cursor == m.feedbackRow() {
		marker = "> "
		label = m.styles.DialogActive.Render(fmt.Sprintf("%-12s", "Feedback"))
	}
	b.WriteString(fmt.Sprintf("  %s%s %s\n", marker, label, m.feedback.View()))

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %d / 25\n",
		m.styles.Header.Render("PUNTAJE TOTAL:"), m.scores.Total()))

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("  ↑/↓: criterio │ ←/→: puntos │ enter: guardar │ esc: cancelar"))

	return b.String()
}
