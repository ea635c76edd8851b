package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nucleocolectivo/motorcreativo/internal/config"
)

// Styles holds every lipgloss style used by the views, built once from the
// configured color palette.
type Styles struct {
	Title        lipgloss.Style
	Header       lipgloss.Style
	Selected     lipgloss.Style
	Waiting      lipgloss.Style
	Generating   lipgloss.Style
	Assigned     lipgloss.Style
	Graded       lipgloss.Style
	Notification lipgloss.Style
	Help         lipgloss.Style
	Border       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogActive lipgloss.Style
	DialogDim    lipgloss.Style
	Error        lipgloss.Style
	Timer        lipgloss.Style
	TimerDanger  lipgloss.Style
	Spinner      lipgloss.Style
	Strategy     lipgloss.Style
	Logo         lipgloss.Style
}

func NewStyles(c config.Colors) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Title)).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Header)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(c.SelectedBG)).
			Foreground(lipgloss.Color(c.SelectedFG)),
		Waiting: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Waiting)),
		Generating: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Generating)).
			Bold(true),
		Assigned: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Assigned)),
		Graded: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Graded)).
			Bold(true),
		Notification: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Notification)).
			Italic(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Help)),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Border)).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.DialogTitle)).
			MarginBottom(1),
		DialogActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.DialogActive)),
		DialogDim: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.DialogDim)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Error)).
			Bold(true),
		Timer: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Timer)),
		TimerDanger: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.TimerDanger)),
		Spinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Spinner)),
		Strategy: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Strategy)),
		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.Logo)),
	}
}
