package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nucleocolectivo/motorcreativo/internal/strategy"
	"github.com/nucleocolectivo/motorcreativo/internal/team"
)

// Report is the plain-text executive summary of one challenge: title,
// optional score line, the challenge export text, then optional strategy,
// rubric and feedback blocks.
type Report struct {
	Title      string
	ExportText string
	Strategy   *strategy.Result
	Scores     *team.Scores
	Feedback   string
}

// Render composes and sanitizes the report body.
func (r Report) Render() (string, error) {
	if r.ExportText == "" {
		return "", ErrNoData
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n====================================\n\n", r.Title)

	if r.Scores != nil {
		fmt.Fprintf(&b, "PUNTAJE OBTENIDO: %d / 25\n\n", r.Scores.Total())
	}

	fmt.Fprintf(&b, "RETO ASIGNADO:\n%s\n\n", r.ExportText)

	if r.Strategy != nil {
		b.WriteString("ANÁLISIS ESTRATÉGICO (IA):\n")
		fmt.Fprintf(&b, "Misión: %s\n", r.Strategy.Mision)
		fmt.Fprintf(&b, "Visión: %s\n", r.Strategy.Vision)
		fmt.Fprintf(&b, "Diferenciador: %s\n", r.Strategy.Diferenciador)
		fmt.Fprintf(&b, "Impacto & ODS: %s\n\n", r.Strategy.ImpactoODS)
	}

	if r.Scores != nil {
		b.WriteString("RÚBRICA DE EVALUACIÓN:\n")
		for _, c := range team.Criteria() {
			fmt.Fprintf(&b, "- %s: %d/5\n", c.Label, r.Scores.Get(c.Key))
		}
		b.WriteString("\n")
	}

	if r.Feedback != "" {
		fmt.Fprintf(&b, "FEEDBACK DEL DOCENTE:\n%s\n", r.Feedback)
	}

	return Sanitize(b.String()) + "\n", nil
}

// WriteReportFile renders the report to <name>.txt under dir and returns
// the written path. An empty name falls back to Resumen_Ejecutivo_Reto.
func WriteReportFile(dir, name string, r Report) (string, error) {
	content, err := r.Render()
	if err != nil {
		return "", err
	}

	if name == "" {
		name = "Resumen_Ejecutivo_Reto"
	}
	path := filepath.Join(dir, name+".txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write report file: %w", err)
	}
	return path, nil
}

// TeamReport builds the report for a graded or assigned roster entry.
func TeamReport(t *team.Team) Report {
	snap := t.Snapshot()
	r := Report{
		Title:      "REPORTE: " + t.Name,
		ExportText: snap.ExportText,
		Strategy:   snap.Strategy,
		Feedback:   snap.Feedback,
	}
	if snap.Status == team.StatusGraded {
		scores := snap.Scores
		r.Scores = &scores
	}
	return r
}
