package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nucleocolectivo/motorcreativo/internal/team"
)

// ErrNoData is returned when an export is requested with nothing to export.
var ErrNoData = errors.New("no hay datos para exportar")

var csvHeaders = []string{
	"Rank", "Equipo", "Sector", "Producto", "Estado",
	"P. Innovacion", "P. Coherencia", "P. Visual", "P. Viabilidad", "P. Etica",
	"PUNTAJE TOTAL", "Feedback",
}

// RankingCSV renders the roster as CSV, one row per team ordered by
// descending total score.
func RankingCSV(teams []*team.Team) ([]byte, error) {
	if len(teams) == 0 {
		return nil, ErrNoData
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeaders); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for i, t := range teams {
		snap := t.Snapshot()
		row := []string{
			strconv.Itoa(i + 1),
			t.Name,
			snap.Sector,
			snap.Product,
			string(snap.Status),
			strconv.Itoa(snap.Scores.Innovacion),
			strconv.Itoa(snap.Scores.Coherencia),
			strconv.Itoa(snap.Scores.Visual),
			strconv.Itoa(snap.Scores.Viabilidad),
			strconv.Itoa(snap.Scores.Etica),
			strconv.Itoa(snap.Scores.Total()),
			snap.Feedback,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteRankingFile writes the ranking CSV as Ranking_Ronda<N>.csv under dir
// and returns the written path.
func WriteRankingFile(dir string, teams []*team.Team, round int) (string, error) {
	data, err := RankingCSV(teams)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("Ranking_Ronda%d.csv", round))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write ranking file: %w", err)
	}
	return path, nil
}
