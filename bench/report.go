package bench

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")

	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim    = lipgloss.NewStyle().Foreground(colorGray)
)

// reportColumns are the table headers.
var reportColumns = []string{"SET", "SOLVER", "POINTS", "DISTANCE", "ELAPSED", "RUN"}

// WriteReport prints results as an aligned table, one row per result.
func WriteReport(w io.Writer, results []Result) error {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Set,
			r.Solver,
			fmt.Sprintf("%d", len(r.Path)),
			fmt.Sprintf("%.3f", r.Distance),
			r.Elapsed.Round(time.Microsecond).String(),
			r.RunID.String()[:8],
		})
	}

	widths := make([]int, len(reportColumns))
	for i, h := range reportColumns {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	b.WriteString(formatRow(reportColumns, widths, func(int) lipgloss.Style { return styleHeader }))
	for _, row := range rows {
		b.WriteString(formatRow(row, widths, cellStyle))
	}
	if len(rows) == 0 {
		b.WriteString(styleDim.Render("no results"))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// cellStyle colors numeric columns.
func cellStyle(col int) lipgloss.Style {
	switch col {
	case 2, 3:
		return styleNumber
	case 4, 5:
		return styleDim
	default:
		return lipgloss.NewStyle()
	}
}

func formatRow(cells []string, widths []int, style func(int) lipgloss.Style) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = style(i).Width(widths[i]).Render(cell)
	}

	return strings.Join(parts, "  ") + "\n"
}
