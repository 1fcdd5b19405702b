package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var panelBorder = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("8")).
	Padding(0, 1)

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel draws a framed box around the given lines.
func Panel(lines []string) {
	fmt.Println(PanelString(strings.Join(lines, "\n")))
}

// PanelString returns the framed content instead of printing it; the
// TUI wraps its whole view with this.
func PanelString(inner string) string {
	return panelBorder.Render(inner)
}
