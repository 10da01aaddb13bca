package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	DoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	PendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	WarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Check renders a completion box.
func Check(done bool) string {
	if done {
		return DoneStyle.Render("[x]")
	}
	return PendingStyle.Render("[ ]")
}

// Bar renders pct (0-100) as a fixed-width text bar.
func Bar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	return DoneStyle.Render(strings.Repeat("█", filled)) + PendingStyle.Render(strings.Repeat("░", width-filled))
}

// Truncate shortens s to n runes with an ellipsis, padding shorter strings.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		if n >= 5 {
			return string(r[:n-3]) + "..."
		}
		return string(r[:n])
	}
	return s + strings.Repeat(" ", n-len(r))
}
