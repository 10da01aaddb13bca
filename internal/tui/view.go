package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/recommend"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/streak"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = docStyle.Render(m.habits.View())
	case StateDashboard:
		content = docStyle.Render(m.viewDashboard())
	case StateBiohacks:
		content = docStyle.Render(m.biohacks.View())
	case StateBreathing:
		content = docStyle.Render(m.breathing.View())
	}

	parts := []string{m.viewTabs(), content}
	if line := m.viewStatus(); line != "" {
		parts = append(parts, line)
	}
	parts = append(parts, m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(tabTitles)+1)
	for i, title := range tabTitles {
		if m.state == SessionState(i) || (m.state == StateBreathing && SessionState(i) == StateBiohacks) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	tabs = append(tabs, mutedStyle.Render("  "+m.user.Name))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	switch {
	case m.err != nil:
		return errorStyle.Render("  " + m.err.Error())
	case m.loading:
		return mutedStyle.Render("  loading…")
	case m.statusLine != "":
		return mutedStyle.Render("  " + m.statusLine)
	}
	return ""
}

func (m Model) viewDashboard() string {
	if !m.loaded {
		return mutedStyle.Render("Loading dashboard…")
	}
	s := m.dashboard.Summary

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render("Summary"))
	fmt.Fprintf(&b, "  Wellness score  %s\n", scoreStyle.Render(fmt.Sprintf("%.1f", s.WellnessScore)))
	fmt.Fprintf(&b, "  Today           %d/%d (%.0f%%)\n", s.HabitsCompletedToday, s.TotalHabitsToday, s.WeeklyProgress)
	fmt.Fprintf(&b, "  Best streak     %s\n", streak.Describe(s.CurrentStreak))
	fmt.Fprintf(&b, "  Window rate     %.0f%%\n\n", s.WindowCompletionRate)
	b.WriteString(m.chart.View())

	rec := m.dashboard.Recommendations
	if len(rec.Items) > 0 {
		title := "Recommendations"
		if rec.Source == recommend.SourceFallback {
			title += mutedStyle.Render(" (offline)")
		}
		fmt.Fprintf(&b, "\n\n%s\n", titleStyle.Render(title))
		for i, r := range rec.Items {
			fmt.Fprintf(&b, "  %d. %s %s\n", i+1, r.Title, mutedStyle.Render("["+r.Category+"]"))
		}
	}
	return b.String()
}
