// Package metrics draws recent daily wellness ratings as a bar chart.
package metrics

import (
	"fmt"
	"slices"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/stats"
)

var (
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Model struct {
	chart  barchart.Model
	rows   []models.DailyMetrics
	width  int
	height int
}

func New(width, height int) Model {
	m := Model{width: width, height: height}
	m.build()
	return m
}

// SetMetrics takes rows newest first, as the store returns them, and plots
// them oldest to newest.
func (m *Model) SetMetrics(rows []models.DailyMetrics) {
	m.rows = slices.Clone(rows)
	slices.Reverse(m.rows)
	m.build()
}

func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.build()
}

func (m *Model) build() {
	w, h := m.width, m.height
	if w < 20 {
		w = 20
	}
	if h < 6 {
		h = 6
	}
	m.chart = barchart.New(w, h)

	bars := make([]barchart.BarData, 0, len(m.rows))
	for _, r := range m.rows {
		score := stats.DayScore(r)
		label := r.Day
		if len(label) == 10 {
			label = label[5:]
		}
		bars = append(bars, barchart.BarData{
			Label:  label,
			Values: []barchart.BarValue{{Name: "score", Value: score, Style: barStyle}},
		})
	}
	if len(bars) == 0 {
		bars = []barchart.BarData{{Label: "", Values: []barchart.BarValue{{Name: "", Value: 0, Style: emptyStyle}}}}
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m Model) View() string {
	if len(m.rows) == 0 {
		return emptyStyle.Render("  No metrics logged yet. Run 'evolv metrics log'.")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.chart.View(),
		emptyStyle.Render(fmt.Sprintf("  daily wellness score (1-10), last %d days", len(m.rows))),
	)
}
