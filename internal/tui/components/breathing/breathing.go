// Package breathing is the guided breathing timer view.
package breathing

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/biohack"
)

const tickInterval = 250 * time.Millisecond

type TickMsg time.Time

// FinishedMsg is sent once the session's duration has elapsed.
type FinishedMsg struct {
	Slug   string
	Cycles int
}

var (
	phaseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type Model struct {
	technique biohack.Technique
	started   time.Time
	elapsed   time.Duration
	total     time.Duration
	now       func() time.Time
	done      bool
}

// New starts a session for t, which must have a breathing pattern.
func New(t biohack.Technique, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	return Model{
		technique: t,
		started:   now(),
		total:     t.Duration,
		now:       now,
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); !ok || m.done {
		return m, nil
	}
	m.elapsed = m.now().Sub(m.started)
	if m.elapsed >= m.total {
		m.done = true
		cycles := m.technique.Pattern.Cycles(m.total)
		return m, func() tea.Msg { return FinishedMsg{Slug: m.technique.Slug, Cycles: cycles} }
	}
	return m, tick()
}

func (m Model) Done() bool { return m.done }

func (m Model) View() string {
	p := m.technique.Pattern
	if p == nil {
		return mutedStyle.Render("  This technique has no breathing pattern.")
	}
	if m.done {
		return fmt.Sprintf("\n  %s complete. Nice work.\n", m.technique.Name)
	}

	phase, remaining, cycle := p.PhaseAt(m.elapsed)
	secs := int(remaining.Round(time.Second) / time.Second)
	if secs < 1 {
		secs = 1
	}

	left := m.total - m.elapsed
	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n", m.technique.Name)
	fmt.Fprintf(&b, "  %s  %d\n\n", phaseStyle.Render(phase.String()), secs)
	fmt.Fprintf(&b, "  %s\n", mutedStyle.Render(strings.Join(p.Cues(), " · ")))
	fmt.Fprintf(&b, "  %s\n", mutedStyle.Render(fmt.Sprintf("cycle %d · %s left", cycle+1, left.Round(time.Second))))
	return b.String()
}
