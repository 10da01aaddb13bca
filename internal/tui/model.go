package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/biohack"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/engine"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/tui/components/breathing"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/tui/components/habits"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/tui/components/metrics"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateDashboard
	StateBiohacks
	StateBreathing
)

// tabCount is the number of states reachable with tab.
const tabCount = 3

var tabTitles = []string{"Today", "Dashboard", "Biohacks"}

type dashboardMsg struct {
	dashboard engine.Dashboard
	metrics   []models.DailyMetrics
	err       error
}

type toggledMsg struct {
	err error
}

type techniqueItem struct {
	t biohack.Technique
}

func (i techniqueItem) Title() string       { return i.t.Name }
func (i techniqueItem) Description() string { return i.t.Category + " | " + i.t.Summary }
func (i techniqueItem) FilterValue() string { return i.t.Name }

type Model struct {
	eng        *engine.Engine
	user       models.User
	state      SessionState
	keys       KeyMap
	help       help.Model
	habits     habits.Model
	chart      metrics.Model
	biohacks   list.Model
	breathing  breathing.Model
	dashboard  engine.Dashboard
	loaded     bool
	loading    bool
	err        error
	statusLine string
	quitting   bool
	width      int
	height     int
}

func NewModel(eng *engine.Engine, user models.User) Model {
	catalog := biohack.Catalog()
	items := make([]list.Item, len(catalog))
	for i, t := range catalog {
		items[i] = techniqueItem{t: t}
	}
	bl := list.New(items, list.NewDefaultDelegate(), 0, 0)
	bl.SetShowTitle(false)
	bl.SetShowHelp(false)

	return Model{
		eng:      eng,
		user:     user,
		state:    StateToday,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		habits:   habits.New(nil, 0, 0),
		chart:    metrics.New(0, 0),
		biohacks: bl,
		loading:  true,
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		keys = append(keys, m.keys.Toggle, m.keys.Refresh)
	case StateDashboard:
		keys = append(keys, m.keys.Refresh)
	case StateBiohacks:
		keys = append(keys, m.keys.Enter)
	case StateBreathing:
		keys = []key.Binding{m.keys.Back, m.keys.Quit}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

// load fetches the dashboard off the UI goroutine; recommendations may take
// up to the configured timeout.
func (m Model) load() tea.Cmd {
	eng, userID := m.eng, m.user.ID
	return func() tea.Msg {
		ctx := context.Background()
		d, err := eng.Dashboard(ctx, userID, true)
		if err != nil {
			return dashboardMsg{err: err}
		}
		rows, err := eng.RecentMetrics(ctx, userID)
		return dashboardMsg{dashboard: d, metrics: rows, err: err}
	}
}

func (m Model) toggle(habitID string) tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		_, err := eng.Toggle(context.Background(), habitID, "", engine.CompletionInput{})
		return toggledMsg{err: err}
	}
}
