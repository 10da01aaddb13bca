package habits

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/streak"
)

// ToggleHabitMsg asks the parent to flip today's completion for ID.
type ToggleHabitMsg struct {
	ID string
}

type Item struct {
	Status models.HabitStatus
}

func (i Item) Title() string {
	if i.Status.CompletedToday {
		return "✓ " + i.Status.Habit.Name
	}
	return "○ " + i.Status.Habit.Name
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%s | %s", i.Status.Habit.Category, streak.Describe(i.Status.Streak))
	if i.Status.Habit.TimeRequired != "" {
		desc += " | " + i.Status.Habit.TimeRequired
	}
	return desc
}

func (i Item) FilterValue() string { return i.Status.Habit.Name }

type KeyMap struct {
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space/x", "toggle done"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(statuses []models.HabitStatus, width, height int) Model {
	l := list.New(items(statuses), list.NewDefaultDelegate(), width, height)
	l.Title = "Today"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is global

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle}
	}

	return Model{list: l, keys: keys}
}

func items(statuses []models.HabitStatus) []list.Item {
	out := make([]list.Item, len(statuses))
	for i, s := range statuses {
		out[i] = Item{Status: s}
	}
	return out
}

// SetStatuses replaces the items and keeps the cursor where it was.
func (m *Model) SetStatuses(statuses []models.HabitStatus) {
	idx := m.list.Index()
	m.list.SetItems(items(statuses))
	if idx < len(statuses) {
		m.list.Select(idx)
	}
}

func (m Model) Filtering() bool { return m.list.FilterState() == list.Filtering }

func (m Model) Len() int { return len(m.list.Items()) }

func (m Model) Selected() (models.HabitStatus, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i.Status, ok
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		if key.Matches(msg, m.keys.Toggle) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleHabitMsg{ID: i.Status.Habit.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Add one with 'evolv habit add'."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
