package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/tui/components/breathing"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/tui/components/habits"
)

// chrome is the rows taken by tabs, margins and help.
const chrome = 6

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.habits.SetSize(msg.Width-4, msg.Height-chrome)
		m.biohacks.SetSize(msg.Width-4, msg.Height-chrome)
		m.chart.SetSize(msg.Width-8, max(msg.Height/2-chrome, 6))
		return m, nil

	case dashboardMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.loaded = true
			m.dashboard = msg.dashboard
			m.habits.SetStatuses(msg.dashboard.Habits)
			m.chart.SetMetrics(msg.metrics)
		}
		return m, nil

	case toggledMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.loading = true
		return m, m.load()

	case habits.ToggleHabitMsg:
		return m, m.toggle(msg.ID)

	case breathing.TickMsg:
		var cmd tea.Cmd
		m.breathing, cmd = m.breathing.Update(msg)
		return m, cmd

	case breathing.FinishedMsg:
		m.statusLine = fmt.Sprintf("Finished %d cycles.", msg.Cycles)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Typed filter text must not trigger global keys.
	var cmd tea.Cmd
	switch {
	case m.state == StateToday && m.habits.Filtering():
		m.habits, cmd = m.habits.Update(msg)
		return m, cmd
	case m.state == StateBiohacks && m.biohacks.FilterState() == list.Filtering:
		m.biohacks, cmd = m.biohacks.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.state == StateBreathing {
		if key.Matches(msg, m.keys.Back) {
			m.state = StateBiohacks
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Tab):
		m.state = (m.state + 1) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.state = (m.state - 1 + tabCount) % tabCount
		return m, nil
	case key.Matches(msg, m.keys.Refresh) && m.state != StateBiohacks:
		m.loading = true
		m.err = nil
		return m, m.load()
	}

	switch m.state {
	case StateToday:
		m.habits, cmd = m.habits.Update(msg)
	case StateBiohacks:
		if key.Matches(msg, m.keys.Enter) {
			return m.startBreathing()
		}
		m.biohacks, cmd = m.biohacks.Update(msg)
	}
	return m, cmd
}

func (m Model) startBreathing() (tea.Model, tea.Cmd) {
	item, ok := m.biohacks.SelectedItem().(techniqueItem)
	if !ok {
		return m, nil
	}
	if !item.t.IsBreathing() {
		m.err = errors.New(item.t.Name + " is not a guided breathing exercise; see 'evolv biohack show " + item.t.Slug + "'")
		return m, nil
	}
	m.err = nil
	m.statusLine = ""
	m.breathing = breathing.New(item.t, nil)
	m.state = StateBreathing
	return m, m.breathing.Init()
}
