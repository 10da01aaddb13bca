package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/engine"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/storage/sqlite"
)

const userID = "4a7b0c1d-2e3f-4a5b-8c6d-7e8f9a0b1c2d"

func setup(t *testing.T) (Model, *engine.Engine, models.Habit) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	now := time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)
	user := models.User{ID: userID, Name: "ada", CreatedAt: now}
	if err := store.AddUser(user); err != nil {
		t.Fatalf("add user: %v", err)
	}
	settings, _ := store.GetSettings()
	eng := engine.New(store, engine.WithSettings(settings), engine.WithClock(func() time.Time { return now }))

	habit, err := eng.CreateHabit(context.Background(), userID, engine.HabitInput{Name: "Meditate"})
	if err != nil {
		t.Fatalf("create habit: %v", err)
	}

	m := NewModel(eng, user)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), eng, habit
}

// run feeds cmd's messages back into the model until none remain.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for i := 0; cmd != nil && i < 10; i++ {
		msg := cmd()
		if msg == nil {
			return m
		}
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_LoadsDashboard(t *testing.T) {
	m, _, _ := setup(t)
	m = run(t, m, m.Init())

	if !m.loaded || m.err != nil {
		t.Fatalf("expected dashboard loaded, err=%v", m.err)
	}
	if m.habits.Len() != 1 {
		t.Errorf("expected 1 habit in list, got %d", m.habits.Len())
	}
	if len(m.dashboard.Recommendations.Items) == 0 {
		t.Error("expected fallback recommendations")
	}
	if m.View() == "" {
		t.Error("empty view")
	}
}

func TestModel_ToggleHabit(t *testing.T) {
	m, eng, habit := setup(t)
	m = run(t, m, m.Init())

	next, cmd := m.Update(keyMsg("x"))
	m = run(t, next.(Model), cmd)

	done, err := eng.IsCompletedToday(context.Background(), habit.ID)
	if err != nil {
		t.Fatalf("IsCompletedToday: %v", err)
	}
	if !done {
		t.Fatal("expected habit to be completed after toggle")
	}
	if s, ok := m.habits.Selected(); !ok || !s.CompletedToday {
		t.Error("list should reflect the completion")
	}
	if m.dashboard.Summary.HabitsCompletedToday != 1 {
		t.Errorf("summary not refreshed: %+v", m.dashboard.Summary)
	}
}

func TestModel_Tabs(t *testing.T) {
	m, _, _ := setup(t)

	want := []SessionState{StateDashboard, StateBiohacks, StateToday}
	for _, w := range want {
		next, _ := m.Update(keyMsg("tab"))
		m = next.(Model)
		if m.state != w {
			t.Fatalf("state = %v, want %v", m.state, w)
		}
	}
}

func TestModel_Breathing(t *testing.T) {
	m, _, _ := setup(t)
	for i := 0; i < 2; i++ {
		next, _ := m.Update(keyMsg("tab"))
		m = next.(Model)
	}

	// first catalog entry is box breathing
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(Model)
	if m.state != StateBreathing || cmd == nil {
		t.Fatalf("expected breathing session to start, state=%v", m.state)
	}
	if m.View() == "" {
		t.Error("empty breathing view")
	}

	next, _ = m.Update(keyMsg("esc"))
	m = next.(Model)
	if m.state != StateBiohacks {
		t.Errorf("esc should return to biohacks, got %v", m.state)
	}
}

func TestModel_NonBreathingTechnique(t *testing.T) {
	m, _, _ := setup(t)
	for i := 0; i < 2; i++ {
		next, _ := m.Update(keyMsg("tab"))
		m = next.(Model)
	}
	// cold exposure
	for i := 0; i < 3; i++ {
		next, _ := m.Update(keyMsg("j"))
		m = next.(Model)
	}
	next, _ := m.Update(keyMsg("enter"))
	m = next.(Model)
	if m.state != StateBiohacks || m.err == nil {
		t.Errorf("expected an error for a non-breathing technique, state=%v err=%v", m.state, m.err)
	}
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := setup(t)
	next, cmd := m.Update(keyMsg("q"))
	if cmd == nil || !next.(Model).quitting {
		t.Error("expected quit")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quit")
	}
}
