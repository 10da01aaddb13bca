package validation

import (
	"strings"
	"testing"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/constants"
	apperrors "github.com/thatappguy71/EvolvAssistant-sub000/internal/errors"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
)

func validHabit() models.Habit {
	return models.Habit{
		ID:         "h-new",
		UserID:     "u-1",
		Name:       "Meditation",
		Category:   constants.CategoryMindfulness,
		Difficulty: constants.DifficultyEasy,
		Active:     true,
	}
}

func validMetrics() models.DailyMetrics {
	return models.DailyMetrics{
		UserID: "u-1", Day: "2024-01-10",
		Energy: 5, Focus: 5, Mood: 5, Productivity: 5, SleepQuality: 5,
	}
}

func hasProblem(result ValidationResult, t ProblemType) bool {
	for _, p := range result.Problems {
		if p.Type == t {
			return true
		}
	}
	return false
}

func TestValidateHabit(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Habit)
		want   ProblemType
	}{
		{"empty name", func(h *models.Habit) { h.Name = "   " }, ProblemEmptyName},
		{"long name", func(h *models.Habit) { h.Name = strings.Repeat("x", MaxNameLength+1) }, ProblemNameTooLong},
		{"missing user", func(h *models.Habit) { h.UserID = "" }, ProblemMissingID},
		{"unknown category", func(h *models.Habit) { h.Category = "hobbies" }, ProblemInvalidCategory},
		{"unknown difficulty", func(h *models.Habit) { h.Difficulty = "extreme" }, ProblemInvalidDifficulty},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := validHabit()
			tt.mutate(&h)
			result := v.ValidateHabit(h, nil)
			if !hasProblem(result, tt.want) {
				t.Errorf("expected %s, got %s", tt.want, result.FormatReport())
			}
			if !apperrors.IsInvalid(result.Err()) {
				t.Errorf("expected input error, got %v", result.Err())
			}
		})
	}
}

func TestValidateHabit_NoProblems(t *testing.T) {
	result := New().ValidateHabit(validHabit(), nil)
	if result.HasProblems() {
		t.Errorf("expected no problems, got %s", result.FormatReport())
	}
	if result.Err() != nil {
		t.Errorf("expected nil error, got %v", result.Err())
	}
	if result.FormatReport() != "No problems detected." {
		t.Errorf("unexpected report %q", result.FormatReport())
	}
}

func TestValidateHabit_DuplicateNames(t *testing.T) {
	existing := []models.Habit{
		{ID: "h-1", Name: "meditation", Active: true},
		{ID: "h-2", Name: "Reading", Active: true},
	}

	result := New().ValidateHabit(validHabit(), existing)
	if !hasProblem(result, ProblemDuplicateHabitName) {
		t.Error("expected duplicate name to be detected case-insensitively")
	}

	// An inactive habit with the same name does not block reuse.
	existing[0].Active = false
	result = New().ValidateHabit(validHabit(), existing)
	if hasProblem(result, ProblemDuplicateHabitName) {
		t.Error("inactive habits must not count as duplicates")
	}

	// Updating a habit does not conflict with itself.
	self := validHabit()
	result = New().ValidateHabit(self, []models.Habit{self})
	if result.HasProblems() {
		t.Errorf("habit should not conflict with itself: %s", result.FormatReport())
	}
}

func TestValidateMetrics(t *testing.T) {
	negative := -1.0
	tooMuch := 25.0
	fine := 7.5

	tests := []struct {
		name   string
		mutate func(*models.DailyMetrics)
		want   ProblemType
	}{
		{"energy below range", func(m *models.DailyMetrics) { m.Energy = 0 }, ProblemMetricOutOfRange},
		{"mood above range", func(m *models.DailyMetrics) { m.Mood = 11 }, ProblemMetricOutOfRange},
		{"bad day", func(m *models.DailyMetrics) { m.Day = "2024-13-01" }, ProblemInvalidDay},
		{"negative sleep", func(m *models.DailyMetrics) { m.SleepHours = &negative }, ProblemInvalidSleepHours},
		{"too much sleep", func(m *models.DailyMetrics) { m.SleepHours = &tooMuch }, ProblemInvalidSleepHours},
		{"missing user", func(m *models.DailyMetrics) { m.UserID = "" }, ProblemMissingID},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMetrics()
			m.SleepHours = &fine
			tt.mutate(&m)
			result := v.ValidateMetrics(m)
			if !hasProblem(result, tt.want) {
				t.Errorf("expected %s, got %s", tt.want, result.FormatReport())
			}
		})
	}

	boundaries := validMetrics()
	boundaries.Energy = constants.MetricMin
	boundaries.Focus = constants.MetricMax
	if result := v.ValidateMetrics(boundaries); result.HasProblems() {
		t.Errorf("boundary values should be accepted: %s", result.FormatReport())
	}
}

func TestValidateCompletion(t *testing.T) {
	low, high, ok := 0, 6, 3

	tests := []struct {
		name    string
		day     string
		rating  *int
		wantErr bool
	}{
		{"no rating", "2024-01-10", nil, false},
		{"valid rating", "2024-01-10", &ok, false},
		{"rating too low", "2024-01-10", &low, true},
		{"rating too high", "2024-01-10", &high, true},
		{"bad day", "01/10/2024", nil, true},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.ValidateCompletion(tt.day, tt.rating)
			if result.HasProblems() != tt.wantErr {
				t.Errorf("HasProblems() = %v, want %v (%s)", result.HasProblems(), tt.wantErr, result.FormatReport())
			}
		})
	}
}

func TestErrOnReturnedResult(t *testing.T) {
	v := New()
	rating := 3

	if err := v.ValidateCompletion("2024-01-10", &rating).Err(); err != nil {
		t.Errorf("expected valid completion, got %v", err)
	}
	if err := v.ValidateHabit(validHabit(), nil).Err(); err != nil {
		t.Errorf("expected valid habit, got %v", err)
	}

	m := models.DailyMetrics{UserID: "u-1", Day: "2024-01-10", Energy: 5, Focus: 5, Mood: 5, Productivity: 5, SleepQuality: 11}
	err := v.ValidateMetrics(m).Err()
	if !apperrors.IsInvalid(err) {
		t.Fatalf("expected input error, got %v", err)
	}
	if !strings.Contains(err.Error(), "sleep_quality") {
		t.Errorf("expected sleep_quality in %q", err.Error())
	}
}
