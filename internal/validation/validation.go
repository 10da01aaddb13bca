package validation

import (
	"fmt"
	"slices"
	"strings"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/constants"
	apperrors "github.com/thatappguy71/EvolvAssistant-sub000/internal/errors"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/utils"
)

// ProblemType represents the kind of validation failure
type ProblemType string

const (
	ProblemEmptyName          ProblemType = "empty_name"
	ProblemNameTooLong        ProblemType = "name_too_long"
	ProblemDuplicateHabitName ProblemType = "duplicate_habit_name"
	ProblemInvalidCategory    ProblemType = "invalid_category"
	ProblemInvalidDifficulty  ProblemType = "invalid_difficulty"
	ProblemMetricOutOfRange   ProblemType = "metric_out_of_range"
	ProblemInvalidSleepHours  ProblemType = "invalid_sleep_hours"
	ProblemInvalidRating      ProblemType = "invalid_rating"
	ProblemInvalidDay         ProblemType = "invalid_day"
	ProblemMissingID          ProblemType = "missing_id"
)

// MaxNameLength bounds habit and user names.
const MaxNameLength = 100

// Problem is one detected issue with user input
type Problem struct {
	Type        ProblemType
	Field       string
	Description string
}

// ValidationResult contains all detected problems
type ValidationResult struct {
	Problems []Problem
}

// HasProblems returns true if there are any problems
func (vr ValidationResult) HasProblems() bool {
	return len(vr.Problems) > 0
}

// FormatReport returns a human-readable report of all problems
func (vr ValidationResult) FormatReport() string {
	if !vr.HasProblems() {
		return "No problems detected."
	}

	var b strings.Builder
	b.WriteString("Problems detected:\n")
	for _, p := range vr.Problems {
		fmt.Fprintf(&b, "- %s\n", p.Description)
	}
	return b.String()
}

// Err collapses the result into a single input error, or nil.
func (vr ValidationResult) Err() error {
	if !vr.HasProblems() {
		return nil
	}
	msgs := make([]string, len(vr.Problems))
	for i, p := range vr.Problems {
		msgs[i] = p.Description
	}
	return apperrors.Invalid("%s", strings.Join(msgs, "; "))
}

func (vr *ValidationResult) add(t ProblemType, field, format string, args ...interface{}) {
	vr.Problems = append(vr.Problems, Problem{
		Type:        t,
		Field:       field,
		Description: fmt.Sprintf(format, args...),
	})
}

// Validator checks habits, completions and metrics before they are stored
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateHabit checks a habit's fields and, given the user's other active
// habits, that its name is not already taken.
func (v *Validator) ValidateHabit(habit models.Habit, existing []models.Habit) ValidationResult {
	result := ValidationResult{}

	name := strings.TrimSpace(habit.Name)
	switch {
	case name == "":
		result.add(ProblemEmptyName, "name", "habit name cannot be empty")
	case len(name) > MaxNameLength:
		result.add(ProblemNameTooLong, "name", "habit name exceeds %d characters", MaxNameLength)
	}

	if habit.UserID == "" {
		result.add(ProblemMissingID, "user_id", "habit must belong to a user")
	}

	if !slices.Contains(constants.Categories, habit.Category) {
		result.add(ProblemInvalidCategory, "category", "unknown category %q (expected one of %s)",
			habit.Category, strings.Join(constants.Categories, ", "))
	}

	if !slices.Contains(constants.Difficulties, habit.Difficulty) {
		result.add(ProblemInvalidDifficulty, "difficulty", "unknown difficulty %q (expected one of %s)",
			habit.Difficulty, strings.Join(constants.Difficulties, ", "))
	}

	for _, other := range existing {
		if other.ID == habit.ID || !other.Active {
			continue
		}
		if name != "" && strings.EqualFold(strings.TrimSpace(other.Name), name) {
			result.add(ProblemDuplicateHabitName, "name", "an active habit named %q already exists", other.Name)
			break
		}
	}

	return result
}

// ValidateMetrics checks that every rating is within 1-10, the day is a
// calendar day and sleep hours, if present, fit in a day.
func (v *Validator) ValidateMetrics(m models.DailyMetrics) ValidationResult {
	result := ValidationResult{}

	if m.UserID == "" {
		result.add(ProblemMissingID, "user_id", "metrics must belong to a user")
	}
	if !utils.ValidateDay(m.Day) {
		result.add(ProblemInvalidDay, "day", "invalid day %q (expected YYYY-MM-DD)", m.Day)
	}

	ratings := []struct {
		field string
		value int
	}{
		{"energy", m.Energy},
		{"focus", m.Focus},
		{"mood", m.Mood},
		{"productivity", m.Productivity},
		{"sleep_quality", m.SleepQuality},
	}
	for _, r := range ratings {
		if r.value < constants.MetricMin || r.value > constants.MetricMax {
			result.add(ProblemMetricOutOfRange, r.field, "%s must be between %d and %d, got %d",
				r.field, constants.MetricMin, constants.MetricMax, r.value)
		}
	}

	if m.SleepHours != nil && (*m.SleepHours < 0 || *m.SleepHours > constants.MaxSleepHours) {
		result.add(ProblemInvalidSleepHours, "sleep_hours", "sleep hours must be between 0 and %.0f, got %.1f",
			constants.MaxSleepHours, *m.SleepHours)
	}

	return result
}

// ValidateCompletion checks the day and the optional rating of a completion.
func (v *Validator) ValidateCompletion(day string, rating *int) ValidationResult {
	result := ValidationResult{}

	if !utils.ValidateDay(day) {
		result.add(ProblemInvalidDay, "day", "invalid day %q (expected YYYY-MM-DD)", day)
	}
	if rating != nil && (*rating < constants.RatingMin || *rating > constants.RatingMax) {
		result.add(ProblemInvalidRating, "rating", "rating must be between %d and %d, got %d",
			constants.RatingMin, constants.RatingMax, *rating)
	}

	return result
}
