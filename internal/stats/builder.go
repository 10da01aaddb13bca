// Package stats builds the dashboard summary from already-fetched rows.
// Nothing here performs I/O or returns an error: an empty input is a valid
// new-user dashboard.
package stats

import (
	"math"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
)

// Input is everything the builder needs for one user and one day.
type Input struct {
	// ActiveHabits are the user's active habits.
	ActiveHabits []models.Habit
	// TodayCompletions are the user's completions dated today.
	TodayCompletions []models.Completion
	// Streaks maps habit id to that habit's current streak.
	Streaks map[string]int
	// RecentMetrics are the most recent DailyMetrics rows, at most one window.
	RecentMetrics []models.DailyMetrics
	// WindowCompletions are the user's completions over the last WindowDays
	// days, today included. Only used for WindowCompletionRate.
	WindowCompletions []models.Completion
	WindowDays        int
}

// Build produces the dashboard summary.
func Build(in Input) models.DashboardSummary {
	active := make(map[string]struct{}, len(in.ActiveHabits))
	for _, h := range in.ActiveHabits {
		active[h.ID] = struct{}{}
	}

	doneToday := make(map[string]struct{})
	for _, c := range in.TodayCompletions {
		if _, ok := active[c.HabitID]; ok {
			doneToday[c.HabitID] = struct{}{}
		}
	}

	best := 0
	for id := range active {
		if s := in.Streaks[id]; s > best {
			best = s
		}
	}

	averages := Averages(in.RecentMetrics)

	return models.DashboardSummary{
		CurrentStreak:        best,
		HabitsCompletedToday: len(doneToday),
		TotalHabitsToday:     len(active),
		WellnessScore:        WellnessScore(averages),
		WeeklyProgress:       Percent(len(doneToday), len(active)),
		MetricAverages:       averages,
		WindowCompletionRate: windowRate(active, in.WindowCompletions, in.WindowDays),
		MetricDays:           len(in.RecentMetrics),
	}
}

// Percent returns part/whole as a percentage, or 0 when whole is 0.
func Percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// Round1 rounds to one decimal place for display.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func windowRate(active map[string]struct{}, completions []models.Completion, days int) float64 {
	if days <= 0 {
		return 0
	}
	habitDays := make(map[[2]string]struct{})
	for _, c := range completions {
		if _, ok := active[c.HabitID]; ok {
			habitDays[[2]string{c.HabitID, c.Day}] = struct{}{}
		}
	}
	return Percent(len(habitDays), len(active)*days)
}
