package engine

import (
	"context"
	"time"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/recommend"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/stats"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/streak"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/utils"
)

// Dashboard is the summary plus the recommendations shown next to it.
type Dashboard struct {
	Summary         models.DashboardSummary `json:"summary"`
	Habits          []models.HabitStatus    `json:"habits"`
	Recommendations recommend.Result        `json:"recommendations"`
}

// ComputeStreak returns the current streak of one habit.
func (e *Engine) ComputeStreak(ctx context.Context, habitID string) (int, error) {
	if err := checkID("habit", habitID); err != nil {
		return 0, err
	}
	policy, err := e.policy()
	if err != nil {
		return 0, err
	}
	today, err := e.Today()
	if err != nil {
		return 0, err
	}

	if _, err := e.store.GetHabit(habitID); err != nil {
		return 0, storeErr("get", "habit", habitID, err)
	}
	if err := cancelled(ctx); err != nil {
		return 0, err
	}

	completions, err := e.store.GetCompletionsForHabit(habitID)
	if err != nil {
		return 0, storeErr("list completions for", "habit", habitID, err)
	}
	return streak.FromDays(days(completions), today, policy)
}

// ComputeDashboardSummary reads the user's active habits, today's
// completions, every active habit's history and the recent metrics window,
// then builds the summary. A user with no data gets a zero summary with the
// midpoint wellness score.
func (e *Engine) ComputeDashboardSummary(ctx context.Context, userID string) (models.DashboardSummary, error) {
	in, _, err := e.collect(ctx, userID)
	if err != nil {
		return models.DashboardSummary{}, err
	}
	return stats.Build(in), nil
}

// Dashboard is ComputeDashboardSummary plus per-habit status and
// recommendations. Recommendation failures never fail the dashboard.
func (e *Engine) Dashboard(ctx context.Context, userID string, withRecommendations bool) (Dashboard, error) {
	in, today, err := e.collect(ctx, userID)
	if err != nil {
		return Dashboard{}, err
	}
	summary := stats.Build(in)

	d := Dashboard{
		Summary: summary,
		Habits:  statuses(in, today),
	}

	primary := e.recommender
	if !withRecommendations || !e.settings.RecommendationsEnabled {
		primary = nil
	}
	d.Recommendations = recommend.Resilient{
		Primary: primary,
		Timeout: time.Duration(e.settings.RecommendationTimeout) * time.Second,
	}.Fetch(ctx, summary)

	return d, nil
}

// TodayStatus lists the user's active habits with today's state and streak.
func (e *Engine) TodayStatus(ctx context.Context, userID string) ([]models.HabitStatus, error) {
	in, today, err := e.collect(ctx, userID)
	if err != nil {
		return nil, err
	}
	return statuses(in, today), nil
}

func (e *Engine) collect(ctx context.Context, userID string) (stats.Input, string, error) {
	if err := checkID("user", userID); err != nil {
		return stats.Input{}, "", err
	}
	policy, err := e.policy()
	if err != nil {
		return stats.Input{}, "", err
	}
	today, err := e.Today()
	if err != nil {
		return stats.Input{}, "", err
	}
	window := e.windowDays()
	windowStart, err := utils.AddDays(today, -(window - 1))
	if err != nil {
		return stats.Input{}, "", err
	}

	active, err := e.store.GetActiveHabits(userID)
	if err != nil {
		return stats.Input{}, "", storeErr("list active habits for", "user", userID, err)
	}
	if err := cancelled(ctx); err != nil {
		return stats.Input{}, "", err
	}

	todays, err := e.store.GetCompletionsForUserOnDay(userID, today)
	if err != nil {
		return stats.Input{}, "", storeErr("list completions for", "user", userID, err)
	}

	streaks := make(map[string]int, len(active))
	for _, h := range active {
		if err := cancelled(ctx); err != nil {
			return stats.Input{}, "", err
		}
		completions, err := e.store.GetCompletionsForHabit(h.ID)
		if err != nil {
			return stats.Input{}, "", storeErr("list completions for", "habit", h.ID, err)
		}
		n, err := streak.FromDays(days(completions), today, policy)
		if err != nil {
			return stats.Input{}, "", err
		}
		streaks[h.ID] = n
	}
	if err := cancelled(ctx); err != nil {
		return stats.Input{}, "", err
	}

	recent, err := e.store.GetDailyMetricsRange(userID, windowStart, today)
	if err != nil {
		return stats.Input{}, "", storeErr("list metrics for", "user", userID, err)
	}

	windowCompletions, err := e.store.GetCompletionsForUserRange(userID, windowStart, today)
	if err != nil {
		return stats.Input{}, "", storeErr("list completions for", "user", userID, err)
	}

	return stats.Input{
		ActiveHabits:      active,
		TodayCompletions:  todays,
		Streaks:           streaks,
		RecentMetrics:     inWindow(recent, windowStart, today),
		WindowCompletions: windowCompletions,
		WindowDays:        window,
	}, today, nil
}

// inWindow keeps rows dated within [start, end]. Day keys compare correctly
// as strings.
func inWindow(rows []models.DailyMetrics, start, end string) []models.DailyMetrics {
	out := make([]models.DailyMetrics, 0, len(rows))
	for _, r := range rows {
		if r.Day >= start && r.Day <= end {
			out = append(out, r)
		}
	}
	return out
}

func statuses(in stats.Input, today string) []models.HabitStatus {
	done := make(map[string]bool, len(in.TodayCompletions))
	for _, c := range in.TodayCompletions {
		if c.Day == today {
			done[c.HabitID] = true
		}
	}
	out := make([]models.HabitStatus, 0, len(in.ActiveHabits))
	for _, h := range in.ActiveHabits {
		out = append(out, models.HabitStatus{
			Habit:          h,
			CompletedToday: done[h.ID],
			Streak:         in.Streaks[h.ID],
		})
	}
	return out
}

func days(completions []models.Completion) []string {
	out := make([]string, len(completions))
	for i, c := range completions {
		out[i] = c.Day
	}
	return out
}
