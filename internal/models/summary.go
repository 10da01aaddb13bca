package models

// DashboardSummary is the aggregate shown on a user's dashboard.
type DashboardSummary struct {
	CurrentStreak        int            `json:"current_streak"`
	HabitsCompletedToday int            `json:"habits_completed_today"`
	TotalHabitsToday     int            `json:"total_habits_today"`
	WellnessScore        float64        `json:"wellness_score"`
	WeeklyProgress       float64        `json:"weekly_progress"` // percent of today's habits done
	MetricAverages       MetricAverages `json:"metric_averages"`
	WindowCompletionRate float64        `json:"window_completion_rate"`
	MetricDays           int            `json:"metric_days"` // rows that fed the wellness score
}

// HabitStatus is one active habit's state for a day.
type HabitStatus struct {
	Habit          Habit `json:"habit"`
	CompletedToday bool  `json:"completed_today"`
	Streak         int   `json:"streak"`
}
