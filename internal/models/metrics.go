package models

import "time"

// DailyMetrics holds a user's self-reported wellness ratings for one day.
type DailyMetrics struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Day          string    `json:"day"` // YYYY-MM-DD format
	Energy       int       `json:"energy"`
	Focus        int       `json:"focus"`
	Mood         int       `json:"mood"`
	Productivity int       `json:"productivity"`
	SleepQuality int       `json:"sleep_quality"`
	SleepHours   *float64  `json:"sleep_hours,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MetricAverages are the per-metric means over a window of DailyMetrics.
type MetricAverages struct {
	Energy       float64 `json:"energy"`
	Focus        float64 `json:"focus"`
	Mood         float64 `json:"mood"`
	Productivity float64 `json:"productivity"`
	SleepQuality float64 `json:"sleep_quality"`
}
