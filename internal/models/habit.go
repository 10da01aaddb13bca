package models

import "time"

// Habit represents a recurring practice a user tracks
type Habit struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Description   string     `json:"description"`
	TimeRequired  string     `json:"time_required"` // free label, e.g. "10 min"
	Difficulty    string     `json:"difficulty"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
	DeactivatedAt *time.Time `json:"deactivated_at,omitempty"`
}

// Completion records that a habit was done on a calendar day.
// At most one completion exists per (habit, day).
type Completion struct {
	ID          string    `json:"id"`
	HabitID     string    `json:"habit_id"`
	UserID      string    `json:"user_id"`
	CompletedAt time.Time `json:"completed_at"`
	Day         string    `json:"day"` // YYYY-MM-DD in the user's timezone
	Rating      *int      `json:"rating,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}
