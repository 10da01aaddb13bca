package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
)

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Column lists shared by the SQL stores, in the order the Scan helpers expect.
const (
	UserColumns       = "id, name, created_at"
	HabitColumns      = "id, user_id, name, category, description, time_required, difficulty, active, created_at, deactivated_at"
	CompletionColumns = "id, habit_id, user_id, completed_at, day, rating, notes"
	MetricsColumns    = "id, user_id, day, energy, focus, mood, productivity, sleep_quality, sleep_hours, notes, created_at, updated_at"
)

// FormatTime renders timestamps the way every store persists them.
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// NullTime converts an optional timestamp into a nullable column value.
func NullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: FormatTime(*t), Valid: true}
}

func parseTime(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", field, err)
	}
	return t, nil
}

func ScanUser(row Scanner) (models.User, error) {
	var u models.User
	var createdAt string
	if err := row.Scan(&u.ID, &u.Name, &createdAt); err != nil {
		return models.User{}, err
	}
	var err error
	if u.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func ScanHabit(row Scanner) (models.Habit, error) {
	var h models.Habit
	var createdAt string
	var deactivatedAt sql.NullString

	err := row.Scan(&h.ID, &h.UserID, &h.Name, &h.Category, &h.Description,
		&h.TimeRequired, &h.Difficulty, &h.Active, &createdAt, &deactivatedAt)
	if err != nil {
		return models.Habit{}, err
	}

	if h.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return models.Habit{}, fmt.Errorf("habit %s: %w", h.ID, err)
	}
	if deactivatedAt.Valid {
		t, err := parseTime("deactivated_at", deactivatedAt.String)
		if err != nil {
			return models.Habit{}, fmt.Errorf("habit %s: %w", h.ID, err)
		}
		h.DeactivatedAt = &t
	}
	return h, nil
}

func ScanCompletion(row Scanner) (models.Completion, error) {
	var c models.Completion
	var completedAt string
	var rating sql.NullInt64

	err := row.Scan(&c.ID, &c.HabitID, &c.UserID, &completedAt, &c.Day, &rating, &c.Notes)
	if err != nil {
		return models.Completion{}, err
	}

	if c.CompletedAt, err = parseTime("completed_at", completedAt); err != nil {
		return models.Completion{}, fmt.Errorf("completion %s: %w", c.ID, err)
	}
	if rating.Valid {
		r := int(rating.Int64)
		c.Rating = &r
	}
	return c, nil
}

func ScanDailyMetrics(row Scanner) (models.DailyMetrics, error) {
	var m models.DailyMetrics
	var createdAt, updatedAt string
	var sleepHours sql.NullFloat64

	err := row.Scan(&m.ID, &m.UserID, &m.Day, &m.Energy, &m.Focus, &m.Mood,
		&m.Productivity, &m.SleepQuality, &sleepHours, &m.Notes, &createdAt, &updatedAt)
	if err != nil {
		return models.DailyMetrics{}, err
	}

	if m.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return models.DailyMetrics{}, fmt.Errorf("metrics %s: %w", m.Day, err)
	}
	if m.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return models.DailyMetrics{}, fmt.Errorf("metrics %s: %w", m.Day, err)
	}
	if sleepHours.Valid {
		h := sleepHours.Float64
		m.SleepHours = &h
	}
	return m, nil
}

// NullRating converts an optional rating into a nullable column value.
func NullRating(r *int) sql.NullInt64 {
	if r == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*r), Valid: true}
}

// NullFloat converts an optional float into a nullable column value.
func NullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

// CollectRows drains rows through scan, closing rows when done.
func CollectRows[T any](rows *sql.Rows, scan func(Scanner) (T, error)) ([]T, error) {
	defer rows.Close()
	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// NotFound maps sql.ErrNoRows to ErrNotFound and passes other errors through.
func NotFound(err error, resource string) error {
	if err == sql.ErrNoRows {
		return fmt.Errorf("%s: %w", resource, ErrNotFound)
	}
	return err
}
