package sqlite

import (
	"time"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/storage"
)

const selectMetrics = "SELECT " + storage.MetricsColumns + " FROM daily_metrics"

// UpsertDailyMetrics replaces the user's entry for m.Day, keeping the
// original id and created_at when one already exists.
func (s *Store) UpsertDailyMetrics(m models.DailyMetrics) error {
	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}

	_, err := s.db.Exec(`
		INSERT INTO daily_metrics (id, user_id, day, energy, focus, mood, productivity, sleep_quality, sleep_hours, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, day) DO UPDATE SET
			energy = excluded.energy,
			focus = excluded.focus,
			mood = excluded.mood,
			productivity = excluded.productivity,
			sleep_quality = excluded.sleep_quality,
			sleep_hours = excluded.sleep_hours,
			notes = excluded.notes,
			updated_at = excluded.updated_at`,
		m.ID, m.UserID, m.Day, m.Energy, m.Focus, m.Mood, m.Productivity, m.SleepQuality,
		storage.NullFloat(m.SleepHours), m.Notes,
		storage.FormatTime(m.CreatedAt), storage.FormatTime(m.UpdatedAt))
	return err
}

func (s *Store) GetDailyMetrics(userID, day string) (models.DailyMetrics, error) {
	row := s.db.QueryRow(selectMetrics+" WHERE user_id = ? AND day = ?", userID, day)
	m, err := storage.ScanDailyMetrics(row)
	if err != nil {
		return models.DailyMetrics{}, storage.NotFound(err, "metrics for "+day)
	}
	return m, nil
}

func (s *Store) GetDailyMetricsRange(userID, startDay, endDay string) ([]models.DailyMetrics, error) {
	rows, err := s.db.Query(selectMetrics+" WHERE user_id = ? AND day >= ? AND day <= ? ORDER BY day",
		userID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	return storage.CollectRows(rows, storage.ScanDailyMetrics)
}

func (s *Store) GetAllDailyMetrics() ([]models.DailyMetrics, error) {
	rows, err := s.db.Query(selectMetrics + " ORDER BY user_id, day")
	if err != nil {
		return nil, err
	}
	return storage.CollectRows(rows, storage.ScanDailyMetrics)
}
