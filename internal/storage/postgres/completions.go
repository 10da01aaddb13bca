package postgres

import (
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/storage"
)

const selectCompletions = "SELECT " + storage.CompletionColumns + " FROM completions"

func (s *Store) AddCompletion(c models.Completion) error {
	_, err := s.db.Exec(`
		INSERT INTO completions (id, habit_id, user_id, completed_at, day, rating, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.HabitID, c.UserID, storage.FormatTime(c.CompletedAt), c.Day,
		storage.NullRating(c.Rating), c.Notes)
	if isUniqueViolation(err) {
		return storage.ErrDuplicateCompletion
	}
	return err
}

func (s *Store) GetCompletion(habitID, day string) (models.Completion, error) {
	row := s.db.QueryRow(selectCompletions+" WHERE habit_id = $1 AND day = $2", habitID, day)
	c, err := storage.ScanCompletion(row)
	if err != nil {
		return models.Completion{}, storage.NotFound(err, "completion "+habitID+" on "+day)
	}
	return c, nil
}

func (s *Store) GetCompletionsForHabit(habitID string) ([]models.Completion, error) {
	rows, err := s.db.Query(selectCompletions+" WHERE habit_id = $1 ORDER BY day DESC", habitID)
	if err != nil {
		return nil, err
	}
	return storage.CollectRows(rows, storage.ScanCompletion)
}

func (s *Store) GetCompletionsForUserOnDay(userID, day string) ([]models.Completion, error) {
	rows, err := s.db.Query(selectCompletions+" WHERE user_id = $1 AND day = $2 ORDER BY completed_at", userID, day)
	if err != nil {
		return nil, err
	}
	return storage.CollectRows(rows, storage.ScanCompletion)
}

func (s *Store) GetCompletionsForUserRange(userID, startDay, endDay string) ([]models.Completion, error) {
	rows, err := s.db.Query(selectCompletions+`
		WHERE user_id = $1 AND day >= $2 AND day <= $3 ORDER BY day, completed_at`, userID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	return storage.CollectRows(rows, storage.ScanCompletion)
}

func (s *Store) DeleteCompletion(id string) error {
	result, err := s.db.Exec("DELETE FROM completions WHERE id = $1", id)
	if err != nil {
		return err
	}
	return requireRow(result, "completion "+id)
}

func (s *Store) GetAllCompletions() ([]models.Completion, error) {
	rows, err := s.db.Query(selectCompletions + " ORDER BY user_id, day, habit_id")
	if err != nil {
		return nil, err
	}
	return storage.CollectRows(rows, storage.ScanCompletion)
}
