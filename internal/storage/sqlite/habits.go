package sqlite

import (
	"fmt"
	"time"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/storage"
)

const selectHabits = "SELECT " + storage.HabitColumns + " FROM habits"

func (s *Store) AddHabit(habit models.Habit) error {
	_, err := s.db.Exec(`
		INSERT INTO habits (id, user_id, name, category, description, time_required, difficulty, active, created_at, deactivated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		habit.ID, habit.UserID, habit.Name, habit.Category, habit.Description,
		habit.TimeRequired, habit.Difficulty, habit.Active,
		storage.FormatTime(habit.CreatedAt), storage.NullTime(habit.DeactivatedAt))
	return err
}

func (s *Store) GetHabit(id string) (models.Habit, error) {
	h, err := storage.ScanHabit(s.db.QueryRow(selectHabits+" WHERE id = ?", id))
	if err != nil {
		return models.Habit{}, storage.NotFound(err, "habit "+id)
	}
	return h, nil
}

func (s *Store) GetHabitByName(userID, name string) (models.Habit, error) {
	row := s.db.QueryRow(selectHabits+` WHERE user_id = ? AND name = ? COLLATE NOCASE AND active = 1
		ORDER BY created_at LIMIT 1`, userID, name)
	h, err := storage.ScanHabit(row)
	if err != nil {
		return models.Habit{}, storage.NotFound(err, "habit "+name)
	}
	return h, nil
}

func (s *Store) GetActiveHabits(userID string) ([]models.Habit, error) {
	return s.GetAllHabits(userID, false)
}

func (s *Store) GetAllHabits(userID string, includeInactive bool) ([]models.Habit, error) {
	query := selectHabits + " WHERE user_id = ?"
	if !includeInactive {
		query += " AND active = 1"
	}
	query += " ORDER BY created_at, name, id"

	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	return storage.CollectRows(rows, storage.ScanHabit)
}

func (s *Store) UpdateHabit(habit models.Habit) error {
	result, err := s.db.Exec(`
		UPDATE habits SET name = ?, category = ?, description = ?, time_required = ?,
			difficulty = ?, active = ?, deactivated_at = ?
		WHERE id = ?`,
		habit.Name, habit.Category, habit.Description, habit.TimeRequired,
		habit.Difficulty, habit.Active, storage.NullTime(habit.DeactivatedAt), habit.ID)
	if err != nil {
		return err
	}
	return requireRow(result, "habit "+habit.ID)
}

func (s *Store) DeactivateHabit(id string) error {
	now := storage.FormatTime(time.Now())
	result, err := s.db.Exec("UPDATE habits SET active = 0, deactivated_at = ? WHERE id = ?", now, id)
	if err != nil {
		return err
	}
	return requireRow(result, "habit "+id)
}

func (s *Store) ReactivateHabit(id string) error {
	result, err := s.db.Exec("UPDATE habits SET active = 1, deactivated_at = NULL WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRow(result, "habit "+id)
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func requireRow(result rowsAffecter, resource string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", resource, storage.ErrNotFound)
	}
	return nil
}
