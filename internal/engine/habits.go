package engine

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/constants"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
)

// HabitInput holds the user-editable fields of a new habit.
type HabitInput struct {
	Name         string
	Category     string
	Description  string
	TimeRequired string
	Difficulty   string
}

// CreateHabit validates and stores a new active habit for the user.
func (e *Engine) CreateHabit(ctx context.Context, userID string, in HabitInput) (models.Habit, error) {
	if err := checkID("user", userID); err != nil {
		return models.Habit{}, err
	}

	habit := models.Habit{
		ID:           uuid.New().String(),
		UserID:       userID,
		Name:         strings.TrimSpace(in.Name),
		Category:     strings.ToLower(strings.TrimSpace(in.Category)),
		Description:  strings.TrimSpace(in.Description),
		TimeRequired: strings.TrimSpace(in.TimeRequired),
		Difficulty:   strings.ToLower(strings.TrimSpace(in.Difficulty)),
		Active:       true,
		CreatedAt:    e.now(),
	}
	if habit.Category == "" {
		habit.Category = constants.CategoryOther
	}
	if habit.Difficulty == "" {
		habit.Difficulty = constants.DifficultyEasy
	}

	if _, err := e.store.GetUser(userID); err != nil {
		return models.Habit{}, storeErr("get", "user", userID, err)
	}
	existing, err := e.store.GetActiveHabits(userID)
	if err != nil {
		return models.Habit{}, storeErr("list active habits for", "user", userID, err)
	}
	result := e.validator.ValidateHabit(habit, existing)
	if err := result.Err(); err != nil {
		return models.Habit{}, err
	}
	if err := cancelled(ctx); err != nil {
		return models.Habit{}, err
	}

	if err := e.store.AddHabit(habit); err != nil {
		return models.Habit{}, storeErr("add", "habit", habit.ID, err)
	}
	e.log.Info("habit created", "habit", habit.ID, "user", userID, "name", habit.Name)
	return habit, nil
}

// DeactivateHabit hides a habit from the dashboard. Its completions are kept.
func (e *Engine) DeactivateHabit(ctx context.Context, habitID string) error {
	if err := checkID("habit", habitID); err != nil {
		return err
	}
	if err := cancelled(ctx); err != nil {
		return err
	}
	if err := e.store.DeactivateHabit(habitID); err != nil {
		return storeErr("deactivate", "habit", habitID, err)
	}
	e.log.Info("habit deactivated", "habit", habitID)
	return nil
}

// ReactivateHabit restores a deactivated habit, provided no other active
// habit has taken its name meanwhile.
func (e *Engine) ReactivateHabit(ctx context.Context, habitID string) error {
	if err := checkID("habit", habitID); err != nil {
		return err
	}
	habit, err := e.store.GetHabit(habitID)
	if err != nil {
		return storeErr("get", "habit", habitID, err)
	}
	existing, err := e.store.GetActiveHabits(habit.UserID)
	if err != nil {
		return storeErr("list active habits for", "user", habit.UserID, err)
	}
	habit.Active = true
	if err := e.validator.ValidateHabit(habit, existing).Err(); err != nil {
		return err
	}
	if err := cancelled(ctx); err != nil {
		return err
	}
	if err := e.store.ReactivateHabit(habitID); err != nil {
		return storeErr("reactivate", "habit", habitID, err)
	}
	e.log.Info("habit reactivated", "habit", habitID)
	return nil
}

// ListHabits returns the user's habits, optionally including inactive ones.
func (e *Engine) ListHabits(ctx context.Context, userID string, includeInactive bool) ([]models.Habit, error) {
	if err := checkID("user", userID); err != nil {
		return nil, err
	}
	if err := cancelled(ctx); err != nil {
		return nil, err
	}
	habits, err := e.store.GetAllHabits(userID, includeInactive)
	if err != nil {
		return nil, storeErr("list habits for", "user", userID, err)
	}
	return habits, nil
}
