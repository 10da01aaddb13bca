package engine

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/thatappguy71/EvolvAssistant-sub000/internal/errors"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/storage"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/utils"
)

// CompletionInput carries the optional details of a completion.
type CompletionInput struct {
	Rating *int
	Notes  string
}

// DayStatus is one day of a habit's history.
type DayStatus struct {
	Day       string `json:"day"`
	Completed bool   `json:"completed"`
}

// Complete records that the habit was done on day (today when empty).
// Completing an inactive habit, or a habit twice on one day, is an input error.
func (e *Engine) Complete(ctx context.Context, habitID, day string, in CompletionInput) (models.Completion, error) {
	if err := checkID("habit", habitID); err != nil {
		return models.Completion{}, err
	}
	day, err := e.resolveDay(day)
	if err != nil {
		return models.Completion{}, err
	}
	if err := e.validator.ValidateCompletion(day, in.Rating).Err(); err != nil {
		return models.Completion{}, err
	}

	habit, err := e.store.GetHabit(habitID)
	if err != nil {
		return models.Completion{}, storeErr("get", "habit", habitID, err)
	}
	if !habit.Active {
		return models.Completion{}, apperrors.Invalid("habit %q is inactive", habit.Name)
	}
	if err := cancelled(ctx); err != nil {
		return models.Completion{}, err
	}

	c := models.Completion{
		ID:          uuid.New().String(),
		HabitID:     habit.ID,
		UserID:      habit.UserID,
		CompletedAt: e.now(),
		Day:         day,
		Rating:      in.Rating,
		Notes:       strings.TrimSpace(in.Notes),
	}
	if err := e.store.AddCompletion(c); err != nil {
		if errors.Is(err, storage.ErrDuplicateCompletion) {
			return models.Completion{}, ErrAlreadyCompleted
		}
		return models.Completion{}, storeErr("add", "completion", c.ID, err)
	}
	e.log.Debug("habit completed", "habit", habitID, "day", day)
	return c, nil
}

// Uncomplete removes the habit's completion for day (today when empty).
func (e *Engine) Uncomplete(ctx context.Context, habitID, day string) error {
	if err := checkID("habit", habitID); err != nil {
		return err
	}
	day, err := e.resolveDay(day)
	if err != nil {
		return err
	}

	c, err := e.store.GetCompletion(habitID, day)
	if err != nil {
		return storeErr("get", "completion", habitID+"@"+day, err)
	}
	if err := cancelled(ctx); err != nil {
		return err
	}
	if err := e.store.DeleteCompletion(c.ID); err != nil {
		return storeErr("delete", "completion", c.ID, err)
	}
	e.log.Debug("habit uncompleted", "habit", habitID, "day", day)
	return nil
}

// Toggle flips the habit's state for day and reports whether it is now completed.
func (e *Engine) Toggle(ctx context.Context, habitID, day string, in CompletionInput) (bool, error) {
	if err := checkID("habit", habitID); err != nil {
		return false, err
	}
	day, err := e.resolveDay(day)
	if err != nil {
		return false, err
	}

	_, err = e.store.GetCompletion(habitID, day)
	switch {
	case err == nil:
		return false, e.Uncomplete(ctx, habitID, day)
	case errors.Is(err, storage.ErrNotFound):
		if _, err := e.Complete(ctx, habitID, day, in); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, storeErr("get", "completion", habitID+"@"+day, err)
	}
}

// IsCompletedToday reports whether the habit has a completion for today.
func (e *Engine) IsCompletedToday(ctx context.Context, habitID string) (bool, error) {
	if err := checkID("habit", habitID); err != nil {
		return false, err
	}
	today, err := e.Today()
	if err != nil {
		return false, err
	}
	if err := cancelled(ctx); err != nil {
		return false, err
	}

	_, err = e.store.GetCompletion(habitID, today)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, storage.ErrNotFound):
		return false, nil
	default:
		return false, storeErr("get", "completion", habitID+"@"+today, err)
	}
}

// HabitHistory returns the last n days, oldest first, ending today.
func (e *Engine) HabitHistory(ctx context.Context, habitID string, n int) ([]DayStatus, error) {
	if err := checkID("habit", habitID); err != nil {
		return nil, err
	}
	if n <= 0 || n > 366 {
		return nil, apperrors.Invalid("history length must be between 1 and 366 days, got %d", n)
	}
	today, err := e.Today()
	if err != nil {
		return nil, err
	}
	start, err := utils.AddDays(today, -(n - 1))
	if err != nil {
		return nil, err
	}
	if err := cancelled(ctx); err != nil {
		return nil, err
	}

	completions, err := e.store.GetCompletionsForHabit(habitID)
	if err != nil {
		return nil, storeErr("list completions for", "habit", habitID, err)
	}
	done := make(map[string]bool, len(completions))
	for _, c := range completions {
		done[c.Day] = true
	}

	span, err := utils.DayRange(start, today)
	if err != nil {
		return nil, err
	}
	out := make([]DayStatus, len(span))
	for i, d := range span {
		out[i] = DayStatus{Day: d, Completed: done[d]}
	}
	return out, nil
}
