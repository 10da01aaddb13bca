package engine

import "github.com/thatappguy71/EvolvAssistant-sub000/internal/models"

//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=engine
//go:generate mockgen -destination=mock_recommender_test.go -package=engine github.com/thatappguy71/EvolvAssistant-sub000/internal/recommend Recommender

// EventStore is the subset of storage.Provider the engine reads and writes.
type EventStore interface {
	GetUser(id string) (models.User, error)

	GetHabit(id string) (models.Habit, error)
	GetActiveHabits(userID string) ([]models.Habit, error)
	GetAllHabits(userID string, includeInactive bool) ([]models.Habit, error)
	AddHabit(habit models.Habit) error
	DeactivateHabit(id string) error
	ReactivateHabit(id string) error

	AddCompletion(c models.Completion) error
	GetCompletion(habitID, day string) (models.Completion, error)
	GetCompletionsForHabit(habitID string) ([]models.Completion, error)
	GetCompletionsForUserOnDay(userID, day string) ([]models.Completion, error)
	GetCompletionsForUserRange(userID, startDay, endDay string) ([]models.Completion, error)
	DeleteCompletion(id string) error

	UpsertDailyMetrics(m models.DailyMetrics) error
	GetDailyMetricsRange(userID, startDay, endDay string) ([]models.DailyMetrics, error)
}
