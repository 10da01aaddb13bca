package storage

import "github.com/thatappguy71/EvolvAssistant-sub000/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Users
	AddUser(models.User) error
	GetUser(id string) (models.User, error)
	GetAllUsers() ([]models.User, error)

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	// GetHabitByName returns the user's active habit with the given name.
	GetHabitByName(userID, name string) (models.Habit, error)
	GetActiveHabits(userID string) ([]models.Habit, error)
	GetAllHabits(userID string, includeInactive bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	DeactivateHabit(id string) error
	ReactivateHabit(id string) error

	// Completions
	// AddCompletion returns ErrDuplicateCompletion when the habit already
	// has a completion for the same day.
	AddCompletion(models.Completion) error
	GetCompletion(habitID, day string) (models.Completion, error)
	GetCompletionsForHabit(habitID string) ([]models.Completion, error)
	GetCompletionsForUserOnDay(userID, day string) ([]models.Completion, error)
	GetCompletionsForUserRange(userID, startDay, endDay string) ([]models.Completion, error)
	DeleteCompletion(id string) error

	// Daily Metrics
	UpsertDailyMetrics(models.DailyMetrics) error
	GetDailyMetrics(userID, day string) (models.DailyMetrics, error)
	// GetDailyMetricsRange returns rows dated in [startDay, endDay], oldest first.
	GetDailyMetricsRange(userID, startDay, endDay string) ([]models.DailyMetrics, error)

	// Bulk Retrieval for Migration and Export
	GetAllCompletions() ([]models.Completion, error)
	GetAllDailyMetrics() ([]models.DailyMetrics, error)

	// Utils
	GetConfigPath() string
}
