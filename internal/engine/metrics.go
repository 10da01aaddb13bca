package engine

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/utils"
)

// LogMetrics validates and upserts the user's ratings for m.Day (today when
// empty). A second entry for the same day replaces the first.
func (e *Engine) LogMetrics(ctx context.Context, m models.DailyMetrics) (models.DailyMetrics, error) {
	if err := checkID("user", m.UserID); err != nil {
		return models.DailyMetrics{}, err
	}
	day, err := e.resolveDay(m.Day)
	if err != nil {
		return models.DailyMetrics{}, err
	}
	m.Day = day
	if err := e.validator.ValidateMetrics(m).Err(); err != nil {
		return models.DailyMetrics{}, err
	}
	if err := cancelled(ctx); err != nil {
		return models.DailyMetrics{}, err
	}

	now := e.now()
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	if err := e.store.UpsertDailyMetrics(m); err != nil {
		return models.DailyMetrics{}, storeErr("upsert", "metrics", m.Day, err)
	}
	e.log.Debug("metrics logged", "user", m.UserID, "day", m.Day)
	return m, nil
}

// RecentMetrics returns the rows dated inside the window ending today,
// newest first.
func (e *Engine) RecentMetrics(ctx context.Context, userID string) ([]models.DailyMetrics, error) {
	if err := checkID("user", userID); err != nil {
		return nil, err
	}
	if err := cancelled(ctx); err != nil {
		return nil, err
	}
	today, err := e.Today()
	if err != nil {
		return nil, err
	}
	start, err := utils.AddDays(today, -(e.windowDays() - 1))
	if err != nil {
		return nil, err
	}
	rows, err := e.store.GetDailyMetricsRange(userID, start, today)
	if err != nil {
		return nil, storeErr("list metrics for", "user", userID, err)
	}
	slices.Reverse(rows)
	return rows, nil
}
