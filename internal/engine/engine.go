// Package engine is the habit consistency engine: streaks, the dashboard
// summary and the habit, completion and metrics writes that feed them.
//
// Every operation is request-scoped. The engine holds no mutable state and
// can be shared between goroutines as long as its store can.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	apperrors "github.com/thatappguy71/EvolvAssistant-sub000/internal/errors"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/logger"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/recommend"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/storage"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/streak"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/utils"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/validation"
)

// ErrAlreadyCompleted is returned by Complete when the habit already has a
// completion for the requested day.
var ErrAlreadyCompleted = fmt.Errorf("%w: habit already completed for this day", apperrors.ErrInvalidInput)

type Engine struct {
	store       EventStore
	recommender recommend.Recommender
	settings    models.Settings
	now         func() time.Time
	validator   *validation.Validator
	log         *log.Logger
}

type Option func(*Engine)

// WithClock replaces time.Now, which only ever decides what "today" is.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithRecommender sets the recommendation source used by Dashboard.
func WithRecommender(r recommend.Recommender) Option {
	return func(e *Engine) { e.recommender = r }
}

// WithSettings sets timezone, streak policy, metrics window and timeouts.
func WithSettings(s models.Settings) Option {
	return func(e *Engine) { e.settings = s }
}

func New(store EventStore, opts ...Option) *Engine {
	e := &Engine{
		store:     store,
		settings:  storage.DefaultSettings(),
		now:       time.Now,
		validator: validation.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = logger.Named("engine")
	return e
}

// Settings returns the settings the engine was built with.
func (e *Engine) Settings() models.Settings {
	return e.settings
}

func (e *Engine) location() (*time.Location, error) {
	loc, err := utils.LoadLocation(e.settings.Timezone)
	if err != nil {
		return nil, apperrors.Invalid("timezone %q: %v", e.settings.Timezone, err)
	}
	return loc, nil
}

// Today returns the current calendar day in the configured timezone.
func (e *Engine) Today() (string, error) {
	loc, err := e.location()
	if err != nil {
		return "", err
	}
	return utils.DayKey(e.now(), loc), nil
}

func (e *Engine) policy() (streak.Policy, error) {
	return streak.ParsePolicy(e.settings.StreakPolicy)
}

func (e *Engine) windowDays() int {
	if e.settings.MetricsWindowDays <= 0 {
		return 7
	}
	return e.settings.MetricsWindowDays
}

// checkID rejects empty or malformed ids before any read.
func checkID(kind, id string) error {
	if id == "" {
		return apperrors.Invalid("%s id is required", kind)
	}
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.Invalid("%s id %q is not a valid id", kind, id)
	}
	return nil
}

// resolveDay defaults an empty day to today and validates the rest. Days
// after today are rejected.
func (e *Engine) resolveDay(day string) (string, error) {
	today, err := e.Today()
	if err != nil {
		return "", err
	}
	if day == "" {
		return today, nil
	}
	if !utils.ValidateDay(day) {
		return "", apperrors.Invalid("invalid day %q (expected YYYY-MM-DD)", day)
	}
	if day > today {
		return "", apperrors.Invalid("day %s is in the future (today is %s)", day, today)
	}
	return day, nil
}

// storeErr classifies a store failure: missing rows stay not-found, anything
// else becomes a retryable upstream error.
func storeErr(op, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, storage.ErrNotFound) {
		return &apperrors.OpError{Op: op, Resource: resource, ID: id, Err: apperrors.ErrNotFound}
	}
	return apperrors.Upstream(op+" "+resource, err)
}

// cancelled lets long read sequences stop early. The computation has no side
// effects so abandoning it is always safe.
func cancelled(ctx context.Context) error {
	return ctx.Err()
}
