package storage

import (
	"errors"

	apperrors "github.com/thatappguy71/EvolvAssistant-sub000/internal/errors"
)

var (
	// ErrNotFound is returned when a lookup matches no row. It is the same
	// sentinel as the application-level not-found error.
	ErrNotFound = apperrors.ErrNotFound
	// ErrDuplicateCompletion is returned when a habit is completed twice on one day.
	ErrDuplicateCompletion = errors.New("habit already completed for this day")
	// ErrNotInitialized is returned by Load before Init has created the store.
	ErrNotInitialized = errors.New("storage not initialized, run 'evolv init' first")
)
