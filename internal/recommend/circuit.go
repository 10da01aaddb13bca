package recommend

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
)

// ErrCircuitOpen is returned while the breaker is rejecting calls.
var ErrCircuitOpen = errors.New("circuit open")

// CircuitState represents the state of a circuit breaker.
type CircuitState int

const (
	CircuitClosed   CircuitState = iota // Normal operation
	CircuitOpen                         // Failing, reject requests
	CircuitHalfOpen                     // Testing recovery
)

func (s CircuitState) String() string {
	switch s {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// BreakerConfig tunes a CircuitBreaker. Zero values pick the defaults.
type BreakerConfig struct {
	FailThreshold    int
	SuccessThreshold int
	OpenTimeout      time.Duration
}

// CircuitBreaker stops calling a failing upstream for a cool-down period.
// It is the only state shared between requests, so every field is guarded.
type CircuitBreaker struct {
	mu              sync.Mutex
	state           CircuitState
	failures        int
	successes       int // consecutive successes in half-open
	lastStateChange time.Time
	now             func() time.Time

	failThreshold    int
	successThreshold int
	openTimeout      time.Duration
}

func NewCircuitBreaker(cfg BreakerConfig) *CircuitBreaker {
	if cfg.FailThreshold <= 0 {
		cfg.FailThreshold = 5
	}
	if cfg.SuccessThreshold <= 0 {
		cfg.SuccessThreshold = 2
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	return &CircuitBreaker{
		state:            CircuitClosed,
		lastStateChange:  time.Now(),
		now:              time.Now,
		failThreshold:    cfg.FailThreshold,
		successThreshold: cfg.SuccessThreshold,
		openTimeout:      cfg.OpenTimeout,
	}
}

// Allow checks whether a request should be allowed through.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.maybeHalfOpen()
	return cb.state != CircuitOpen
}

// RecordSuccess records a successful upstream call.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case CircuitHalfOpen:
		cb.successes++
		if cb.successes >= cb.successThreshold {
			cb.transition(CircuitClosed)
		}
	case CircuitClosed:
		cb.failures = 0
	}
}

// RecordFailure records a failed upstream call.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case CircuitClosed:
		cb.failures++
		if cb.failures >= cb.failThreshold {
			cb.transition(CircuitOpen)
		}
	case CircuitHalfOpen:
		// Any failure in half-open goes straight back to open.
		cb.transition(CircuitOpen)
	}
}

// State returns the current circuit state.
func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.maybeHalfOpen()
	return cb.state
}

// Reset manually returns the breaker to closed.
func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.transition(CircuitClosed)
}

// caller holds mu
func (cb *CircuitBreaker) maybeHalfOpen() {
	if cb.state == CircuitOpen && cb.now().Sub(cb.lastStateChange) >= cb.openTimeout {
		cb.transition(CircuitHalfOpen)
	}
}

// caller holds mu
func (cb *CircuitBreaker) transition(to CircuitState) {
	cb.state = to
	cb.failures = 0
	cb.successes = 0
	cb.lastStateChange = cb.now()
}

// Guard wraps next so calls are skipped while the breaker is open.
func (cb *CircuitBreaker) Guard(next Recommender) Recommender {
	return RecommenderFunc(func(ctx context.Context, summary models.DashboardSummary) ([]models.Recommendation, error) {
		if !cb.Allow() {
			return nil, ErrCircuitOpen
		}
		items, err := next.Recommend(ctx, summary)
		if err != nil {
			cb.RecordFailure()
			return nil, err
		}
		cb.RecordSuccess()
		return items, nil
	})
}
