package recommend

import (
	"context"
	"time"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/logger"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
)

// DefaultTimeout bounds one primary call when none is configured.
const DefaultTimeout = 8 * time.Second

// Resilient calls Primary within Timeout and substitutes the static fallback
// on any failure. It never returns an error.
type Resilient struct {
	Primary Recommender
	Timeout time.Duration
}

// Fetch returns recommendations and where they came from.
func (r Resilient) Fetch(ctx context.Context, summary models.DashboardSummary) Result {
	if r.Primary == nil {
		return Result{Items: Fallback(summary), Source: SourceFallback}
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		items []models.Recommendation
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		items, err := r.Primary.Recommend(callCtx, summary)
		done <- outcome{items, err}
	}()

	// The select keeps a primary that ignores its context from holding the dashboard.
	select {
	case o := <-done:
		if o.err == nil && len(o.items) > 0 {
			return Result{Items: o.items, Source: SourceLLM}
		}
		if o.err != nil {
			logger.Named("recommend").Warn("recommendations unavailable, using fallback", "error", o.err)
		}
	case <-callCtx.Done():
		logger.Named("recommend").Warn("recommendations timed out, using fallback", "timeout", timeout, "error", callCtx.Err())
	}

	return Result{Items: Fallback(summary), Source: SourceFallback}
}

// Recommend satisfies Recommender; the error is always nil.
func (r Resilient) Recommend(ctx context.Context, summary models.DashboardSummary) ([]models.Recommendation, error) {
	return r.Fetch(ctx, summary).Items, nil
}
