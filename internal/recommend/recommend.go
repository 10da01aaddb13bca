// Package recommend turns a dashboard summary into ranked suggestions, either
// from an OpenAI-compatible chat endpoint or from a static fallback list.
package recommend

import (
	"context"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
)

// Recommender produces ranked suggestions for a summary.
type Recommender interface {
	Recommend(ctx context.Context, summary models.DashboardSummary) ([]models.Recommendation, error)
}

// Source records where a set of recommendations came from.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// Result is a recommendation set together with its origin.
type Result struct {
	Items  []models.Recommendation `json:"items"`
	Source Source                  `json:"source"`
}

// RecommenderFunc adapts a plain function to the Recommender interface.
type RecommenderFunc func(ctx context.Context, summary models.DashboardSummary) ([]models.Recommendation, error)

func (f RecommenderFunc) Recommend(ctx context.Context, summary models.DashboardSummary) ([]models.Recommendation, error) {
	return f(ctx, summary)
}
