package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
)

func TestResilientFetch(t *testing.T) {
	summary := models.DashboardSummary{TotalHabitsToday: 1}
	llmItems := []models.Recommendation{{Title: "From model", Category: "sleep", Priority: 1}}

	tests := []struct {
		name       string
		primary    Recommender
		timeout    time.Duration
		wantSource Source
	}{
		{
			name:       "nil primary",
			primary:    nil,
			wantSource: SourceFallback,
		},
		{
			name: "success",
			primary: RecommenderFunc(func(context.Context, models.DashboardSummary) ([]models.Recommendation, error) {
				return llmItems, nil
			}),
			wantSource: SourceLLM,
		},
		{
			name: "error",
			primary: RecommenderFunc(func(context.Context, models.DashboardSummary) ([]models.Recommendation, error) {
				return nil, errors.New("upstream down")
			}),
			wantSource: SourceFallback,
		},
		{
			name: "empty result",
			primary: RecommenderFunc(func(context.Context, models.DashboardSummary) ([]models.Recommendation, error) {
				return nil, nil
			}),
			wantSource: SourceFallback,
		},
		{
			name: "timeout with context-aware primary",
			primary: RecommenderFunc(func(ctx context.Context, _ models.DashboardSummary) ([]models.Recommendation, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}),
			timeout:    20 * time.Millisecond,
			wantSource: SourceFallback,
		},
		{
			name: "timeout with primary ignoring context",
			primary: RecommenderFunc(func(context.Context, models.DashboardSummary) ([]models.Recommendation, error) {
				time.Sleep(500 * time.Millisecond)
				return llmItems, nil
			}),
			timeout:    20 * time.Millisecond,
			wantSource: SourceFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			res := Resilient{Primary: tt.primary, Timeout: tt.timeout}.Fetch(context.Background(), summary)
			if res.Source != tt.wantSource {
				t.Errorf("expected source %s, got %s", tt.wantSource, res.Source)
			}
			if len(res.Items) == 0 {
				t.Error("expected recommendations in every case")
			}
			if tt.timeout > 0 && time.Since(start) > 250*time.Millisecond {
				t.Errorf("fetch was not bounded by its timeout: %s", time.Since(start))
			}
		})
	}
}

func TestResilientRecommendNeverErrors(t *testing.T) {
	r := Resilient{Primary: RecommenderFunc(func(context.Context, models.DashboardSummary) ([]models.Recommendation, error) {
		return nil, errors.New("boom")
	})}
	items, err := r.Recommend(context.Background(), models.DashboardSummary{})
	if err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if len(items) != FallbackCount {
		t.Errorf("expected fallback list, got %d items", len(items))
	}
}
