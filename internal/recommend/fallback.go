package recommend

import (
	"context"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/constants"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/stats"
)

// FallbackCount is the number of static recommendations returned.
const FallbackCount = 5

// one suggestion per tracked metric, in display order
var byMetric = []struct {
	metric string
	rec    models.Recommendation
}{
	{"sleep_quality", models.Recommendation{
		Title:       "Protect a consistent bedtime",
		Description: "Go to bed within the same 30-minute window tonight and keep screens out of the last half hour.",
		Category:    constants.CategorySleep,
	}},
	{"energy", models.Recommendation{
		Title:       "Take a 10-minute morning walk",
		Description: "Daylight and light movement early in the day raise energy more reliably than caffeine.",
		Category:    constants.CategoryFitness,
	}},
	{"focus", models.Recommendation{
		Title:       "Box breathing before deep work",
		Description: "Four rounds of 4-4-4-4 breathing settle attention before a focused block.",
		Category:    constants.CategoryMindfulness,
	}},
	{"mood", models.Recommendation{
		Title:       "Write down three good things",
		Description: "Note three things that went well today and why they happened.",
		Category:    constants.CategoryMindfulness,
	}},
	{"productivity", models.Recommendation{
		Title:       "Pick tomorrow's top three",
		Description: "Before you finish today, choose the three tasks that would make tomorrow a win.",
		Category:    constants.CategoryProductivity,
	}},
}

var startSmall = models.Recommendation{
	Title:       "Start with one small habit",
	Description: "Add a single habit that takes under five minutes so you can build a streak from day one.",
	Category:    constants.CategoryOther,
}

// Fallback returns a deterministic list of FallbackCount suggestions. The
// suggestion for the weakest metric comes first.
func Fallback(summary models.DashboardSummary) []models.Recommendation {
	lowest := stats.Lowest(summary.MetricAverages)

	out := make([]models.Recommendation, 0, FallbackCount)
	if summary.TotalHabitsToday == 0 {
		r := startSmall
		r.Reason = "You have no active habits yet."
		out = append(out, r)
	}
	for _, m := range byMetric {
		if m.metric == lowest {
			r := m.rec
			r.Reason = "Your " + humanMetric(lowest) + " has been your lowest rating recently."
			out = append(out, r)
		}
	}
	for _, m := range byMetric {
		if m.metric != lowest {
			out = append(out, m.rec)
		}
	}

	out = out[:FallbackCount]
	for i := range out {
		out[i].Priority = min(i+constants.PriorityHighest, constants.PriorityLowest)
	}
	return out
}

func humanMetric(name string) string {
	if name == "sleep_quality" {
		return "sleep quality"
	}
	return name
}

// FallbackRecommender serves the static list and never fails.
type FallbackRecommender struct{}

func (FallbackRecommender) Recommend(_ context.Context, summary models.DashboardSummary) ([]models.Recommendation, error) {
	return Fallback(summary), nil
}
