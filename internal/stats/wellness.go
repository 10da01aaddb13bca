package stats

import (
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/constants"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
)

// Averages returns each metric's mean over rows. With no rows every metric
// takes constants.MetricMidpoint so a new user's score is neutral, not 0.
func Averages(rows []models.DailyMetrics) models.MetricAverages {
	if len(rows) == 0 {
		return models.MetricAverages{
			Energy:       constants.MetricMidpoint,
			Focus:        constants.MetricMidpoint,
			Mood:         constants.MetricMidpoint,
			Productivity: constants.MetricMidpoint,
			SleepQuality: constants.MetricMidpoint,
		}
	}

	var sum models.MetricAverages
	for _, r := range rows {
		sum.Energy += float64(r.Energy)
		sum.Focus += float64(r.Focus)
		sum.Mood += float64(r.Mood)
		sum.Productivity += float64(r.Productivity)
		sum.SleepQuality += float64(r.SleepQuality)
	}
	n := float64(len(rows))
	return models.MetricAverages{
		Energy:       sum.Energy / n,
		Focus:        sum.Focus / n,
		Mood:         sum.Mood / n,
		Productivity: sum.Productivity / n,
		SleepQuality: sum.SleepQuality / n,
	}
}

// WellnessScore is the mean of the five metric averages.
func WellnessScore(a models.MetricAverages) float64 {
	return (a.Energy + a.Focus + a.Mood + a.Productivity + a.SleepQuality) / 5
}

// DayScore is the wellness score of a single day's ratings.
func DayScore(r models.DailyMetrics) float64 {
	return WellnessScore(Averages([]models.DailyMetrics{r}))
}

// Lowest returns the name of the weakest metric, used to steer fallback
// recommendations. Ties resolve in declaration order.
func Lowest(a models.MetricAverages) string {
	name, low := "energy", a.Energy
	for _, m := range []struct {
		name string
		v    float64
	}{
		{"focus", a.Focus},
		{"mood", a.Mood},
		{"productivity", a.Productivity},
		{"sleep_quality", a.SleepQuality},
	} {
		if m.v < low {
			name, low = m.name, m.v
		}
	}
	return name
}
