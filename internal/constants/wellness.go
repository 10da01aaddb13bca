package constants

const (
	// Daily metric ratings are integers on a closed 1-10 scale.
	MetricMin = 1
	MetricMax = 10
	// MetricMidpoint is the value every metric takes when a user has no
	// DailyMetrics rows in the window yet.
	MetricMidpoint = 5.0

	MaxSleepHours = 24.0

	// Completion ratings are optional, 1-5.
	RatingMin = 1
	RatingMax = 5

	// Recommendation priorities, 1 is most important.
	PriorityHighest = 1
	PriorityLowest  = 5
)

func init() {
	if MetricMidpoint < MetricMin || MetricMidpoint > MetricMax {
		panic("MetricMidpoint must lie within [MetricMin, MetricMax]")
	}
}
