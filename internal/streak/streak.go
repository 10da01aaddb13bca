// Package streak computes consecutive-day completion runs for a habit.
//
// All computations take "today" as an explicit YYYY-MM-DD calendar day and
// never read the system clock. Timestamps are bucketed into days with a
// single caller-supplied location, and day stepping is done on civil dates so
// DST transitions never skip or repeat a day.
package streak

import (
	"fmt"
	"sort"
	"time"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/constants"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/errors"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/utils"
)

// Policy decides how a day without a completion yet is treated.
type Policy string

const (
	// PolicyGrace lets today stay unlogged: the run is counted back from
	// yesterday when today has no completion.
	PolicyGrace Policy = constants.StreakPolicyGrace
	// PolicyStrict counts back from today and stops at the first gap, so an
	// unlogged today yields 0.
	PolicyStrict Policy = constants.StreakPolicyStrict
)

// ParsePolicy maps a settings value to a Policy. Empty means PolicyGrace.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyGrace:
		return PolicyGrace, nil
	case PolicyStrict:
		return PolicyStrict, nil
	default:
		return "", errors.Invalid("unknown streak policy %q (expected %q or %q)", s, PolicyGrace, PolicyStrict)
	}
}

// DaySet reduces timestamps to the distinct calendar days they fall on in loc.
func DaySet(completedAt []time.Time, loc *time.Location) map[string]struct{} {
	set := make(map[string]struct{}, len(completedAt))
	for _, t := range completedAt {
		set[utils.DayKey(t, loc)] = struct{}{}
	}
	return set
}

// Calculate returns the number of consecutive calendar days, walking back from
// today, on which at least one of the timestamps falls.
func Calculate(completedAt []time.Time, today string, loc *time.Location, policy Policy) (int, error) {
	return walk(DaySet(completedAt, loc), today, policy)
}

// FromDays is Calculate for values that are already YYYY-MM-DD day keys.
func FromDays(days []string, today string, policy Policy) (int, error) {
	set := make(map[string]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return walk(set, today, policy)
}

func walk(set map[string]struct{}, today string, policy Policy) (int, error) {
	cursor, err := utils.ParseDay(today)
	if err != nil {
		return 0, errors.Invalid("today: %v", err)
	}
	if len(set) == 0 {
		return 0, nil
	}

	if _, done := set[key(cursor)]; !done {
		switch policy {
		case PolicyStrict:
			return 0, nil
		case PolicyGrace, "":
			cursor = cursor.AddDate(0, 0, -1)
		default:
			return 0, errors.Invalid("unknown streak policy %q", policy)
		}
	}

	streak := 0
	for {
		if _, ok := set[key(cursor)]; !ok {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak, nil
}

// Longest returns the longest run of consecutive days anywhere in days.
// Malformed day keys are ignored.
func Longest(days []string) int {
	parsed := make([]time.Time, 0, len(days))
	seen := make(map[string]struct{}, len(days))
	for _, d := range days {
		if _, dup := seen[d]; dup {
			continue
		}
		t, err := utils.ParseDay(d)
		if err != nil {
			continue
		}
		seen[d] = struct{}{}
		parsed = append(parsed, t)
	}
	if len(parsed) == 0 {
		return 0
	}
	sort.Slice(parsed, func(i, j int) bool { return parsed[i].Before(parsed[j]) })

	longest, run := 1, 1
	for i := 1; i < len(parsed); i++ {
		if parsed[i-1].AddDate(0, 0, 1).Equal(parsed[i]) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func key(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Describe renders a streak for CLI output, e.g. "3 days".
func Describe(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
