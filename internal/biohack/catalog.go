// Package biohack holds the built-in wellness techniques: breathing drills,
// cold exposure, binaural focus tones and non-sleep deep rest.
package biohack

import (
	"fmt"
	"strings"
	"time"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/constants"
	apperrors "github.com/thatappguy71/EvolvAssistant-sub000/internal/errors"
)

// Technique is one catalog entry.
type Technique struct {
	Slug         string
	Name         string
	Category     string
	Difficulty   string
	Duration     time.Duration
	Summary      string
	Benefits     []string
	Instructions []string
	Pattern      *BreathingPattern // breathing techniques only
	CarrierHz    float64           // binaural techniques only
	BeatHz       float64
}

// IsBreathing reports whether the technique can run as a guided timer.
func (t Technique) IsBreathing() bool { return t.Pattern != nil }

func (t Technique) IsBinaural() bool { return t.BeatHz > 0 }

var catalog = []Technique{
	{
		Slug:       "box-breathing",
		Name:       "Box Breathing",
		Category:   constants.CategoryMindfulness,
		Difficulty: constants.DifficultyEasy,
		Duration:   5 * time.Minute,
		Summary:    "Equal four-count inhale, hold, exhale and hold to settle the nervous system.",
		Benefits:   []string{"Lowers stress", "Sharpens focus"},
		Instructions: []string{
			"Sit upright and relax your shoulders.",
			"Inhale through the nose for 4 seconds.",
			"Hold for 4 seconds.",
			"Exhale slowly for 4 seconds.",
			"Hold empty for 4 seconds, then repeat.",
		},
		Pattern: &BreathingPattern{Inhale: 4 * time.Second, HoldIn: 4 * time.Second, Exhale: 4 * time.Second, HoldOut: 4 * time.Second},
	},
	{
		Slug:       "478-breathing",
		Name:       "4-7-8 Breathing",
		Category:   constants.CategorySleep,
		Difficulty: constants.DifficultyEasy,
		Duration:   3 * time.Minute,
		Summary:    "Long exhale pattern that helps with falling asleep.",
		Benefits:   []string{"Eases sleep onset", "Reduces anxiety"},
		Instructions: []string{
			"Rest the tip of your tongue behind your upper teeth.",
			"Inhale quietly through the nose for 4 seconds.",
			"Hold for 7 seconds.",
			"Exhale through the mouth for 8 seconds.",
		},
		Pattern: &BreathingPattern{Inhale: 4 * time.Second, HoldIn: 7 * time.Second, Exhale: 8 * time.Second},
	},
	{
		Slug:       "coherent-breathing",
		Name:       "Coherent Breathing",
		Category:   constants.CategoryMindfulness,
		Difficulty: constants.DifficultyEasy,
		Duration:   10 * time.Minute,
		Summary:    "About five breaths a minute to raise heart rate variability.",
		Benefits:   []string{"Improves HRV", "Steadies mood"},
		Instructions: []string{
			"Breathe in gently for 6 seconds.",
			"Breathe out gently for 6 seconds.",
			"Keep the breath smooth with no pauses.",
		},
		Pattern: &BreathingPattern{Inhale: 6 * time.Second, Exhale: 6 * time.Second},
	},
	{
		Slug:       "cold-exposure",
		Name:       "Cold Exposure",
		Category:   constants.CategoryFitness,
		Difficulty: constants.DifficultyHard,
		Duration:   3 * time.Minute,
		Summary:    "Finish your shower cold to boost alertness and resilience.",
		Benefits:   []string{"Raises energy", "Builds stress tolerance"},
		Instructions: []string{
			"Start with 30 seconds of cold water at the end of a warm shower.",
			"Keep breathing slow and controlled.",
			"Add 15 to 30 seconds each week, up to 3 minutes.",
			"Skip if you have a heart condition without medical advice.",
		},
	},
	{
		Slug:       "binaural-focus",
		Name:       "Binaural Focus",
		Category:   constants.CategoryProductivity,
		Difficulty: constants.DifficultyEasy,
		Duration:   20 * time.Minute,
		Summary:    "A beta-range binaural tone to support deep work. Headphones required.",
		Benefits:   []string{"Supports sustained attention"},
		Instructions: []string{
			"Put on stereo headphones at low volume.",
			"Start the tone and begin a single focused task.",
			"Stop if you feel discomfort.",
		},
		CarrierHz: 200,
		BeatHz:    14,
	},
	{
		Slug:       "nsdr",
		Name:       "Non-Sleep Deep Rest",
		Category:   constants.CategoryRecovery,
		Difficulty: constants.DifficultyMedium,
		Duration:   20 * time.Minute,
		Summary:    "Guided body scan that restores energy without sleeping.",
		Benefits:   []string{"Restores energy", "Improves learning consolidation"},
		Instructions: []string{
			"Lie down and close your eyes.",
			"Take a few breaths with a long exhale.",
			"Move attention slowly from your feet to the top of your head.",
			"Stay still and let thoughts pass for the remaining time.",
		},
	},
}

// Catalog returns a copy of all techniques in display order.
func Catalog() []Technique {
	out := make([]Technique, len(catalog))
	copy(out, catalog)
	return out
}

// Find looks up a technique by slug, case-insensitively.
func Find(slug string) (Technique, error) {
	for _, t := range catalog {
		if strings.EqualFold(t.Slug, slug) {
			return t, nil
		}
	}
	return Technique{}, &apperrors.OpError{
		Op:       "find technique",
		Resource: "biohack",
		ID:       slug,
		Err:      apperrors.ErrNotFound,
	}
}

// ByCategory filters the catalog.
func ByCategory(category string) []Technique {
	var out []Technique
	for _, t := range catalog {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Describe is a one-line label, e.g. "Box Breathing (5 min, easy)".
func (t Technique) Describe() string {
	return fmt.Sprintf("%s (%d min, %s)", t.Name, int(t.Duration.Minutes()), t.Difficulty)
}
