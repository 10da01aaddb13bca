// Package voice picks a text-to-speech voice and drives a speech session for
// guided biohack timers.
package voice

import (
	"errors"
	"strings"
)

// ErrNoVoices is returned when there is nothing to choose from.
var ErrNoVoices = errors.New("no voices available")

// KnownTags are the capability tags InferTags recognises in voice names.
var KnownTags = []string{"natural", "neural", "premium", "enhanced", "desktop"}

// Voice is one option reported by the speech backend.
type Voice struct {
	Name  string
	Lang  string // BCP 47 tag, e.g. "en-US"
	Tags  []string
	Local bool // synthesised on this machine
}

// Ranker chooses the best voice from the options a backend reports.
type Ranker interface {
	Best(voices []Voice) (Voice, error)
}

// TagRanker scores voices against a prioritised capability list. Earlier
// tags weigh more. A voice whose language starts with Lang gets a bonus
// larger than all tag weights combined, so a matching language always wins
// over a nicer voice in the wrong language.
type TagRanker struct {
	Priorities []string
	Lang       string
}

// NewTagRanker builds a ranker from a comma separated tag list as stored in
// settings.
func NewTagRanker(tags, lang string) TagRanker {
	return TagRanker{Priorities: ParseTags(tags), Lang: lang}
}

func (r TagRanker) Score(v Voice) int {
	n := len(r.Priorities)
	score := 0
	for i, tag := range r.Priorities {
		if hasTag(v, tag) {
			score += n - i
		}
	}
	if r.Lang != "" && strings.HasPrefix(strings.ToLower(v.Lang), strings.ToLower(r.Lang)) {
		score += n*(n+1)/2 + 1
	}
	return score
}

// Best returns the highest scoring voice. Ties keep the earlier voice.
func (r TagRanker) Best(voices []Voice) (Voice, error) {
	if len(voices) == 0 {
		return Voice{}, ErrNoVoices
	}
	best, bestScore := voices[0], r.Score(voices[0])
	for _, v := range voices[1:] {
		if s := r.Score(v); s > bestScore {
			best, bestScore = v, s
		}
	}
	return best, nil
}

func hasTag(v Voice, tag string) bool {
	for _, t := range v.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// InferTags derives capability tags from a voice name, e.g.
// "Microsoft Aria Online (Natural)" yields ["natural"].
func InferTags(name string) []string {
	lower := strings.ToLower(name)
	var tags []string
	for _, tag := range KnownTags {
		if strings.Contains(lower, tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// ParseTags splits a comma separated list, dropping blanks.
func ParseTags(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if t := strings.ToLower(strings.TrimSpace(part)); t != "" {
			out = append(out, t)
		}
	}
	return out
}
