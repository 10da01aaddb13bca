package voice

import (
	"errors"
	"reflect"
	"testing"
)

func TestInferTags(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"Microsoft Aria Online (Natural) - English (United States)", []string{"natural"}},
		{"Samantha (Enhanced)", []string{"enhanced"}},
		{"Google UK English Female", nil},
		{"Microsoft David Desktop - English", []string{"desktop"}},
		{"Ava (Premium Neural)", []string{"neural", "premium"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferTags(tt.name); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("InferTags(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestParseTags(t *testing.T) {
	got := ParseTags(" Natural, ,neural,premium ")
	want := []string{"natural", "neural", "premium"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseTags = %v, want %v", got, want)
	}
	if got := ParseTags(""); got != nil {
		t.Errorf("ParseTags(\"\") = %v, want nil", got)
	}
}

func TestTagRankerBest(t *testing.T) {
	aria := Voice{Name: "Aria (Natural)", Lang: "en-US", Tags: []string{"natural"}}
	ava := Voice{Name: "Ava (Premium)", Lang: "en-US", Tags: []string{"premium"}}
	plain := Voice{Name: "Fred", Lang: "en-US"}
	german := Voice{Name: "Katja (Natural)", Lang: "de-DE", Tags: []string{"natural", "neural"}}

	tests := []struct {
		name   string
		ranker TagRanker
		voices []Voice
		want   string
	}{
		{
			name:   "earlier tag wins",
			ranker: TagRanker{Priorities: []string{"natural", "premium"}},
			voices: []Voice{plain, ava, aria},
			want:   "Aria (Natural)",
		},
		{
			name:   "priority order respected",
			ranker: TagRanker{Priorities: []string{"premium", "natural"}},
			voices: []Voice{aria, ava},
			want:   "Ava (Premium)",
		},
		{
			name:   "language beats tags",
			ranker: TagRanker{Priorities: []string{"natural", "neural"}, Lang: "en"},
			voices: []Voice{german, plain},
			want:   "Fred",
		},
		{
			name:   "language beats every tag combined",
			ranker: TagRanker{Priorities: []string{"natural", "neural", "premium"}, Lang: "en"},
			voices: []Voice{{Name: "Katja (Premium)", Lang: "de-DE", Tags: []string{"natural", "neural", "premium"}}, plain},
			want:   "Fred",
		},
		{
			name:   "ties keep input order",
			ranker: TagRanker{Priorities: []string{"natural"}},
			voices: []Voice{plain, {Name: "Other"}},
			want:   "Fred",
		},
		{
			name:   "tag match is case insensitive",
			ranker: NewTagRanker("NATURAL", ""),
			voices: []Voice{plain, aria},
			want:   "Aria (Natural)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.ranker.Best(tt.voices)
			if err != nil {
				t.Fatalf("Best: %v", err)
			}
			if got.Name != tt.want {
				t.Errorf("Best = %q, want %q", got.Name, tt.want)
			}
		})
	}
}

func TestTagRankerEmpty(t *testing.T) {
	_, err := TagRanker{}.Best(nil)
	if !errors.Is(err, ErrNoVoices) {
		t.Errorf("expected ErrNoVoices, got %v", err)
	}
}

func TestRankerInterface(t *testing.T) {
	var _ Ranker = TagRanker{}
}
