package recommend

import (
	"fmt"
	"strings"
	"testing"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantErr   bool
		wantFirst string
		wantLen   int
	}{
		{
			name:      "plain array",
			content:   `[{"title":"A","category":"sleep","priority":3},{"title":"B","category":"fitness","priority":1}]`,
			wantFirst: "B",
			wantLen:   2,
		},
		{
			name:      "fenced array",
			content:   "```json\n[{\"title\":\"A\",\"category\":\"Sleep\",\"priority\":1}]\n```",
			wantFirst: "A",
			wantLen:   1,
		},
		{
			name:      "stable on equal priority",
			content:   `[{"title":"First","category":"sleep","priority":2},{"title":"Second","category":"sleep","priority":2}]`,
			wantFirst: "First",
			wantLen:   2,
		},
		{name: "not json", content: "walk more", wantErr: true},
		{name: "empty list", content: "[]", wantErr: true},
		{name: "object not array", content: `{"title":"A"}`, wantErr: true},
		{name: "unknown category", content: `[{"title":"A","category":"astrology","priority":1}]`, wantErr: true},
		{name: "priority too high", content: `[{"title":"A","category":"sleep","priority":6}]`, wantErr: true},
		{name: "priority zero", content: `[{"title":"A","category":"sleep","priority":0}]`, wantErr: true},
		{name: "missing title", content: `[{"title":" ","category":"sleep","priority":1}]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := ParseResponse(tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(items) != tt.wantLen {
				t.Errorf("expected %d items, got %d", tt.wantLen, len(items))
			}
			if items[0].Title != tt.wantFirst {
				t.Errorf("expected first %q, got %q", tt.wantFirst, items[0].Title)
			}
		})
	}
}

func TestParseResponseCapsLength(t *testing.T) {
	parts := make([]string, MaxRecommendations+5)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"title":"R%d","category":"other","priority":%d}`, i, i%5+1)
	}
	items, err := ParseResponse("[" + strings.Join(parts, ",") + "]")
	if err != nil {
		t.Fatalf("ParseResponse failed: %v", err)
	}
	if len(items) != MaxRecommendations {
		t.Errorf("expected %d items, got %d", MaxRecommendations, len(items))
	}
}
