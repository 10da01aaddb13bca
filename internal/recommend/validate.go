package recommend

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/constants"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
)

// MaxRecommendations caps how many items a response may contribute.
const MaxRecommendations = 10

// ParseResponse decodes a model reply into recommendations ranked by
// priority. Any malformed item rejects the whole reply.
func ParseResponse(content string) ([]models.Recommendation, error) {
	content = stripFences(content)

	var items []models.Recommendation
	if err := json.Unmarshal([]byte(content), &items); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("response contained no recommendations")
	}

	for i := range items {
		items[i].Title = strings.TrimSpace(items[i].Title)
		items[i].Category = strings.ToLower(strings.TrimSpace(items[i].Category))
		if err := validateItem(items[i]); err != nil {
			return nil, fmt.Errorf("recommendation %d: %w", i, err)
		}
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Priority < items[b].Priority
	})
	if len(items) > MaxRecommendations {
		items = items[:MaxRecommendations]
	}
	return items, nil
}

func validateItem(r models.Recommendation) error {
	if r.Title == "" {
		return fmt.Errorf("missing title")
	}
	if !slices.Contains(constants.Categories, r.Category) {
		return fmt.Errorf("unknown category %q", r.Category)
	}
	if r.Priority < constants.PriorityHighest || r.Priority > constants.PriorityLowest {
		return fmt.Errorf("priority %d out of range", r.Priority)
	}
	return nil
}

// stripFences removes a surrounding markdown code block, which many models
// add despite being asked not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
