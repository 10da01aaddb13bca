package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
)

// Bundle is the full JSON export for one user.
type Bundle struct {
	ExportedAt  string                `json:"exported_at"`
	User        models.User           `json:"user"`
	Habits      []models.Habit        `json:"habits"`
	Completions []models.Completion   `json:"completions"`
	Metrics     []models.DailyMetrics `json:"metrics"`
}

// NewBundle stamps the export time in UTC. Nil slices become empty arrays.
func NewBundle(user models.User, habits []models.Habit, completions []models.Completion, metrics []models.DailyMetrics, now time.Time) Bundle {
	if habits == nil {
		habits = []models.Habit{}
	}
	if completions == nil {
		completions = []models.Completion{}
	}
	if metrics == nil {
		metrics = []models.DailyMetrics{}
	}
	return Bundle{
		ExportedAt:  now.UTC().Format(time.RFC3339),
		User:        user,
		Habits:      habits,
		Completions: completions,
		Metrics:     metrics,
	}
}

func JSON(w io.Writer, b Bundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	return nil
}

// ReadBundle parses a JSON export.
func ReadBundle(r io.Reader) (Bundle, error) {
	var b Bundle
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return Bundle{}, fmt.Errorf("parse export: %w", err)
	}
	return b, nil
}
