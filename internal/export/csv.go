// Package export writes a user's habit history and metrics as CSV, JSON or a
// PDF dashboard report.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
)

var (
	CompletionsHeader = []string{"Day", "Habit", "Category", "Completed At", "Rating", "Notes"}
	MetricsHeader     = []string{"Day", "Energy", "Focus", "Mood", "Productivity", "Sleep Quality", "Sleep Hours", "Notes"}
)

// CompletionsCSV writes one row per completion. Habits missing from the map
// are written as "Unknown".
func CompletionsCSV(w io.Writer, completions []models.Completion, habits map[string]models.Habit) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CompletionsHeader); err != nil {
		return err
	}

	for _, c := range completions {
		name, category := "Unknown", ""
		if h, ok := habits[c.HabitID]; ok {
			name, category = h.Name, h.Category
		}
		rating := ""
		if c.Rating != nil {
			rating = strconv.Itoa(*c.Rating)
		}
		row := []string{
			c.Day,
			name,
			category,
			c.CompletedAt.Format(time.RFC3339),
			rating,
			c.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func MetricsCSV(w io.Writer, metrics []models.DailyMetrics) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(MetricsHeader); err != nil {
		return err
	}

	for _, m := range metrics {
		sleep := ""
		if m.SleepHours != nil {
			sleep = strconv.FormatFloat(*m.SleepHours, 'f', 1, 64)
		}
		row := []string{
			m.Day,
			strconv.Itoa(m.Energy),
			strconv.Itoa(m.Focus),
			strconv.Itoa(m.Mood),
			strconv.Itoa(m.Productivity),
			strconv.Itoa(m.SleepQuality),
			sleep,
			m.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write metrics row %s: %w", m.Day, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
