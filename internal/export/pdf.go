package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/engine"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
)

// Report is everything printed on the dashboard PDF.
type Report struct {
	User      models.User
	Day       string
	Dashboard engine.Dashboard
	Metrics   []models.DailyMetrics // newest first
}

// DashboardPDF renders r as a one page A4 report.
func DashboardPDF(w io.Writer, r Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Evolv Dashboard", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr(fmt.Sprintf("Evolv Dashboard: %s", r.User.Name)))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, r.Day)
	pdf.Ln(12)

	s := r.Dashboard.Summary
	section(pdf, "Summary")
	rows := [][2]string{
		{"Current streak", fmt.Sprintf("%d days", s.CurrentStreak)},
		{"Completed today", fmt.Sprintf("%d of %d (%.0f%%)", s.HabitsCompletedToday, s.TotalHabitsToday, s.WeeklyProgress)},
		{"Wellness score", fmt.Sprintf("%.1f / 10", s.WellnessScore)},
		{"Window completion rate", fmt.Sprintf("%.0f%%", s.WindowCompletionRate)},
	}
	for _, row := range rows {
		pdf.CellFormat(70, 7, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	section(pdf, "Habits")
	if len(r.Dashboard.Habits) == 0 {
		pdf.Cell(0, 7, "  - No active habits.")
		pdf.Ln(7)
	}
	for _, h := range r.Dashboard.Habits {
		status := "[ ]"
		if h.CompletedToday {
			status = "[x]"
		}
		pdf.CellFormat(120, 7, tr(fmt.Sprintf("  %s %s", status, h.Habit.Name)), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, fmt.Sprintf("streak %d", h.Streak), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	if len(r.Metrics) > 0 {
		section(pdf, "Recent metrics")
		header := []string{"Day", "Energy", "Focus", "Mood", "Prod.", "Sleep Q.", "Sleep h"}
		widths := []float64{35, 22, 22, 22, 22, 25, 22}
		pdf.SetFont("Arial", "B", 10)
		for i, h := range header {
			pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 10)
		for _, m := range r.Metrics {
			sleep := "-"
			if m.SleepHours != nil {
				sleep = fmt.Sprintf("%.1f", *m.SleepHours)
			}
			cells := []string{
				m.Day,
				fmt.Sprint(m.Energy), fmt.Sprint(m.Focus), fmt.Sprint(m.Mood),
				fmt.Sprint(m.Productivity), fmt.Sprint(m.SleepQuality), sleep,
			}
			for i, c := range cells {
				pdf.CellFormat(widths[i], 7, c, "1", 0, "C", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(4)
	}

	recs := r.Dashboard.Recommendations
	if len(recs.Items) > 0 {
		section(pdf, fmt.Sprintf("Recommendations (%s)", recs.Source))
		for _, rec := range recs.Items {
			pdf.SetFont("Arial", "B", 11)
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s [%s]", rec.Priority, rec.Title, rec.Category)), "", "", false)
			pdf.SetFont("Arial", "", 10)
			text := rec.Description
			if rec.Reason != "" {
				text = strings.TrimSpace(text + " " + rec.Reason)
			}
			pdf.MultiCell(0, 5, tr(text), "", "", false)
			pdf.Ln(2)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func section(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
}
