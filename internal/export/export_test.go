package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/engine"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/recommend"
)

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }

func sampleData() ([]models.Completion, map[string]models.Habit, []models.DailyMetrics) {
	at := time.Date(2024, 1, 10, 7, 30, 0, 0, time.UTC)
	completions := []models.Completion{
		{ID: "c1", HabitID: "h1", Day: "2024-01-09", CompletedAt: at.AddDate(0, 0, -1), Rating: intPtr(4), Notes: "calm, focused"},
		{ID: "c2", HabitID: "h1", Day: "2024-01-10", CompletedAt: at},
		{ID: "c3", HabitID: "gone", Day: "2024-01-10", CompletedAt: at},
	}
	habits := map[string]models.Habit{
		"h1": {ID: "h1", Name: "Meditation", Category: "mindfulness"},
	}
	metrics := []models.DailyMetrics{
		{Day: "2024-01-10", Energy: 7, Focus: 6, Mood: 8, Productivity: 5, SleepQuality: 6, SleepHours: floatPtr(7.5)},
		{Day: "2024-01-09", Energy: 4, Focus: 5, Mood: 5, Productivity: 5, SleepQuality: 3, Notes: "late night"},
	}
	return completions, habits, metrics
}

func TestCompletionsCSV(t *testing.T) {
	completions, habits, _ := sampleData()
	var buf bytes.Buffer
	if err := CompletionsCSV(&buf, completions, habits); err != nil {
		t.Fatalf("CompletionsCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 4 {
		t.Fatalf("expected 4 rows (header + 3), got %d", len(records))
	}
	if strings.Join(records[0], ",") != strings.Join(CompletionsHeader, ",") {
		t.Errorf("header = %v", records[0])
	}
	first := records[1]
	if first[0] != "2024-01-09" || first[1] != "Meditation" || first[2] != "mindfulness" || first[4] != "4" {
		t.Errorf("row 1 = %v", first)
	}
	if first[5] != "calm, focused" {
		t.Errorf("notes with comma = %q", first[5])
	}
	if first[3] != "2024-01-09T07:30:00Z" {
		t.Errorf("completed at = %q", first[3])
	}
	if records[2][4] != "" {
		t.Errorf("missing rating should be blank, got %q", records[2][4])
	}
	if records[3][1] != "Unknown" {
		t.Errorf("unknown habit = %q", records[3][1])
	}
}

func TestMetricsCSV(t *testing.T) {
	_, _, metrics := sampleData()
	var buf bytes.Buffer
	if err := MetricsCSV(&buf, metrics); err != nil {
		t.Fatalf("MetricsCSV: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(records))
	}
	if got := strings.Join(records[1], ","); got != "2024-01-10,7,6,8,5,6,7.5," {
		t.Errorf("row 1 = %s", got)
	}
	if records[2][6] != "" || records[2][7] != "late night" {
		t.Errorf("row 2 = %v", records[2])
	}
}

func TestEmptyCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := MetricsCSV(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("expected only the header, got %q", buf.String())
	}
}

func TestJSONRoundTrip(t *testing.T) {
	completions, habits, metrics := sampleData()
	user := models.User{ID: "u1", Name: "Ada"}
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.FixedZone("EST", -5*3600))

	b := NewBundle(user, []models.Habit{habits["h1"]}, completions, metrics, now)
	if b.ExportedAt != "2024-01-10T17:00:00Z" {
		t.Errorf("exported_at = %s", b.ExportedAt)
	}

	var buf bytes.Buffer
	if err := JSON(&buf, b); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	got, err := ReadBundle(&buf)
	if err != nil {
		t.Fatalf("ReadBundle: %v", err)
	}
	if got.User.Name != "Ada" || len(got.Habits) != 1 || len(got.Completions) != 3 || len(got.Metrics) != 2 {
		t.Errorf("bundle = %+v", got)
	}
	if got.Completions[0].Rating == nil || *got.Completions[0].Rating != 4 {
		t.Errorf("rating lost: %+v", got.Completions[0])
	}
}

func TestJSONEmptyArrays(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, NewBundle(models.User{ID: "u1"}, nil, nil, nil, time.Now())); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, key := range []string{`"habits": []`, `"completions": []`, `"metrics": []`} {
		if !strings.Contains(out, key) {
			t.Errorf("expected %s in %s", key, out)
		}
	}
}

func TestDashboardPDF(t *testing.T) {
	_, habits, metrics := sampleData()
	r := Report{
		User: models.User{Name: "Ada"},
		Day:  "2024-01-10",
		Dashboard: engine.Dashboard{
			Summary: models.DashboardSummary{CurrentStreak: 3, HabitsCompletedToday: 1, TotalHabitsToday: 2, WellnessScore: 6.4, WeeklyProgress: 50},
			Habits: []models.HabitStatus{
				{Habit: habits["h1"], CompletedToday: true, Streak: 3},
				{Habit: models.Habit{Name: "Café walk"}, Streak: 0},
			},
			Recommendations: recommend.Result{
				Source: recommend.SourceFallback,
				Items:  recommend.Fallback(models.DashboardSummary{}),
			},
		},
		Metrics: metrics,
	}

	var buf bytes.Buffer
	if err := DashboardPDF(&buf, r); err != nil {
		t.Fatalf("DashboardPDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output is not a PDF: %q", buf.Bytes()[:16])
	}
	if buf.Len() < 1000 {
		t.Errorf("pdf suspiciously small: %d bytes", buf.Len())
	}
}

func TestDashboardPDFEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := DashboardPDF(&buf, Report{User: models.User{Name: "New"}, Day: "2024-01-10"}); err != nil {
		t.Fatalf("DashboardPDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("output is not a PDF")
	}
}
