package recommend

import (
	"strings"
	"text/template"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/constants"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/stats"
)

const systemPrompt = `You are a wellness coach inside a habit tracking app.
Reply with a JSON array only, no prose and no code fences.`

var promptTemplate = template.Must(template.New("prompt").Funcs(template.FuncMap{
	"round": stats.Round1,
}).Parse(`Here is today's dashboard for one user.

Habits completed today: {{.Summary.HabitsCompletedToday}} of {{.Summary.TotalHabitsToday}} ({{round .Summary.WeeklyProgress}}%)
Best current streak: {{.Summary.CurrentStreak}} days
Wellness score: {{round .Summary.WellnessScore}} / 10 over {{.Summary.MetricDays}} logged days
Averages: energy {{round .Summary.MetricAverages.Energy}}, focus {{round .Summary.MetricAverages.Focus}}, mood {{round .Summary.MetricAverages.Mood}}, productivity {{round .Summary.MetricAverages.Productivity}}, sleep quality {{round .Summary.MetricAverages.SleepQuality}}
Weakest area: {{.Lowest}}

Suggest {{.Count}} specific, small actions for tomorrow.
Each element must be an object with keys "title", "description", "category", "priority" and "reason".
"category" must be one of: {{.Categories}}.
"priority" is an integer from {{.MinPriority}} (most important) to {{.MaxPriority}}.`))

type promptData struct {
	Summary     models.DashboardSummary
	Lowest      string
	Count       int
	Categories  string
	MinPriority int
	MaxPriority int
}

// BuildPrompt renders the user prompt for a summary.
func BuildPrompt(summary models.DashboardSummary) (string, error) {
	var b strings.Builder
	err := promptTemplate.Execute(&b, promptData{
		Summary:     summary,
		Lowest:      strings.ReplaceAll(stats.Lowest(summary.MetricAverages), "_", " "),
		Count:       FallbackCount,
		Categories:  strings.Join(constants.Categories, ", "),
		MinPriority: constants.PriorityHighest,
		MaxPriority: constants.PriorityLowest,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
