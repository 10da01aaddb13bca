package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/engine"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/recommend"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/streak"
)

type DashboardCmd struct {
	JSON              bool `help:"Print the dashboard as JSON."`
	NoRecommendations bool `name:"no-recommendations" help:"Skip recommendations."`
}

func (c *DashboardCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}
	eng, err := ctx.Engine()
	if err != nil {
		return err
	}
	d, err := eng.Dashboard(context.Background(), user.ID, !c.NoRecommendations)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}

	today, err := eng.Today()
	if err != nil {
		return err
	}
	printDashboard(user.Name, today, d, !c.NoRecommendations)
	return nil
}

func printDashboard(name, today string, d engine.Dashboard, withRecommendations bool) {
	s := d.Summary
	fmt.Println(cli.HeaderStyle.Render(fmt.Sprintf("Dashboard for %s (%s)", name, today)))
	fmt.Println()
	fmt.Printf("  Current streak:   %s\n", streak.Describe(s.CurrentStreak))
	fmt.Printf("  Today:            %s %d/%d (%.0f%%)\n", cli.Bar(s.WeeklyProgress, 20), s.HabitsCompletedToday, s.TotalHabitsToday, s.WeeklyProgress)
	fmt.Printf("  Wellness score:   %.1f / 10", s.WellnessScore)
	if s.MetricDays == 0 {
		fmt.Print(cli.PendingStyle.Render("  (no metrics yet)"))
	}
	fmt.Println()
	fmt.Printf("  Window rate:      %.0f%%\n", s.WindowCompletionRate)

	a := s.MetricAverages
	fmt.Println("\nAverages:")
	fmt.Printf("  Energy %.1f  Focus %.1f  Mood %.1f  Productivity %.1f  Sleep %.1f\n",
		a.Energy, a.Focus, a.Mood, a.Productivity, a.SleepQuality)

	if len(d.Habits) > 0 {
		fmt.Println("\nHabits:")
		for _, h := range d.Habits {
			fmt.Printf("  %s %s  %s\n", cli.Check(h.CompletedToday), cli.Truncate(h.Habit.Name, 24), cli.PendingStyle.Render(streak.Describe(h.Streak)))
		}
	}

	if withRecommendations {
		printRecommendations(d.Recommendations)
	}
}

func printRecommendations(r recommend.Result) {
	if len(r.Items) == 0 {
		return
	}
	label := "Recommendations"
	if r.Source == recommend.SourceFallback {
		label += cli.PendingStyle.Render(" (offline suggestions)")
	}
	fmt.Printf("\n%s:\n", label)
	for i, item := range r.Items {
		fmt.Printf("  %d. %s [%s]\n", i+1, item.Title, item.Category)
		if item.Description != "" {
			fmt.Printf("     %s\n", item.Description)
		}
	}
}

type RecommendCmd struct {
	JSON bool `help:"Print recommendations as JSON."`
}

func (c *RecommendCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}
	eng, err := ctx.Engine()
	if err != nil {
		return err
	}
	d, err := eng.Dashboard(context.Background(), user.ID, true)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(d.Recommendations)
	}
	if !eng.Settings().RecommendationsEnabled {
		fmt.Println(cli.WarnStyle.Render("⚠ Recommendations are disabled; showing offline suggestions."))
	}
	printRecommendations(d.Recommendations)
	return nil
}
