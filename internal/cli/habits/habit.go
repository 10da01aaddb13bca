package habits

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/constants"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/engine"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/streak"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/utils"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Mark    HabitMarkCmd    `cmd:"" help:"Toggle a habit's completion for a day."`
	Today   HabitTodayCmd   `cmd:"" help:"Show today's habit status."`
	Log     HabitLogCmd     `cmd:"" help:"Show habit log (ASCII history)."`
	Streak  HabitStreakCmd  `cmd:"" help:"Show a habit's current and longest streak."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Deactivate a habit (history is kept)."`
	Restore HabitRestoreCmd `cmd:"" help:"Reactivate a deactivated habit."`
}

type HabitAddCmd struct {
	Name         string `arg:"" optional:"" help:"Habit name. Omit to fill in a form."`
	Category     string `short:"c" help:"Category (mindfulness|fitness|nutrition|sleep|productivity|recovery|social|other)." default:"other"`
	Difficulty   string `short:"d" help:"Difficulty (easy|medium|hard)." default:"easy"`
	Description  string `help:"Optional description."`
	TimeRequired string `name:"time" help:"Time required, e.g. '10 min'."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}
	if c.Name == "" {
		if err := c.form(); err != nil {
			return err
		}
	}

	eng, err := ctx.Engine()
	if err != nil {
		return err
	}
	habit, err := eng.CreateHabit(context.Background(), user.ID, engine.HabitInput{
		Name:         c.Name,
		Category:     c.Category,
		Description:  c.Description,
		TimeRequired: c.TimeRequired,
		Difficulty:   c.Difficulty,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s, %s)\n", habit.Name, habit.Category, habit.Difficulty)
	return nil
}

func (c *HabitAddCmd) form() error {
	categories := make([]huh.Option[string], len(constants.Categories))
	for i, cat := range constants.Categories {
		categories[i] = huh.NewOption(cat, cat)
	}
	difficulties := make([]huh.Option[string], len(constants.Difficulties))
	for i, d := range constants.Difficulties {
		difficulties[i] = huh.NewOption(d, d)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Habit name").Value(&c.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().Title("Category").Options(categories...).Value(&c.Category),
			huh.NewSelect[string]().Title("Difficulty").Options(difficulties...).Value(&c.Difficulty),
			huh.NewInput().Title("Time required").Placeholder("10 min").Value(&c.TimeRequired),
			huh.NewText().Title("Description").Value(&c.Description),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}
	return nil
}

type HabitListCmd struct {
	All     bool `short:"a" help:"Include deactivated habits."`
	ShowIDs bool `help:"Show habit IDs." name:"show-ids"`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}
	eng, err := ctx.Engine()
	if err != nil {
		return err
	}
	habits, err := eng.ListHabits(context.Background(), user.ID, c.All)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, h := range habits {
		status := ""
		if !h.Active {
			status = cli.PendingStyle.Render(" [INACTIVE]")
		}
		idStr := ""
		if c.ShowIDs {
			idStr = fmt.Sprintf(" (ID: %s)", h.ID)
		}
		detail := h.Category + ", " + h.Difficulty
		if h.TimeRequired != "" {
			detail += ", " + h.TimeRequired
		}
		fmt.Printf("%s%s - %s%s\n", h.Name, idStr, detail, status)
	}
	return nil
}

type HabitMarkCmd struct {
	Name   string `arg:"" help:"Habit name or ID."`
	Date   string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
	Rating int    `short:"r" help:"Optional rating 1-5."`
	Note   string `help:"Optional note for this entry." default:""`
}

func (c *HabitMarkCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}
	habit, err := cli.FindHabit(ctx.Store, user.ID, c.Name)
	if err != nil {
		return err
	}
	eng, err := ctx.Engine()
	if err != nil {
		return err
	}

	day := c.Date
	if day == "" {
		if day, err = eng.Today(); err != nil {
			return err
		}
	}
	done, err := eng.Toggle(context.Background(), habit.ID, day, engine.CompletionInput{
		Rating: cli.ParseRating(c.Rating),
		Notes:  c.Note,
	})
	if err != nil {
		return err
	}

	if !done {
		fmt.Printf("Unmarked habit %q for %s\n", habit.Name, day)
		return nil
	}
	n, err := eng.ComputeStreak(context.Background(), habit.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Marked habit %q for %s (streak: %s)\n", habit.Name, day, streak.Describe(n))
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}
	eng, err := ctx.Engine()
	if err != nil {
		return err
	}
	today, err := eng.Today()
	if err != nil {
		return err
	}
	statuses, err := eng.TodayStatus(context.Background(), user.ID)
	if err != nil {
		return err
	}
	if len(statuses) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	fmt.Println(cli.HeaderStyle.Render(fmt.Sprintf("Habits for %s:", today)))
	fmt.Println()
	recorded := 0
	for _, s := range statuses {
		if s.CompletedToday {
			recorded++
		}
		fmt.Printf("%s %s  %s\n", cli.Check(s.CompletedToday), cli.Truncate(s.Habit.Name, 24), cli.PendingStyle.Render(streak.Describe(s.Streak)))
	}
	fmt.Printf("\nRecorded: %d/%d\n", recorded, len(statuses))
	return nil
}

type HabitLogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for specific habit only."`
}

func (c *HabitLogCmd) Run(ctx *cli.Context) error {
	if c.Days < 1 || c.Days > 366 {
		return fmt.Errorf("--days must be between 1 and 366")
	}
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}
	eng, err := ctx.Engine()
	if err != nil {
		return err
	}

	var selected []models.Habit
	if c.Habit != "" {
		h, err := cli.FindHabit(ctx.Store, user.ID, c.Habit)
		if err != nil {
			return err
		}
		selected = []models.Habit{h}
	} else {
		selected, err = eng.ListHabits(context.Background(), user.ID, false)
		if err != nil {
			return err
		}
	}
	if len(selected) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	today, err := eng.Today()
	if err != nil {
		return err
	}
	start, err := utils.AddDays(today, -(c.Days - 1))
	if err != nil {
		return err
	}
	days, err := utils.DayRange(start, today)
	if err != nil {
		return err
	}

	const nameWidth = 20
	fmt.Printf("Habit log (last %d days):\n\n", c.Days)
	fmt.Print(strings.Repeat(" ", nameWidth))
	for _, d := range days {
		fmt.Printf(" %5s", d[5:7]+"/"+d[8:10])
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", nameWidth+6*len(days)))

	for _, h := range selected {
		history, err := eng.HabitHistory(context.Background(), h.ID, c.Days)
		if err != nil {
			return err
		}
		fmt.Print(cli.Truncate(h.Name, nameWidth))
		for _, d := range history {
			if d.Completed {
				fmt.Print(cli.DoneStyle.Render("  x   "))
			} else {
				fmt.Print("  .   ")
			}
		}
		fmt.Println()
	}
	return nil
}

type HabitStreakCmd struct {
	Name string `arg:"" help:"Habit name or ID."`
}

func (c *HabitStreakCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}
	habit, err := cli.FindHabit(ctx.Store, user.ID, c.Name)
	if err != nil {
		return err
	}
	eng, err := ctx.Engine()
	if err != nil {
		return err
	}
	current, err := eng.ComputeStreak(context.Background(), habit.ID)
	if err != nil {
		return err
	}
	completions, err := ctx.Store.GetCompletionsForHabit(habit.ID)
	if err != nil {
		return err
	}
	days := make([]string, len(completions))
	for i, comp := range completions {
		days[i] = comp.Day
	}

	fmt.Printf("%s\n", cli.HeaderStyle.Render(habit.Name))
	fmt.Printf("  Current streak: %s\n", streak.Describe(current))
	fmt.Printf("  Longest streak: %s\n", streak.Describe(streak.Longest(days)))
	fmt.Printf("  Total days:     %d\n", len(completions))
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name or ID to deactivate."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}
	habit, err := cli.FindHabit(ctx.Store, user.ID, c.Name)
	if err != nil {
		return err
	}
	eng, err := ctx.Engine()
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()
	if err := eng.DeactivateHabit(context.Background(), habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deactivated habit: %s\n", habit.Name)
	fmt.Println("(History is kept. Use 'evolv habit restore' to undo)")
	return nil
}

type HabitRestoreCmd struct {
	Name string `arg:"" help:"Habit name to reactivate."`
}

func (c *HabitRestoreCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}
	eng, err := ctx.Engine()
	if err != nil {
		return err
	}
	habits, err := eng.ListHabits(context.Background(), user.ID, true)
	if err != nil {
		return err
	}

	var habit *models.Habit
	for i := range habits {
		h := habits[i]
		if !h.Active && (strings.EqualFold(h.Name, c.Name) || h.ID == c.Name) {
			habit = &h
			break
		}
	}
	if habit == nil {
		return fmt.Errorf("deactivated habit %q not found", c.Name)
	}

	if err := eng.ReactivateHabit(context.Background(), habit.ID); err != nil {
		return err
	}
	fmt.Printf("Restored habit: %s\n", habit.Name)
	return nil
}
