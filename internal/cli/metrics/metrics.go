package metrics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/constants"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
)

type MetricsCmd struct {
	Log  MetricsLogCmd  `cmd:"" help:"Record today's wellness ratings (1-10)."`
	Show MetricsShowCmd `cmd:"" help:"Show recent wellness ratings."`
}

type MetricsLogCmd struct {
	Date         string   `help:"Date in YYYY-MM-DD format (default: today)."`
	Energy       int      `short:"e" help:"Energy 1-10."`
	Focus        int      `short:"f" help:"Focus 1-10."`
	Mood         int      `short:"m" help:"Mood 1-10."`
	Productivity int      `short:"p" help:"Productivity 1-10."`
	SleepQuality int      `short:"s" name:"sleep-quality" help:"Sleep quality 1-10."`
	SleepHours   *float64 `name:"sleep-hours" help:"Hours slept."`
	Notes        string   `help:"Optional note."`
}

func (c *MetricsLogCmd) missing() bool {
	return c.Energy == 0 || c.Focus == 0 || c.Mood == 0 || c.Productivity == 0 || c.SleepQuality == 0
}

func (c *MetricsLogCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}
	if c.missing() {
		if err := c.form(); err != nil {
			return err
		}
	}

	eng, err := ctx.Engine()
	if err != nil {
		return err
	}
	m, err := eng.LogMetrics(context.Background(), models.DailyMetrics{
		UserID:       user.ID,
		Day:          c.Date,
		Energy:       c.Energy,
		Focus:        c.Focus,
		Mood:         c.Mood,
		Productivity: c.Productivity,
		SleepQuality: c.SleepQuality,
		SleepHours:   c.SleepHours,
		Notes:        c.Notes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Logged metrics for %s: energy %d, focus %d, mood %d, productivity %d, sleep %d\n",
		m.Day, m.Energy, m.Focus, m.Mood, m.Productivity, m.SleepQuality)
	return nil
}

// form asks for every rating not given on the command line.
func (c *MetricsLogCmd) form() error {
	scale := make([]huh.Option[int], 0, constants.MetricMax)
	for i := constants.MetricMin; i <= constants.MetricMax; i++ {
		scale = append(scale, huh.NewOption(strconv.Itoa(i), i))
	}
	rating := func(title string, v *int) huh.Field {
		if *v == 0 {
			*v = int(constants.MetricMidpoint)
		}
		return huh.NewSelect[int]().Title(title).Options(scale...).Value(v)
	}

	sleepHours := ""
	if c.SleepHours != nil {
		sleepHours = strconv.FormatFloat(*c.SleepHours, 'f', -1, 64)
	}
	form := huh.NewForm(
		huh.NewGroup(
			rating("Energy", &c.Energy),
			rating("Focus", &c.Focus),
			rating("Mood", &c.Mood),
			rating("Productivity", &c.Productivity),
			rating("Sleep quality", &c.SleepQuality),
		),
		huh.NewGroup(
			huh.NewInput().Title("Hours slept (optional)").Value(&sleepHours).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					_, err := strconv.ParseFloat(s, 64)
					return err
				}),
			huh.NewText().Title("Notes").Value(&c.Notes),
		),
	)
	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}

	if sleepHours != "" {
		h, err := strconv.ParseFloat(sleepHours, 64)
		if err != nil {
			return fmt.Errorf("invalid sleep hours: %w", err)
		}
		c.SleepHours = &h
	}
	return nil
}

type MetricsShowCmd struct{}

func (c *MetricsShowCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}
	eng, err := ctx.Engine()
	if err != nil {
		return err
	}
	rows, err := eng.RecentMetrics(context.Background(), user.ID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("No metrics logged yet. Run 'evolv metrics log'.")
		return nil
	}

	fmt.Println(cli.HeaderStyle.Render(fmt.Sprintf("Last %d days:", eng.Settings().MetricsWindowDays)))
	fmt.Printf("%-10s  %6s  %5s  %4s  %4s  %5s  %5s\n", "Day", "Energy", "Focus", "Mood", "Prod", "Sleep", "Hours")
	for _, m := range rows {
		hours := "-"
		if m.SleepHours != nil {
			hours = strconv.FormatFloat(*m.SleepHours, 'f', 1, 64)
		}
		fmt.Printf("%-10s  %6d  %5d  %4d  %4d  %5d  %5s\n", m.Day, m.Energy, m.Focus, m.Mood, m.Productivity, m.SleepQuality, hours)
	}
	return nil
}
