package reports

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/export"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
)

type ExportCmd struct {
	Format string `help:"Export format." enum:"csv,json" default:"json"`
	Kind   string `help:"What to export as CSV." enum:"completions,metrics" default:"completions"`
	Out    string `short:"o" help:"Output file (default: stdout)."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(user.ID, true)
	if err != nil {
		return fmt.Errorf("failed to list habits: %w", err)
	}
	completions, err := userCompletions(ctx, user.ID)
	if err != nil {
		return err
	}
	metrics, err := userMetrics(ctx, user.ID)
	if err != nil {
		return err
	}

	w, closeFn, err := output(c.Out)
	if err != nil {
		return err
	}
	defer closeFn()

	switch strings.ToLower(c.Format) {
	case "csv":
		if c.Kind == "metrics" {
			err = export.MetricsCSV(w, metrics)
		} else {
			byID := make(map[string]models.Habit, len(habits))
			for _, h := range habits {
				byID[h.ID] = h
			}
			err = export.CompletionsCSV(w, completions, byID)
		}
	default:
		err = export.JSON(w, export.NewBundle(user, habits, completions, metrics, ctx.Clock()))
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if c.Out != "" {
		fmt.Printf("✓ Exported %s to %s\n", c.Format, c.Out)
	}
	return nil
}

type ReportCmd struct {
	Out string `short:"o" help:"PDF output path (default: evolv-report-<day>.pdf)."`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
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
	d, err := eng.Dashboard(context.Background(), user.ID, true)
	if err != nil {
		return err
	}
	recent, err := eng.RecentMetrics(context.Background(), user.ID)
	if err != nil {
		return err
	}

	path := c.Out
	if path == "" {
		path = fmt.Sprintf("evolv-report-%s.pdf", today)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	defer f.Close()

	if err := export.DashboardPDF(f, export.Report{User: user, Day: today, Dashboard: d, Metrics: recent}); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Printf("✓ Report written to %s\n", path)
	return nil
}

func userCompletions(ctx *cli.Context, userID string) ([]models.Completion, error) {
	all, err := ctx.Store.GetAllCompletions()
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}
	out := make([]models.Completion, 0, len(all))
	for _, c := range all {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func userMetrics(ctx *cli.Context, userID string) ([]models.DailyMetrics, error) {
	all, err := ctx.Store.GetAllDailyMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}
	out := make([]models.DailyMetrics, 0, len(all))
	for _, m := range all {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func output(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
