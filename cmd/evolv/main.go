package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli/backups"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli/biohacks"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli/habits"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli/metrics"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli/reports"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli/settings"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli/system"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli/users"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/constants"
	apperrors "github.com/thatappguy71/EvolvAssistant-sub000/internal/errors"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path or PostgreSQL connection string. Credentials must NOT be embedded in the connection string; use EVOLV_DB_CONNECTION, .pgpass, or 'evolv keyring set db' instead." type:"string" default:"~/.config/evolv/evolv.db"`
	Debug   bool   `help:"Log debug output to stderr."`
	UserRef string `name:"user" short:"u" help:"User id or name (default: the configured default user)."`

	Init    system.InitCmd    `cmd:"" help:"Initialize evolv storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Keyring system.KeyringCmd `cmd:"" help:"Manage secrets in the OS keyring."`
	Remind  system.RemindCmd  `cmd:"" help:"Send the daily habit reminder."`

	User      users.UserCmd        `cmd:"" help:"Manage users."`
	Habit     habits.HabitCmd      `cmd:"" help:"Manage habits and habit tracking."`
	Metrics   metrics.MetricsCmd   `cmd:"" help:"Log and review daily wellness metrics."`
	Dashboard reports.DashboardCmd `cmd:"" help:"Show today's dashboard."`
	Recommend reports.RecommendCmd `cmd:"" help:"Get habit recommendations."`
	Report    reports.ReportCmd    `cmd:"" help:"Write a PDF report."`
	Export    reports.ExportCmd    `cmd:"" help:"Export completions or metrics."`
	Biohack   biohacks.BiohackCmd  `cmd:"" help:"Browse and run biohacking techniques."`
	Backup    backups.BackupCmd    `cmd:"" help:"Manage database backups."`
	Settings  settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit consistency engine: streaks, wellness metrics, and recommendations"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configDir := filepath.Dir(constants.DefaultConfigPath)
	if expanded, err := cli.ExpandPath(configDir); err == nil {
		configDir = expanded
	}
	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logger.Close()

	store, err := cli.OpenStore(CLI.Config)
	if err != nil {
		apperrors.Fatal(err)
	}

	appCtx := &cli.Context{
		Store: store,
		User:  CLI.UserRef,
	}

	// init and keyring manage their own storage; biohacks work without it.
	switch command := strings.Fields(ctx.Command())[0]; command {
	case "init", "keyring":
	case "biohack":
		if err := store.Load(); err != nil {
			logger.Debug("running without storage", "error", err)
			appCtx.Store = nil
		}
	default:
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	err = ctx.Run(appCtx)
	if closeErr := store.Close(); closeErr != nil {
		logger.Warn("failed to close store", "error", closeErr)
	}
	if err != nil {
		apperrors.Fatal(err)
	}
}
