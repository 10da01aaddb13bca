package system

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/backup"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/constants"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/keyring"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/storage/sqlite"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/streak"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/utils"
)

// completionDayIndex is created by migration 002.
const completionDayIndex = "idx_completions_habit_day"

type DoctorCmd struct{}

type dbHandle interface {
	GetDB() *sql.DB
}

type check struct {
	name    string
	run     func(*cli.Context) error
	needsDB bool
	warning bool // failures are reported but do not fail the run
}

var checks = []check{
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Migrations complete", run: checkMigrationsComplete, needsDB: true},
	{name: "Settings", run: checkSettings, needsDB: true},
	{name: "Backups present", run: checkBackupsPresent, warning: true},
	{name: "Clock/timezone", run: checkClockTimezone},
	{name: "Completion integrity", run: checkCompletionIntegrity, needsDB: true},
	{name: "Completion uniqueness", run: checkCompletionUniqueIndex, needsDB: true},
	{name: "Date formats", run: checkDateFormats, needsDB: true},
	{name: "Timestamp integrity", run: checkTimestampIntegrity, needsDB: true},
	{name: "Recommendations", run: checkRecommendations, needsDB: true, warning: true},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
		case c.warning:
			fmt.Printf("⚠ %s: WARNING\n", c.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", c.name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func getDB(ctx *cli.Context) (*sql.DB, error) {
	h, ok := ctx.Store.(dbHandle)
	if !ok {
		return nil, errors.New("storage backend does not expose a database connection")
	}
	db := h.GetDB()
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return db, nil
}

// count runs a COUNT(*) query and fails with msg when the result is non-zero.
func count(ctx *cli.Context, query, msg string) error {
	db, err := getDB(ctx)
	if err != nil {
		return err
	}
	var n int
	if err := db.QueryRow(query).Scan(&n); err != nil {
		return fmt.Errorf("failed to run check: %w", err)
	}
	if n > 0 {
		return fmt.Errorf(msg, n)
	}
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	db, err := getDB(ctx)
	if err != nil {
		return err
	}
	var result int
	if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	m, ok := ctx.Store.(cli.Migrator)
	if !ok {
		return nil
	}
	return m.Migrator().ValidateVersion()
}

func checkMigrationsComplete(ctx *cli.Context) error {
	m, ok := ctx.Store.(cli.Migrator)
	if !ok {
		return nil
	}
	st, err := m.Migrator().Status()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	if !st.UpToDate() && st.Current < st.Latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'evolv migrate')", st.Current, st.Latest)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	s, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !utils.ValidateTimezone(s.Timezone) {
		return fmt.Errorf("invalid timezone %q", s.Timezone)
	}
	if _, err := streak.ParsePolicy(s.StreakPolicy); err != nil {
		return err
	}
	if s.MetricsWindowDays < 1 {
		return fmt.Errorf("metrics window must be positive, got %d", s.MetricsWindowDays)
	}
	if s.DefaultUserID != "" {
		if _, err := ctx.Store.GetUser(s.DefaultUserID); err != nil {
			return fmt.Errorf("default user %s does not exist (run 'evolv user use <name>')", s.DefaultUserID)
		}
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		return nil
	}
	backups, err := backup.NewManager(ctx.Store.GetConfigPath()).List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'evolv backup create'")
	}
	return nil
}

func checkClockTimezone(_ *cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkCompletionIntegrity(ctx *cli.Context) error {
	return count(ctx, `
		SELECT COUNT(*)
		FROM completions c
		LEFT JOIN habits h ON c.habit_id = h.id
		WHERE h.id IS NULL OR h.user_id <> c.user_id
	`, "found %d completions referencing a missing habit or another user's habit")
}

// checkCompletionUniqueIndex confirms the (habit_id, day) index that keeps
// one completion per habit per day is still in place.
func checkCompletionUniqueIndex(ctx *cli.Context) error {
	db, err := getDB(ctx)
	if err != nil {
		return err
	}
	query := `SELECT COUNT(*) FROM pg_indexes WHERE indexname = $1`
	if _, ok := ctx.Store.(*sqlite.Store); ok {
		query = `SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = ?`
	}
	var n int
	if err := db.QueryRow(query, completionDayIndex).Scan(&n); err != nil {
		return fmt.Errorf("failed to run check: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("index %s is missing; same-day duplicate completions are possible", completionDayIndex)
	}
	return nil
}

func checkDateFormats(ctx *cli.Context) error {
	if err := count(ctx, `
		SELECT COUNT(*) FROM completions
		WHERE length(day) <> 10 OR day NOT LIKE '____-__-__'
	`, "found %d completions with invalid date format"); err != nil {
		return err
	}
	return count(ctx, `
		SELECT COUNT(*) FROM daily_metrics
		WHERE length(day) <> 10 OR day NOT LIKE '____-__-__'
	`, "found %d daily metrics with invalid date format")
}

func checkTimestampIntegrity(ctx *cli.Context) error {
	if err := count(ctx, `SELECT COUNT(*) FROM completions WHERE completed_at = ''`,
		"found %d completions with corrupted timestamps"); err != nil {
		return err
	}
	if err := count(ctx, `SELECT COUNT(*) FROM daily_metrics WHERE created_at = '' OR updated_at = ''`,
		"found %d daily metrics with corrupted timestamps"); err != nil {
		return err
	}
	return count(ctx, `SELECT COUNT(*) FROM habits WHERE created_at = ''`,
		"found %d habits with corrupted timestamps")
}

func checkRecommendations(ctx *cli.Context) error {
	s, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if !s.RecommendationsEnabled {
		return nil
	}
	if os.Getenv(constants.EnvLLMAPIKey) != "" {
		return nil
	}
	if _, err := keyring.GetLLMAPIKey(); err == nil {
		return nil
	}
	if s.LLMBaseURL != constants.DefaultLLMBaseURL {
		return nil
	}
	return fmt.Errorf("no LLM API key configured, offline suggestions will be shown (set %s or run 'evolv keyring set llm')", constants.EnvLLMAPIKey)
}
