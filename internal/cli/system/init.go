package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/storage"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/storage/postgres"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if _, ok := ctx.Store.(*sqlite.Store); !ok {
			return errors.New("--force is only supported for SQLite databases")
		}
		dbPath := ctx.Store.GetConfigPath()
		if c.Source != "" {
			absDbPath, err := filepath.Abs(dbPath)
			if err == nil {
				dbPath = absDbPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized evolv storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Copying data from: %s\n", c.Source)
		if err := copyData(ctx.Store, c.Source); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Println("Migration completed successfully!")
	}

	return nil
}

func openSource(source string) (storage.Provider, error) {
	if postgres.IsConnString(source) {
		if valid, err := postgres.ValidateConnString(source); !valid {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
			}
			return nil, err
		}
		return postgres.New(source), nil
	}
	path, err := cli.ExpandPath(source)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path), nil
}

// copyData moves every row from source into dst, parents before children.
func copyData(dst storage.Provider, source string) error {
	src, err := openSource(source)
	if err != nil {
		return err
	}
	if err := src.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer src.Close()

	fmt.Println("  Migrating settings...")
	settings, err := src.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := dst.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	fmt.Println("  Migrating users...")
	users, err := src.GetAllUsers()
	if err != nil {
		return fmt.Errorf("failed to get users from source: %w", err)
	}
	for _, u := range users {
		if err := dst.AddUser(u); err != nil {
			return fmt.Errorf("failed to add user %s: %w", u.ID, err)
		}
	}
	fmt.Printf("    Migrated %d users\n", len(users))

	fmt.Println("  Migrating habits...")
	habits := 0
	for _, u := range users {
		hs, err := src.GetAllHabits(u.ID, true)
		if err != nil {
			return fmt.Errorf("failed to get habits from source: %w", err)
		}
		for _, h := range hs {
			if err := dst.AddHabit(h); err != nil {
				return fmt.Errorf("failed to add habit %s: %w", h.ID, err)
			}
		}
		habits += len(hs)
	}
	fmt.Printf("    Migrated %d habits\n", habits)

	fmt.Println("  Migrating completions...")
	completions, err := src.GetAllCompletions()
	if err != nil {
		return fmt.Errorf("failed to get completions from source: %w", err)
	}
	for _, comp := range completions {
		if err := dst.AddCompletion(comp); err != nil {
			return fmt.Errorf("failed to add completion %s: %w", comp.ID, err)
		}
	}
	fmt.Printf("    Migrated %d completions\n", len(completions))

	fmt.Println("  Migrating daily metrics...")
	metrics, err := src.GetAllDailyMetrics()
	if err != nil {
		return fmt.Errorf("failed to get daily metrics from source: %w", err)
	}
	for _, m := range metrics {
		if err := dst.UpsertDailyMetrics(m); err != nil {
			return fmt.Errorf("failed to add metrics for %s: %w", m.Day, err)
		}
	}
	fmt.Printf("    Migrated %d daily metrics\n", len(metrics))

	return nil
}
