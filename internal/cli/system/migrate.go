package system

import (
	"errors"
	"fmt"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli"
)

type MigrateCmd struct {
	Status bool `help:"Only report the schema version."`
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	m, ok := ctx.Store.(cli.Migrator)
	if !ok {
		return errors.New("this storage backend does not support migrations")
	}
	runner := m.Migrator()

	st, err := runner.Status()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if c.Status {
		fmt.Printf("Schema version: %d (latest %d, %d pending)\n", st.Current, st.Latest, len(st.Pending))
		return nil
	}

	count, err := runner.ApplyMigrations()
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("Successfully applied %d migration(s).\n", count)
	}

	return nil
}
