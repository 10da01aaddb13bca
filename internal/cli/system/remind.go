package system

import (
	"context"
	"errors"
	"fmt"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/constants"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/logger"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/notifier"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/utils"
)

type sender interface {
	Notify(ctx context.Context, title, text string) error
}

var newSender = func() sender { return notifier.New() }

// RemindCmd is meant to run from cron or a systemd timer.
type RemindCmd struct {
	DryRun bool `help:"Print the reminder to stdout instead of sending it."`
	Force  bool `help:"Send even before the configured reminder hour."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !settings.NotificationsEnabled && !c.Force {
		if c.DryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return err
	}
	if hour := ctx.Clock().In(loc).Hour(); hour < settings.ReminderHour && !c.Force {
		if c.DryRun {
			fmt.Printf("Too early for reminders (%02d:00 < %02d:00).\n", hour, settings.ReminderHour)
		}
		return nil
	}

	user, err := ctx.CurrentUser()
	if err != nil {
		return err
	}
	eng, err := ctx.Engine()
	if err != nil {
		return err
	}
	statuses, err := eng.TodayStatus(context.Background(), user.ID)
	if err != nil {
		return err
	}

	var pending []string
	for _, s := range statuses {
		if !s.CompletedToday {
			pending = append(pending, s.Habit.Name)
		}
	}
	text := notifier.ReminderText(pending)
	if text == "" {
		if c.DryRun {
			fmt.Println("All habits done for today.")
		}
		return nil
	}

	title := constants.AppName
	if c.DryRun {
		fmt.Printf("[DRY RUN] %s: %s\n", title, text)
		return nil
	}

	if err := newSender().Notify(context.Background(), title, text); err != nil {
		if errors.Is(err, notifier.ErrTrayNotRunning) {
			logger.Debug("reminder skipped", "reason", err)
			return nil
		}
		return fmt.Errorf("failed to send reminder: %w", err)
	}
	logger.Info("reminder sent", "pending", len(pending))
	return nil
}
