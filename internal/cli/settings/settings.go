package settings

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/cli"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/streak"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/utils"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/voice"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone          *string `help:"IANA timezone name or 'Local'."`
	StreakPolicy      *string `name:"streak-policy" help:"Streak policy (grace|strict)."`
	MetricsWindowDays *int    `name:"metrics-window" help:"Days of metrics in the wellness score."`

	RecommendationsEnabled *bool   `name:"recommendations" help:"Enable or disable LLM recommendations."`
	RecommendationTimeout  *int    `name:"recommendation-timeout" help:"Seconds to wait for recommendations."`
	LLMBaseURL             *string `name:"llm-base-url" help:"OpenAI-compatible endpoint."`
	LLMModel               *string `name:"llm-model" help:"Model name sent to the endpoint."`

	NotificationsEnabled *bool   `help:"Enable or disable reminders."`
	ReminderHour         *int    `name:"reminder-hour" help:"Local hour (0-23) after which reminders fire."`
	VoiceTags            *string `name:"voice-tags" help:"Preferred voice tags, highest priority first."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Timezone:               %s\n", settings.Timezone)
		fmt.Printf("  Streak Policy:          %s\n", settings.StreakPolicy)
		fmt.Printf("  Metrics Window:         %d days\n", settings.MetricsWindowDays)
		fmt.Printf("  Default User:           %s\n", settings.DefaultUserID)
		fmt.Println("\nRecommendation Settings:")
		fmt.Printf("  Enabled:                %v\n", settings.RecommendationsEnabled)
		fmt.Printf("  Timeout:                %d s\n", settings.RecommendationTimeout)
		fmt.Printf("  LLM Base URL:           %s\n", settings.LLMBaseURL)
		fmt.Printf("  LLM Model:              %s\n", settings.LLMModel)
		fmt.Println("\nNotification Settings:")
		fmt.Printf("  Notifications Enabled:  %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Reminder Hour:          %02d:00\n", settings.ReminderHour)
		fmt.Printf("  Voice Tags:             %s\n", settings.PreferredVoiceTags)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone %q", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.StreakPolicy != nil {
		p, err := streak.ParsePolicy(*c.StreakPolicy)
		if err != nil {
			return err
		}
		settings.StreakPolicy = string(p)
		updated = true
	}
	if c.MetricsWindowDays != nil {
		if *c.MetricsWindowDays < 1 || *c.MetricsWindowDays > 90 {
			return fmt.Errorf("metrics window must be between 1 and 90 days")
		}
		settings.MetricsWindowDays = *c.MetricsWindowDays
		updated = true
	}
	if c.RecommendationsEnabled != nil {
		settings.RecommendationsEnabled = *c.RecommendationsEnabled
		updated = true
	}
	if c.RecommendationTimeout != nil {
		if *c.RecommendationTimeout < 1 || *c.RecommendationTimeout > 60 {
			return fmt.Errorf("recommendation timeout must be between 1 and 60 seconds")
		}
		settings.RecommendationTimeout = *c.RecommendationTimeout
		updated = true
	}
	if c.LLMBaseURL != nil {
		u, err := url.Parse(*c.LLMBaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid LLM base URL %q", *c.LLMBaseURL)
		}
		if u.User != nil {
			return fmt.Errorf("LLM base URL must not embed credentials; use 'evolv keyring set llm'")
		}
		settings.LLMBaseURL = *c.LLMBaseURL
		updated = true
	}
	if c.LLMModel != nil {
		settings.LLMModel = *c.LLMModel
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	if c.ReminderHour != nil {
		if *c.ReminderHour < 0 || *c.ReminderHour > 23 {
			return fmt.Errorf("reminder hour must be between 0 and 23")
		}
		settings.ReminderHour = *c.ReminderHour
		updated = true
	}
	if c.VoiceTags != nil {
		tags := voice.ParseTags(*c.VoiceTags)
		if len(tags) == 0 {
			return fmt.Errorf("at least one voice tag is required")
		}
		for _, tag := range tags {
			if !slices.Contains(voice.KnownTags, tag) {
				fmt.Printf("⚠ Unknown voice tag %q (known: %s)\n", tag, strings.Join(voice.KnownTags, ", "))
			}
		}
		settings.PreferredVoiceTags = strings.Join(tags, ",")
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
