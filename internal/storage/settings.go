package storage

import (
	"fmt"
	"strconv"

	"github.com/thatappguy71/EvolvAssistant-sub000/internal/constants"
	"github.com/thatappguy71/EvolvAssistant-sub000/internal/models"
)

// DefaultSettings returns the settings written by Init on a fresh store.
func DefaultSettings() models.Settings {
	return models.Settings{
		Timezone:               constants.DefaultTimezone,
		StreakPolicy:           constants.DefaultStreakPolicy,
		MetricsWindowDays:      constants.DefaultMetricsWindowDays,
		RecommendationsEnabled: constants.DefaultRecommendationsEnabled,
		RecommendationTimeout:  constants.DefaultRecommendationTimeout,
		LLMBaseURL:             constants.DefaultLLMBaseURL,
		LLMModel:               constants.DefaultLLMModel,
		NotificationsEnabled:   constants.DefaultNotificationsEnabled,
		ReminderHour:           constants.DefaultReminderHour,
		PreferredVoiceTags:     constants.DefaultPreferredVoiceTags,
	}
}

// SettingsPairs flattens settings into the key/value rows of the settings table.
func SettingsPairs(s models.Settings) [][2]string {
	return [][2]string{
		{constants.SettingTimezone, s.Timezone},
		{constants.SettingStreakPolicy, s.StreakPolicy},
		{constants.SettingMetricsWindowDays, strconv.Itoa(s.MetricsWindowDays)},
		{constants.SettingRecommendationsEnabled, strconv.FormatBool(s.RecommendationsEnabled)},
		{constants.SettingRecommendationTimeout, strconv.Itoa(s.RecommendationTimeout)},
		{constants.SettingLLMBaseURL, s.LLMBaseURL},
		{constants.SettingLLMModel, s.LLMModel},
		{constants.SettingNotificationsEnabled, strconv.FormatBool(s.NotificationsEnabled)},
		{constants.SettingReminderHour, strconv.Itoa(s.ReminderHour)},
		{constants.SettingPreferredVoiceTags, s.PreferredVoiceTags},
		{constants.SettingDefaultUserID, s.DefaultUserID},
	}
}

// SettingsFromPairs rebuilds settings from stored rows. Keys that are missing
// keep their default value; unknown keys are ignored.
func SettingsFromPairs(pairs map[string]string) (models.Settings, error) {
	if len(pairs) == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	s := DefaultSettings()
	for key, value := range pairs {
		var err error
		switch key {
		case constants.SettingTimezone:
			s.Timezone = value
		case constants.SettingStreakPolicy:
			s.StreakPolicy = value
		case constants.SettingMetricsWindowDays:
			s.MetricsWindowDays, err = strconv.Atoi(value)
		case constants.SettingRecommendationsEnabled:
			s.RecommendationsEnabled = value == "true"
		case constants.SettingRecommendationTimeout:
			s.RecommendationTimeout, err = strconv.Atoi(value)
		case constants.SettingLLMBaseURL:
			s.LLMBaseURL = value
		case constants.SettingLLMModel:
			s.LLMModel = value
		case constants.SettingNotificationsEnabled:
			s.NotificationsEnabled = value == "true"
		case constants.SettingReminderHour:
			s.ReminderHour, err = strconv.Atoi(value)
		case constants.SettingPreferredVoiceTags:
			s.PreferredVoiceTags = value
		case constants.SettingDefaultUserID:
			s.DefaultUserID = value
		}
		if err != nil {
			return models.Settings{}, fmt.Errorf("parsing %s: %w", key, err)
		}
	}
	return s, nil
}
