package constants

const (
	// General Settings
	SettingTimezone               = "timezone"
	SettingStreakPolicy           = "streak_policy"
	SettingMetricsWindowDays      = "metrics_window_days"
	SettingRecommendationsEnabled = "recommendations_enabled"
	SettingRecommendationTimeout  = "recommendation_timeout_sec"
	SettingLLMBaseURL             = "llm_base_url"
	SettingLLMModel               = "llm_model"
	SettingNotificationsEnabled   = "notifications_enabled"
	SettingReminderHour           = "reminder_hour"
	SettingPreferredVoiceTags     = "preferred_voice_tags"
	SettingDefaultUserID          = "default_user_id"

	// Streak policies
	StreakPolicyGrace  = "grace"
	StreakPolicyStrict = "strict"

	// Default Settings Values
	DefaultTimezone               = "Local" // Use system local timezone by default
	DefaultStreakPolicy           = StreakPolicyGrace
	DefaultMetricsWindowDays      = 7
	DefaultRecommendationsEnabled = true
	DefaultRecommendationTimeout  = 8
	DefaultLLMBaseURL             = "https://api.openai.com/v1"
	DefaultLLMModel               = "gpt-4o-mini"
	DefaultNotificationsEnabled   = true
	DefaultReminderHour           = 20
	DefaultPreferredVoiceTags     = "natural,neural,premium,enhanced,desktop"
)
