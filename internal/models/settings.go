package models

// Settings represents application-wide settings
type Settings struct {
	Timezone               string `json:"timezone"`                   // IANA timezone name or "Local"
	StreakPolicy           string `json:"streak_policy"`              // "grace" or "strict"
	MetricsWindowDays      int    `json:"metrics_window_days"`        // rolling window for the wellness score
	RecommendationsEnabled bool   `json:"recommendations_enabled"`    // whether to call the LLM at all
	RecommendationTimeout  int    `json:"recommendation_timeout_sec"` // upper bound for one LLM call
	LLMBaseURL             string `json:"llm_base_url"`               // OpenAI-compatible endpoint
	LLMModel               string `json:"llm_model"`
	NotificationsEnabled   bool   `json:"notifications_enabled"`
	ReminderHour           int    `json:"reminder_hour"`        // local hour after which reminders fire
	PreferredVoiceTags     string `json:"preferred_voice_tags"` // comma separated, highest priority first
	DefaultUserID          string `json:"default_user_id"`
}
