package constants

import "time"

const (
	AppName            = "evolv"
	DefaultKeyringUser = "database-connection"
	LLMKeyringUser     = "llm-api-key"
	DefaultConfigPath  = "~/.config/evolv/evolv.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Environment variables
	EnvDBConnection = "EVOLV_DB_CONNECTION"
	EnvLLMAPIKey    = "EVOLV_LLM_API_KEY"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "evolv-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "evolv-notifier.lock"
	NotificationDurationMs = 6000
	TrayAppIdentifier      = "com.thatappguy71.evolv"
	TrayExecutablePrefix   = "evolv-tray"
	NotifyRequestTimeout   = 3 * time.Second

	// Habit categories
	CategoryMindfulness  = "mindfulness"
	CategoryFitness      = "fitness"
	CategoryNutrition    = "nutrition"
	CategorySleep        = "sleep"
	CategoryProductivity = "productivity"
	CategoryRecovery     = "recovery"
	CategorySocial       = "social"
	CategoryOther        = "other"

	// Habit difficulties
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Categories lists every accepted habit category in display order.
var Categories = []string{
	CategoryMindfulness,
	CategoryFitness,
	CategoryNutrition,
	CategorySleep,
	CategoryProductivity,
	CategoryRecovery,
	CategorySocial,
	CategoryOther,
}

// Difficulties lists every accepted habit difficulty label.
var Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}
