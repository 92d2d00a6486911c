package constants

import "time"

const (
	AppName            = "orbit"
	Version            = "v0.1.0"
	DefaultDataDir     = "~/.config/orbit"
	DefaultConfigFile  = "~/.config/orbit/config.json"
	DefaultKeyringUser = "openai-api-key"

	// DateFormat is the day key format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimestampFormat is the wire format for every persisted instant (ISO-8601)
	TimestampFormat = time.RFC3339Nano

	// Storage keys
	KeyHistory   = "history"
	KeyTasks     = "tasks"
	KeyMoods     = "moods"
	KeyJournal   = "journal"
	KeyBreathing = "breathing"

	// Backend names
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"

	// Data file names inside the data directory
	JSONFileName   = "orbit.json"
	SQLiteFileName = "orbit.db"
	LogDirName     = "logs"
	LogFileName    = "orbit.log"

	// Backup constants
	MaxBackups    = 14
	BackupDirName = "backups"

	// Metrics defaults
	DefaultWindowDays   = 7
	DefaultRecentDays   = 3
	DefaultTimezone     = "Local"
	DefaultOpenAIModel  = "gpt-4o-mini"
	DefaultAnalysisTime = 30 * time.Second

	// Highlight prefixes
	HighlightCompleted = "Completed: "
	HighlightMood      = "Mood: "
	HighlightJournal   = "Journal: "
	HighlightBreathing = "Breathing: "
)
