package constants

import "time"

// StartView is the view shown when daylog runs without a subcommand
type StartView string

const (
	AppName           = "daylog"
	DefaultConfigPath = "~/.config/daylog/store"
	Version           = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimestampFormat matches the millisecond UTC form entries carry in createdAt/updatedAt
	TimestampFormat = "2006-01-02T15:04:05.000Z"

	// Storage keys. Each key holds one JSON document in the slot backend.
	EntriesKey    = "daylog.v1.entries"
	SettingsKey   = "daylog.v1.settings"
	LastBackupKey = "daylog.v1.lastBackupAt"
	QuestionsKey  = "daylog.v1.questions"

	// Export
	ExportFilePrefix = "journal-"
	CSVHeader        = "date,mood,pain,fatigue,nausea,notes,tags"
	TagSeparator     = "|"

	// Backup constants
	MaxBackups          = 14
	BackupDirName       = "backups"
	BackupFilePrefix    = "daylog-"
	BackupFileSuffix    = ".json"
	BackupReminderAfter = 7 * 24 * time.Hour

	// Start views
	StartViewJournal  StartView = "journal"
	StartViewHistory  StartView = "history"
	StartViewTrends   StartView = "trends"
	StartViewExport   StartView = "export"
	StartViewSettings StartView = "settings"

	// Default Settings Values
	DefaultRemindersEnabled = true
	DefaultStartView        = StartViewJournal
)

// StartViews lists the valid start views in display order
var StartViews = []StartView{
	StartViewJournal,
	StartViewHistory,
	StartViewTrends,
	StartViewExport,
	StartViewSettings,
}
