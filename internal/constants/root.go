package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "muhasaba"
	DefaultConfigPath = "~/.config/muhasaba/muhasaba.db"
	Version           = "v0.2.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// RamadanDays is the length of the tracked cycle
	RamadanDays = 30

	// TotalQuranVerses is the verse count of the complete Qur'an
	TotalQuranVerses = 6236

	// PrayerChecksPerCycle is the maximum number of prayer checks (4 fields x 30 days)
	PrayerChecksPerCycle = 120

	// DhikrChecksPerCycle is the maximum number of dhikr sessions (2 slots x 30 days)
	DhikrChecksPerCycle = 60

	// DeedChecksPerCycle is the maximum number of good-deed checks (4 fields x 30 days)
	DeedChecksPerCycle = 120

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "muhasaba-"
)

// Session States
const (
	StateTracker SessionState = iota
	StateStats
	StateGoals
	StateJournal
	StateDuas
	StateEditDay
	StateAddGoal
	StateEditJournal
	StateAddDua
	StateConfirmRemoveGoal
	StateConfirmRemoveDua
)

// NumMainTabs is the number of top-level tabs cycled with tab/shift+tab
const NumMainTabs = 5
