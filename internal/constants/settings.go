package constants

const (
	// Settings keys
	SettingRamadanStart     = "ramadan_start"
	SettingDailyVerseTarget = "daily_verse_target"

	// Default Settings Values
	DefaultRamadanStart     = ""  // unset: day selection falls back to day 1
	DefaultDailyVerseTarget = 208 // ceil(6236 / 30)
)
