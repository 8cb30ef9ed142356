package models

import (
	"time"

	"github.com/muhasaba/muhasaba/internal/constants"
)

// Settings holds the small amount of user configuration that lives inside
// the store snapshot.
type Settings struct {
	// RamadanStart anchors the cycle to a calendar date (YYYY-MM-DD).
	// Empty means unanchored: "today" resolves to day 1.
	RamadanStart string `json:"ramadan_start"`
	// DailyVerseTarget is the reading pace hint shown in the TUI.
	DailyVerseTarget int `json:"daily_verse_target"`
}

// DefaultSettings returns the settings used for a fresh store.
func DefaultSettings() Settings {
	return Settings{
		RamadanStart:     constants.DefaultRamadanStart,
		DailyVerseTarget: constants.DefaultDailyVerseTarget,
	}
}

// CurrentDay resolves the cycle day (1..30) for the given wall-clock time.
// An unset or unparseable start date resolves to day 1; dates outside the
// cycle clamp to its edges.
func (s Settings) CurrentDay(now time.Time) int {
	if s.RamadanStart == "" {
		return 1
	}
	start, err := time.ParseInLocation(constants.DateFormat, s.RamadanStart, now.Location())
	if err != nil {
		return 1
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := int(today.Sub(start).Hours()/24) + 1
	if day < 1 {
		return 1
	}
	if day > constants.RamadanDays {
		return constants.RamadanDays
	}
	return day
}
