package cli

import (
	"fmt"

	"github.com/muhasaba/muhasaba/internal/backup"
	"github.com/muhasaba/muhasaba/internal/constants"
	"github.com/muhasaba/muhasaba/internal/logger"
	"github.com/muhasaba/muhasaba/internal/models"
	"github.com/muhasaba/muhasaba/internal/storage"
	"github.com/muhasaba/muhasaba/internal/tracker"
)

type Context struct {
	Store storage.Provider

	trk *tracker.Tracker
}

// Tracker loads the persisted snapshot on first use and guarantees the
// 30-day log invariant before returning.
func (c *Context) Tracker() (*tracker.Tracker, error) {
	if c.trk != nil {
		return c.trk, nil
	}

	t, err := tracker.New(c.Store)
	if err != nil {
		return nil, err
	}
	if err := t.InitializeData(); err != nil {
		return nil, err
	}
	c.trk = t
	return t, nil
}

// ResolveDay maps a --day flag value to a cycle day: 0 means "today".
func (c *Context) ResolveDay(day int) (int, error) {
	t, err := c.Tracker()
	if err != nil {
		return 0, err
	}
	if day == 0 {
		return t.CurrentDay(), nil
	}
	if day < 1 || day > constants.RamadanDays {
		return 0, fmt.Errorf("day must be between 1 and %d, got %d", constants.RamadanDays, day)
	}
	return day, nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FormatActivity renders one day's record as aligned check rows.
func FormatActivity(a models.DailyActivity) string {
	check := func(b bool) string {
		if b {
			return "[x]"
		}
		return "[ ]"
	}
	dhikr := func(v string) string {
		if models.DhikrPerformed(v) {
			return v
		}
		return "-"
	}
	quran := a.Quran
	if quran == "" {
		quran = "0"
	}

	out := fmt.Sprintf("Day %d\n", a.Day)
	out += fmt.Sprintf("  %s fasting    %s qiyam      %s duha       %s rawatib\n",
		check(a.Fasting), check(a.Qiyam), check(a.Duha), check(a.Rawatib))
	out += fmt.Sprintf("  %s charity    %s family     %s happiness  %s feeding\n",
		check(a.Charity), check(a.FamilyVisit), check(a.Happiness), check(a.Feeding))
	out += fmt.Sprintf("  quran: %s verses   dhikr: morning %s, evening %s\n",
		quran, dhikr(a.DhikrMorning), dhikr(a.DhikrEvening))
	return out
}
