// Package stats derives the progress snapshot from the activity log. The
// computation is a pure function of the log: no caching, no partial
// updates, and it never fails — malformed counter text degrades to zero
// and every percentage is clamped to [0,100].
package stats

import (
	"math"
	"strconv"

	"github.com/muhasaba/muhasaba/internal/constants"
	"github.com/muhasaba/muhasaba/internal/models"
)

// Compute maps the activity log to the five category percentages.
func Compute(activities []models.DailyActivity) models.Stats {
	totalVerses := 0
	prayerChecks := 0
	dhikrSessions := 0
	deedChecks := 0

	for _, day := range activities {
		totalVerses += parseCount(day.Quran)

		for _, field := range models.PrayerFields {
			if day.Flag(field) {
				prayerChecks++
			}
		}
		if models.DhikrPerformed(day.DhikrMorning) {
			dhikrSessions++
		}
		if models.DhikrPerformed(day.DhikrEvening) {
			dhikrSessions++
		}
		for _, field := range models.DeedFields {
			if day.Flag(field) {
				deedChecks++
			}
		}
	}

	s := models.Stats{
		Quran:     percentage(totalVerses, constants.TotalQuranVerses),
		Prayers:   percentage(prayerChecks, constants.PrayerChecksPerCycle),
		Dhikr:     percentage(dhikrSessions, constants.DhikrChecksPerCycle),
		GoodDeeds: percentage(deedChecks, constants.DeedChecksPerCycle),
	}
	s.Overall = roundHalfAway(float64(s.Quran+s.Prayers+s.Dhikr+s.GoodDeeds) / 4)
	return s
}

// parseCount parses a counter's text as a non-negative integer. Empty,
// malformed, or negative text counts as zero.
func parseCount(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// percentage returns round(count/total*100) clamped to [0,100].
func percentage(count, total int) int {
	if total <= 0 {
		return 0
	}
	p := roundHalfAway(float64(count) / float64(total) * 100)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func roundHalfAway(f float64) int {
	return int(math.Round(f))
}
