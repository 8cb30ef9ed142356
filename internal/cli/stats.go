package cli

import (
	"fmt"
	"strings"

	"github.com/muhasaba/muhasaba/internal/constants"
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	s := t.Stats()
	fmt.Printf("Ramadan progress (day %d of %d)\n\n", t.CurrentDay(), constants.RamadanDays)
	printBar("Qur'an", s.Quran)
	printBar("Prayers", s.Prayers)
	printBar("Dhikr", s.Dhikr)
	printBar("Good deeds", s.GoodDeeds)
	fmt.Println()
	printBar("Overall", s.Overall)

	if covered := t.KhatmahVerses(); covered > 0 {
		fmt.Printf("\nKhatmah markers: %d/%d verses\n", covered, constants.TotalQuranVerses)
	}
	return nil
}

func printBar(label string, pct int) {
	const width = 30
	filled := pct * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	fmt.Printf("  %-10s %s %3d%%\n", label, bar, pct)
}
