package cli

import (
	"fmt"

	"github.com/muhasaba/muhasaba/internal/constants"
	"github.com/muhasaba/muhasaba/internal/quran"
)

type QuranCmd struct {
	Count QuranCountCmd `cmd:"" help:"Record verses read for a day."`
	Surah QuranSurahCmd `cmd:"" help:"Toggle a surah's read marker."`
	List  QuranListCmd  `cmd:"" help:"List surahs and read markers."`
}

type QuranCountCmd struct {
	Verses string `arg:"" help:"Verses read that day."`
	Day    int    `help:"Cycle day (1-30, default: today)." default:"0"`
}

func (c *QuranCountCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	day, err := ctx.ResolveDay(c.Day)
	if err != nil {
		return err
	}

	if err := t.UpdateQuranCount(day, c.Verses); err != nil {
		return err
	}

	fmt.Printf("Recorded %s verses for day %d (Qur'an progress: %d%%)\n", c.Verses, day, t.Stats().Quran)
	return nil
}

type QuranSurahCmd struct {
	Number int `arg:"" help:"Surah number (1-114)."`
}

func (c *QuranSurahCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	surah, ok := quran.ByNumber(c.Number)
	if !ok {
		return fmt.Errorf("surah number must be between 1 and %d, got %d", len(quran.Surahs), c.Number)
	}

	if err := t.ToggleSurahRead(c.Number); err != nil {
		return err
	}

	if t.IsSurahRead(c.Number) {
		fmt.Printf("Marked %s (%d verses) as read\n", surah.Name, surah.Verses)
	} else {
		fmt.Printf("Unmarked %s\n", surah.Name)
	}
	return nil
}

type QuranListCmd struct {
	Read bool `help:"Only show surahs marked read."`
}

func (c *QuranListCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	for _, surah := range quran.Surahs {
		read := t.IsSurahRead(surah.Number)
		if c.Read && !read {
			continue
		}
		marker := " "
		if read {
			marker = "x"
		}
		fmt.Printf("[%s] %3d. %-14s %s (%d verses)\n", marker, surah.Number, surah.Name, surah.ArabicName, surah.Verses)
	}

	covered := t.KhatmahVerses()
	fmt.Printf("\nKhatmah: %d/%d verses marked read\n", covered, constants.TotalQuranVerses)
	return nil
}
