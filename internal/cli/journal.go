package cli

import (
	"fmt"
	"sort"

	"github.com/muhasaba/muhasaba/internal/models"
)

type JournalCmd struct {
	Write JournalWriteCmd `cmd:"" help:"Write or update a day's journal entry."`
	Show  JournalShowCmd  `cmd:"" help:"Show journal entries."`
}

type JournalWriteCmd struct {
	Day          int     `help:"Cycle day (1-30, default: today)." default:"0"`
	Achievements *string `help:"What you accomplished today."`
	Memories     *string `help:"A memory worth keeping."`
	Mood         *string `help:"Mood: happy, spiritual, peaceful, determined, tired."`
}

func (c *JournalWriteCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	if c.Achievements == nil && c.Memories == nil && c.Mood == nil {
		return fmt.Errorf("nothing to write: pass --achievements, --memories, or --mood")
	}

	day, err := ctx.ResolveDay(c.Day)
	if err != nil {
		return err
	}

	patch := models.JournalPatch{
		Achievements: c.Achievements,
		Memories:     c.Memories,
	}
	if c.Mood != nil {
		mood := models.Mood(*c.Mood)
		patch.Mood = &mood
	}

	if err := t.UpdateJournalEntry(day, patch); err != nil {
		return err
	}

	fmt.Printf("Updated journal for day %d\n", day)
	return nil
}

type JournalShowCmd struct {
	Day int `arg:"" optional:"" help:"Cycle day (default: all entries)."`
}

func (c *JournalShowCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	if c.Day != 0 {
		entry, ok := t.JournalEntry(c.Day)
		if !ok {
			fmt.Printf("No journal entry for day %d.\n", c.Day)
			return nil
		}
		printEntry(entry)
		return nil
	}

	journal := t.State().Journal
	if len(journal) == 0 {
		fmt.Println("No journal entries yet.")
		return nil
	}

	days := make([]int, 0, len(journal))
	for day := range journal {
		days = append(days, day)
	}
	sort.Ints(days)

	for _, day := range days {
		printEntry(journal[day])
	}
	return nil
}

func printEntry(entry models.JournalEntry) {
	fmt.Printf("Day %d", entry.Day)
	if entry.Mood != models.MoodNone {
		fmt.Printf(" (%s)", entry.Mood)
	}
	fmt.Println()
	if entry.Achievements != "" {
		fmt.Printf("  achievements: %s\n", entry.Achievements)
	}
	if entry.Memories != "" {
		fmt.Printf("  memories: %s\n", entry.Memories)
	}
}
