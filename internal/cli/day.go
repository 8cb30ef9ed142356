package cli

import "fmt"

type DayCmd struct {
	Day int `arg:"" optional:"" help:"Cycle day (1-30, default: today)."`
}

func (c *DayCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	day, err := ctx.ResolveDay(c.Day)
	if err != nil {
		return err
	}

	activity, ok := t.Activity(day)
	if !ok {
		return fmt.Errorf("no record for day %d", day)
	}

	fmt.Print(FormatActivity(activity))

	if entry, ok := t.JournalEntry(day); ok {
		fmt.Printf("  journal: mood=%s", entry.Mood)
		if entry.Achievements != "" {
			fmt.Printf(" achievements=%q", entry.Achievements)
		}
		fmt.Println()
	}

	return nil
}

type MarkCmd struct {
	Field string `arg:"" help:"Activity field: fasting, qiyam, duha, rawatib, charity, family, happiness, feeding."`
	Day   int    `help:"Cycle day (1-30, default: today)." default:"0"`
	Off   bool   `help:"Unmark instead of mark."`
}

func (c *MarkCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	field, err := ParseBoolField(c.Field)
	if err != nil {
		return err
	}

	day, err := ctx.ResolveDay(c.Day)
	if err != nil {
		return err
	}

	if err := t.UpdateActivity(day, field, !c.Off); err != nil {
		return err
	}

	state := "Marked"
	if c.Off {
		state = "Unmarked"
	}
	fmt.Printf("%s %s for day %d\n", state, field, day)
	return nil
}
