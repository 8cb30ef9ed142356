package cli

import "fmt"

type DhikrCmd struct {
	Session string `arg:"" help:"Session: morning or evening."`
	Count   string `arg:"" help:"Session count (\"0\" clears the session)."`
	Day     int    `help:"Cycle day (1-30, default: today)." default:"0"`
}

func (c *DhikrCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	slot, err := ParseDhikrSlot(c.Session)
	if err != nil {
		return err
	}

	day, err := ctx.ResolveDay(c.Day)
	if err != nil {
		return err
	}

	if err := t.UpdateDhikr(day, slot, c.Count); err != nil {
		return err
	}

	fmt.Printf("Recorded %s dhikr for day %d (dhikr progress: %d%%)\n", c.Session, day, t.Stats().Dhikr)
	return nil
}
