package cli

import "fmt"

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" help:"Show settings." default:"1"`
	Set  SettingsSetCmd  `cmd:"" help:"Update settings."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	s := t.Settings()
	start := s.RamadanStart
	if start == "" {
		start = "(unset)"
	}
	fmt.Printf("ramadan start:      %s\n", start)
	fmt.Printf("daily verse target: %d\n", s.DailyVerseTarget)
	return nil
}

type SettingsSetCmd struct {
	Start       string `help:"First day of Ramadan (YYYY-MM-DD)."`
	VerseTarget int    `help:"Daily verse reading target."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	s := t.Settings()
	if c.Start != "" {
		s.RamadanStart = c.Start
	}
	if c.VerseTarget > 0 {
		s.DailyVerseTarget = c.VerseTarget
	}

	if err := t.UpdateSettings(s); err != nil {
		return err
	}

	fmt.Println("Settings updated.")
	return nil
}
