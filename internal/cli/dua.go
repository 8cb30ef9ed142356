package cli

import (
	"fmt"
	"strings"
)

type DuaCmd struct {
	Add    DuaAddCmd    `cmd:"" help:"Save a supplication."`
	List   DuaListCmd   `cmd:"" help:"List saved supplications."`
	Remove DuaRemoveCmd `cmd:"" help:"Remove a saved supplication by position."`
}

type DuaAddCmd struct {
	Text []string `arg:"" help:"Supplication text."`
}

func (c *DuaAddCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	text := strings.Join(c.Text, " ")
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("supplication text cannot be empty")
	}

	if err := t.AddDua(text); err != nil {
		return err
	}

	fmt.Printf("Saved supplication #%d\n", len(t.SavedDuas()))
	return nil
}

type DuaListCmd struct{}

func (c *DuaListCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	duas := t.SavedDuas()
	if len(duas) == 0 {
		fmt.Println("No saved supplications.")
		return nil
	}

	for i, dua := range duas {
		fmt.Printf("%3d. %s\n", i+1, dua)
	}
	return nil
}

type DuaRemoveCmd struct {
	Position int `arg:"" help:"1-based position from 'dua list'."`
}

func (c *DuaRemoveCmd) Run(ctx *Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	count := len(t.SavedDuas())
	if c.Position < 1 || c.Position > count {
		return fmt.Errorf("position %d out of range (1-%d)", c.Position, count)
	}

	if err := t.RemoveDua(c.Position - 1); err != nil {
		return err
	}

	fmt.Printf("Removed supplication #%d\n", c.Position)
	return nil
}
