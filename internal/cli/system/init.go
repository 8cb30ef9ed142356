package system

import (
	"fmt"
	"os"

	"github.com/muhasaba/muhasaba/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting the existing store before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		storePath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(storePath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing store: %w", err)
			}
			if err := os.Remove(storePath); err != nil {
				return fmt.Errorf("failed to delete existing store: %w", err)
			}
			fmt.Printf("Deleted existing store at: %s\n", storePath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing store: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized muhasaba storage at: %s\n", ctx.Store.GetConfigPath())

	// Populate the 30-day log up front so the first mutation finds it.
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}
	if err := t.InitializeData(); err != nil {
		return err
	}
	fmt.Println("Created the 30-day activity log. Ramadan Mubarak!")

	return nil
}
