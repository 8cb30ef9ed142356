package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muhasaba/muhasaba/internal/cli"
	"github.com/muhasaba/muhasaba/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	t, err := ctx.Tracker()
	if err != nil {
		return err
	}

	// Automatic backup on TUI startup, after a successful load.
	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(t), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
