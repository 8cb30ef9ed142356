package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/muhasaba/muhasaba/internal/cli"
	"github.com/muhasaba/muhasaba/internal/cli/backups"
	"github.com/muhasaba/muhasaba/internal/cli/system"
	"github.com/muhasaba/muhasaba/internal/constants"
	apperrors "github.com/muhasaba/muhasaba/internal/errors"
	"github.com/muhasaba/muhasaba/internal/logger"
	"github.com/muhasaba/muhasaba/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path (.json for a JSON blob, anything else for SQLite)." type:"path" default:"~/.config/muhasaba/muhasaba.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     system.InitCmd   `cmd:"" help:"Initialize muhasaba storage."`
	Tui      system.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Doctor   system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Day      cli.DayCmd       `cmd:"" help:"Show a day's record."`
	Mark     cli.MarkCmd      `cmd:"" help:"Mark or unmark a daily activity."`
	Quran    cli.QuranCmd     `cmd:"" help:"Track Qur'an reading."`
	Dhikr    cli.DhikrCmd     `cmd:"" help:"Record a dhikr session."`
	Dua      cli.DuaCmd       `cmd:"" help:"Manage saved supplications."`
	Goal     cli.GoalCmd      `cmd:"" help:"Manage Ramadan goals."`
	Journal  cli.JournalCmd   `cmd:"" help:"Keep the daily journal."`
	Stats    cli.StatsCmd     `cmd:"" help:"Show progress percentages."`
	Settings cli.SettingsCmd  `cmd:"" help:"Manage application settings."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Ramadan worship tracker / personal muhasaba companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}
	defer store.Close()

	appCtx := &cli.Context{Store: store}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}
