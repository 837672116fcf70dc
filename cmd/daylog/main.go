package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/daylog/internal/cli"
	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/errors"
	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/logger"
	"github.com/julianstephens/daylog/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store location. A path ending in .db or .sqlite selects SQLite, anything else a directory store." type:"path" default:"~/.config/daylog/store" env:"DAYLOG_CONFIG"`
	Debug   bool   `help:"Log debug output to stderr." env:"DAYLOG_DEBUG"`

	Home     cli.HomeCmd     `cmd:"" hidden:"" default:"1" help:"Show the configured start view."`
	Init     cli.InitCmd     `cmd:"" help:"Initialize daylog storage."`
	Log      cli.LogCmd      `cmd:"" help:"Log or update the entry for a day."`
	Show     cli.ShowCmd     `cmd:"" help:"Show the entry for a day."`
	History  cli.HistoryCmd  `cmd:"" help:"List entries, newest first."`
	Delete   cli.DeleteCmd   `cmd:"" help:"Delete an entry."`
	Trends   cli.TrendsCmd   `cmd:"" help:"Summarize recent entries."`
	Export   cli.ExportCmd   `cmd:"" help:"Export the journal as CSV or JSON."`
	Import   cli.ImportCmd   `cmd:"" help:"Import entries from a JSON file."`
	Settings cli.SettingsCmd `cmd:"" help:"Show or change settings."`
	Backup   struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage journal backups."`
	Questions struct {
		List   cli.QuestionsListCmd   `cmd:"" help:"List questions." default:"1"`
		Add    cli.QuestionsAddCmd    `cmd:"" help:"Add a question for your next appointment."`
		Answer cli.QuestionsAnswerCmd `cmd:"" help:"Mark a question answered."`
		Delete cli.QuestionsDeleteCmd `cmd:"" help:"Delete a question."`
	} `cmd:"" help:"Track questions to ask at appointments."`
	Validate cli.ValidateCmd `cmd:"" help:"Check the stored journal for problems."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Tools    cli.DebugCmd    `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily symptom and mood journal"),
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
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	store := storage.Open(CLI.Config)
	logger.Debug("Opening store", "path", CLI.Config, "command", ctx.Command())

	// Init handles its own storage setup
	if ctx.Selected() == nil || ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	appCtx := &cli.Context{
		Store:    store,
		Journal:  journal.New(),
		Prompter: cli.FormPrompter{},
		Out:      os.Stdout,
	}

	err := ctx.Run(appCtx)
	if cerr := store.Close(); cerr != nil {
		logger.Warn("Failed to close store", "error", cerr)
	}
	errors.Fatal(err)
}
