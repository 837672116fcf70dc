package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/logger"
	"github.com/julianstephens/daylog/internal/storage"
)

type ExportCmd struct {
	Format string `short:"F" enum:"csv,json" default:"json" help:"Export format (csv or json)."`
	Out    string `short:"o" help:"Output file, '-' for stdout. Defaults to journal-<today>.<format> in the current directory."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	j := ctx.journal()
	entries := ctx.Entries().LoadEntries()

	var data []byte
	switch c.Format {
	case "csv":
		data = []byte(journal.ToCSV(entries))
	case "json", "":
		b, err := journal.ToJSON(entries)
		if err != nil {
			return fmt.Errorf("failed to encode journal: %w", err)
		}
		data = b
	default:
		return fmt.Errorf("unsupported export format: %s", c.Format)
	}

	path := c.Out
	if path == "" {
		path = exportFileName(j.Today(), c.Format)
	}

	if path == "-" {
		if _, err := ctx.out().Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
	} else {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		ctx.printf("✓ Exported %d %s to %s\n", len(entries), pluralize(len(entries), "entry", "entries"), path)
	}

	// A JSON export can be imported back, so it counts as a backup.
	if c.Format != "csv" {
		if err := storage.MarkBackup(ctx.Store, j.Now()); err != nil {
			logger.Warn("Failed to record export as backup", "error", err)
		}
	}
	return nil
}

func exportFileName(today, format string) string {
	if format == "" {
		format = "json"
	}
	return constants.ExportFilePrefix + today + "." + format
}
