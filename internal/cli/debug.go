package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/storage"
)

type DebugCmd struct {
	Path      *DebugPathCmd      `cmd:"" help:"Show storage and backup paths."`
	DumpEntry *DebugDumpEntryCmd `cmd:"" help:"Dump one entry as JSON."`
	DumpRaw   *DebugDumpRawCmd   `cmd:"" help:"Dump the stored journal document as is."`
}

type DebugPathCmd struct{}

func (cmd *DebugPathCmd) Run(ctx *Context) error {
	backend := "diskv"
	switch ctx.Store.(type) {
	case *storage.SQLiteStore:
		backend = "sqlite"
	case *storage.MemoryStore:
		backend = "memory"
	}

	// Output in machine-readable format
	output := map[string]string{
		"backend": backend,
		"path":    ctx.Store.GetConfigPath(),
		"backups": ctx.backups().GetBackupDir(),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	ctx.println(string(jsonBytes))
	return nil
}

type DebugDumpEntryCmd struct {
	Date string `arg:"" help:"Date of the entry to dump (YYYY-MM-DD, 'today' or 'yesterday')."`
}

func (cmd *DebugDumpEntryCmd) Run(ctx *Context) error {
	date, err := resolveDate(cmd.Date, ctx.journal().Now())
	if err != nil {
		return err
	}

	e, ok := journal.Find(ctx.Entries().LoadEntries(), date)
	if !ok {
		return fmt.Errorf("no entry found for date: %s", date)
	}

	jsonBytes, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}

	ctx.println(string(jsonBytes))
	return nil
}

type DebugDumpRawCmd struct{}

func (cmd *DebugDumpRawCmd) Run(ctx *Context) error {
	raws := ctx.Entries().Load()

	jsonBytes, err := json.MarshalIndent(raws, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal journal: %w", err)
	}

	ctx.println(string(jsonBytes))
	return nil
}
