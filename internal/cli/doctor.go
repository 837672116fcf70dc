package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/storage"
	"github.com/julianstephens/daylog/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name       string
	run        func(ctx *Context) error
	warning    bool // failures are reported but do not fail the command
	needsStore bool
	gate       bool // later store checks are skipped when this one fails
}

var doctorChecks = []check{
	{name: "Storage reachable", run: checkStoreReachable, gate: true},
	{name: "Schema version", run: checkSchemaVersion, needsStore: true},
	{name: "Journal readable", run: checkJournalReadable, needsStore: true},
	{name: "Data validation", run: checkValidation, needsStore: true},
	{name: "Backups present", run: checkBackupsPresent, warning: true},
	{name: "Backup freshness", run: checkBackupFreshness, warning: true, needsStore: true},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	ctx.println("Running diagnostics...")
	ctx.println()

	hasError := false
	reachable := true
	for _, c := range doctorChecks {
		if !reachable && c.needsStore {
			ctx.printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}

		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.printf("✓ %s: OK\n", c.name)
		case c.warning:
			ctx.printf("⚠ %s: WARNING\n", c.name)
			ctx.printf("   %v\n", err)
		default:
			ctx.printf("❌ %s: FAIL\n", c.name)
			ctx.printf("   Error: %v\n", err)
			hasError = true
			if c.gate {
				reachable = false
			}
		}
	}

	ctx.println()
	if hasError {
		ctx.println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}
	if _, err := ctx.Store.Get(constants.SettingsKey); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to read storage: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		// Only the SQLite backend carries a schema
		return nil
	}

	current, latest, err := sqliteStore.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkJournalReadable(ctx *Context) error {
	data, err := ctx.Store.Get(constants.EntriesKey)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("journal document is missing, run 'daylog init' or log an entry")
	}
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}

	var raws []any
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("journal is not a JSON array (%w), it will load as empty", err)
	}
	return nil
}

func checkValidation(ctx *Context) error {
	result := validation.New(ctx.journal().Now).ValidateRaw(ctx.Entries().Load())
	if result.HasConflicts() {
		return fmt.Errorf("%d %s found, run 'daylog validate' for details",
			len(result.Conflicts), pluralize(len(result.Conflicts), "problem", "problems"))
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	backups, err := ctx.backups().ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'daylog backup create'")
	}
	return nil
}

func checkBackupFreshness(ctx *Context) error {
	settings := storage.LoadSettings(ctx.Store)
	entries := ctx.Entries().LoadEntries()
	now := ctx.journal().Now()
	if !storage.BackupDue(ctx.Store, settings, len(entries), now) {
		return nil
	}
	if days, ok := storage.DaysSinceBackup(ctx.Store, now); ok {
		return fmt.Errorf("last backup was %d days ago", days)
	}
	return fmt.Errorf("no backup has been recorded")
}

func checkClockTimezone(ctx *Context) error {
	now := ctx.journal().Now()

	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		// Dates are local, so UTC may be intentional; just note it
		ctx.printf("   Note: timezone is UTC\n")
	}
	return nil
}
