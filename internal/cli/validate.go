package cli

import (
	"fmt"
	"path/filepath"

	"github.com/julianstephens/daylog/internal/validation"
)

type ValidateCmd struct {
	Fix bool `help:"Rewrite the journal in canonical form after backing it up."`
}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	j := ctx.journal()
	store := ctx.Entries()
	raws := store.Load()

	validator := validation.New(j.Now)

	ctx.printf("Validating %d stored %s...\n", len(raws), pluralize(len(raws), "entry", "entries"))
	result := validator.ValidateRaw(raws)
	ctx.println()
	ctx.println(result.FormatReport())

	if !cmd.Fix || !result.HasConflicts() {
		return nil
	}

	fixable := false
	for _, c := range result.Conflicts {
		fixable = fixable || c.Fixable
	}
	if !fixable {
		ctx.println("Nothing can be fixed automatically.")
		return nil
	}

	backupPath, err := ctx.backups().CreateBackup()
	if err != nil {
		return fmt.Errorf("refusing to fix without a backup: %w", err)
	}
	ctx.printf("Backed up current journal to %s\n", filepath.Base(backupPath))

	fixed, actions := validator.Fix(j, raws)
	store.Save(fixed)

	ctx.println()
	ctx.println("Applied fixes:")
	for _, a := range actions {
		ctx.printf("- %s\n", a.Action)
	}

	remaining := validator.ValidateEntries(fixed)
	if remaining.HasConflicts() {
		ctx.println()
		ctx.println(remaining.FormatReport())
	}
	return nil
}
