package cli

import (
	"fmt"

	"github.com/julianstephens/daylog/internal/journal"
)

type DeleteCmd struct {
	Target string `arg:"" help:"Entry id or date (YYYY-MM-DD, 'today' or 'yesterday')."`
	Yes    bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	store := ctx.Entries()
	entries := store.LoadEntries()

	e, ok := journal.FindByID(entries, c.Target)
	if !ok {
		if date, err := resolveDate(c.Target, ctx.journal().Now()); err == nil {
			e, ok = journal.Find(entries, date)
		}
	}
	if !ok {
		return fmt.Errorf("no entry found: %s", c.Target)
	}

	if !c.Yes {
		confirmed, err := ctx.prompter().Confirm(
			fmt.Sprintf("Delete entry for %s? This cannot be undone.", e.Date),
			"Delete", "Cancel")
		if err != nil {
			return err
		}
		if !confirmed {
			ctx.println("Delete cancelled.")
			return nil
		}
	}

	store.Save(journal.Delete(entries, e.ID))
	ctx.printf("✓ Deleted entry for %s\n", e.Date)
	return nil
}
