package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/logger"
)

type ImportCmd struct {
	File      string `arg:"" help:"JSON file to import, '-' for stdin. Accepts an entry array or an object with an 'entries' array."`
	Overwrite bool   `xor:"conflicts" help:"Overwrite existing dates without asking."`
	Keep      bool   `xor:"conflicts" help:"Keep existing dates without asking."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	data, err := c.read()
	if err != nil {
		return err
	}
	imported, err := journal.ParseImport(data)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	j := ctx.journal()
	store := ctx.Entries()
	entries := store.LoadEntries()

	result := j.Merge(entries, imported, false)
	overwrite := false
	if n := len(result.Conflicts); n > 0 {
		overwrite, err = c.decide(ctx, n)
		if err != nil {
			return err
		}
		logger.Debug("Import conflicts", "dates", result.Conflicts, "overwrite", overwrite)
		if overwrite {
			result = j.Merge(entries, imported, true)
		}
	}

	store.Save(result.Merged)

	suffix := ""
	if overwrite {
		suffix = " (overwrote conflicts)"
	}
	ctx.printf("✓ Imported %d %s%s.\n", len(imported), pluralize(len(imported), "entry", "entries"), suffix)
	return nil
}

func (c *ImportCmd) read() ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if c.File == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(c.File)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}
	return data, nil
}

func (c *ImportCmd) decide(ctx *Context, conflicts int) (bool, error) {
	switch {
	case c.Overwrite:
		return true, nil
	case c.Keep:
		return false, nil
	}
	return ctx.prompter().Confirm(
		fmt.Sprintf("%d existing %s found. Overwrite them?", conflicts, pluralize(conflicts, "date", "dates")),
		"Overwrite", "Keep existing")
}
