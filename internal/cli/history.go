package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/models"
)

const notesPreviewLen = 40

type HistoryCmd struct {
	Filter string `short:"f" help:"Only show entries whose notes or tags contain this text."`
	Limit  int    `short:"l" help:"Show at most this many entries (0 for all)." default:"0"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	entries := ctx.Entries().LoadEntries()
	if len(entries) == 0 {
		ctx.println("No entries yet.")
		return nil
	}

	matched := journal.Sorted(journal.Filter(entries, c.Filter), true)
	if len(matched) == 0 {
		ctx.printf("No entries match %q.\n", c.Filter)
		return nil
	}

	shown := matched
	if c.Limit > 0 && len(shown) > c.Limit {
		shown = shown[:c.Limit]
	}

	ctx.println(historyTable(shown).Render())
	ctx.println(mutedStyle.Render(fmt.Sprintf("Showing %d of %d %s.",
		len(shown), len(entries), pluralize(len(entries), "entry", "entries"))))
	return nil
}

func historyTable(entries []models.Entry) *table.Table {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			formatDate(e.Date),
			strconv.Itoa(e.Mood),
			strconv.Itoa(e.Pain),
			strconv.Itoa(e.Fatigue),
			strconv.Itoa(e.Nausea),
			formatTags(e.Tags),
			preview(e.Notes, notesPreviewLen),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("DATE", "MOOD", "PAIN", "FATIGUE", "NAUSEA", "TAGS", "NOTES").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// preview flattens s onto one line and cuts it to n runes.
func preview(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
