package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/trends"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

type TrendsCmd struct {
	Days int `short:"d" help:"Number of days to summarize, ending today." default:"30"`
}

func (c *TrendsCmd) Run(ctx *Context) error {
	j := ctx.journal()
	summary, err := trends.Summarize(ctx.Entries().LoadEntries(), j.Today(), c.Days)
	if err != nil {
		return err
	}

	ctx.println(titleStyle.Render(fmt.Sprintf("Last %d %s (%s to %s)",
		c.Days, pluralize(c.Days, "day", "days"), summary.From, summary.To)))
	if summary.Count == 0 {
		ctx.println("No entries in this period.")
		return nil
	}

	rows := make([][]string, 0, len(summary.Fields))
	for _, f := range summary.Fields {
		rows = append(rows, []string{
			f.Name,
			strconv.FormatFloat(f.Mean, 'f', 1, 64),
			strconv.Itoa(f.Min),
			strconv.Itoa(f.Max),
			sparkline(summary.Entries, fieldGetter(f.Name)),
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FIELD", "AVG", "MIN", "MAX", "TREND").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	ctx.println(t.Render())
	ctx.println(mutedStyle.Render(fmt.Sprintf("%d %s logged.",
		summary.Count, pluralize(summary.Count, "entry", "entries"))))
	return nil
}

func fieldGetter(name string) func(models.Entry) int {
	switch name {
	case "pain":
		return func(e models.Entry) int { return e.Pain }
	case "fatigue":
		return func(e models.Entry) int { return e.Fatigue }
	case "nausea":
		return func(e models.Entry) int { return e.Nausea }
	default:
		return func(e models.Entry) int { return e.Mood }
	}
}

// sparkline draws one block per entry scaled over 0-10.
func sparkline(entries []models.Entry, get func(models.Entry) int) string {
	var b strings.Builder
	top := len(sparkBlocks) - 1
	for _, e := range entries {
		v := models.Clamp(get(e), 0, models.SymptomMax)
		b.WriteRune(sparkBlocks[v*top/models.SymptomMax])
	}
	return b.String()
}
