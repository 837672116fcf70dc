package cli

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/models"
)

type ShowCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD, 'today' or 'yesterday'). Defaults to today."`
}

func (c *ShowCmd) Run(ctx *Context) error {
	date, err := resolveDate(c.Date, ctx.journal().Now())
	if err != nil {
		return err
	}

	e, ok := journal.Find(ctx.Entries().LoadEntries(), date)
	if !ok {
		ctx.printf("No entry for %s.\n", date)
		ctx.println(mutedStyle.Render(fmt.Sprintf("Log one with 'daylog log %s'.", date)))
		return nil
	}

	ctx.println(renderEntry(e))
	return nil
}

func renderEntry(e models.Entry) string {
	row := func(label, value string) string {
		return labelStyle.Render(label) + " " + valueStyle.Render(value) + "\n"
	}

	out := titleStyle.Render(formatDate(e.Date)) + "\n"
	out += row("Mood", strconv.Itoa(e.Mood))
	out += row("Pain", strconv.Itoa(e.Pain))
	out += row("Fatigue", strconv.Itoa(e.Fatigue))
	out += row("Nausea", strconv.Itoa(e.Nausea))
	if len(e.Tags) > 0 {
		out += row("Tags", formatTags(e.Tags))
	}
	if e.Notes != "" {
		out += row("Notes", e.Notes)
	}
	out += mutedStyle.Render(fmt.Sprintf("%s · updated %s", e.ID, e.UpdatedAt))
	return out
}
