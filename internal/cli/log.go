package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/models"
)

type LogCmd struct {
	Date        string  `arg:"" optional:"" help:"Date to log (YYYY-MM-DD, 'today' or 'yesterday'). Defaults to today."`
	Mood        *int    `short:"m" help:"Mood (1-10)."`
	Pain        *int    `short:"p" help:"Pain (0-10)."`
	Fatigue     *int    `short:"f" help:"Fatigue (0-10)."`
	Nausea      *int    `short:"n" help:"Nausea (0-10)."`
	Notes       *string `help:"Free-form notes."`
	Tags        *string `short:"t" help:"Comma-separated tags."`
	Interactive bool    `short:"i" help:"Edit the entry in a form. Implied when no field flags are given."`
}

func (c *LogCmd) hasFieldFlags() bool {
	return c.Mood != nil || c.Pain != nil || c.Fatigue != nil || c.Nausea != nil ||
		c.Notes != nil || c.Tags != nil
}

func (c *LogCmd) Run(ctx *Context) error {
	j := ctx.journal()
	date, err := resolveDate(c.Date, j.Now())
	if err != nil {
		return err
	}
	if date > j.Today() {
		return fmt.Errorf("cannot log a future date: %s", date)
	}

	store := ctx.Entries()
	entries := store.LoadEntries()

	candidate, found := journal.Find(entries, date)
	if !found {
		candidate = models.Entry{Date: date, Mood: models.MoodDefault}
	}
	candidate = c.apply(candidate.Clone())

	if c.Interactive || !c.hasFieldFlags() {
		fm := NewEntryFormModel(candidate)
		if err := ctx.prompter().EditEntry(fm); err != nil {
			return err
		}
		edited := fm.Entry()
		edited.ID = candidate.ID
		edited.CreatedAt = candidate.CreatedAt
		edited.Date = date
		candidate = edited
	}

	saved := j.Sanitize(candidate)
	store.Save(j.Upsert(entries, saved))

	verb := "Saved"
	if found {
		verb = "Updated"
	}
	ctx.printf("✓ %s entry for %s (%s)\n", verb, date, describeEntry(saved))
	return nil
}

func (c *LogCmd) apply(e models.Entry) models.Entry {
	if c.Mood != nil {
		e.Mood = models.ClampMood(*c.Mood)
	}
	if c.Pain != nil {
		e.Pain = models.ClampSymptom(*c.Pain)
	}
	if c.Fatigue != nil {
		e.Fatigue = models.ClampSymptom(*c.Fatigue)
	}
	if c.Nausea != nil {
		e.Nausea = models.ClampSymptom(*c.Nausea)
	}
	if c.Notes != nil {
		e.Notes = strings.TrimSpace(*c.Notes)
	}
	if c.Tags != nil {
		e.Tags = splitTags(*c.Tags)
	}
	return e
}
