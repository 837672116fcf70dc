package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daylog/internal/models"
)

// Prompter asks the user for input. Commands go through it so tests can
// answer without a terminal.
type Prompter interface {
	Confirm(title, affirmative, negative string) (bool, error)
	EditEntry(fm *EntryFormModel) error
}

// FormPrompter runs huh forms on the terminal.
type FormPrompter struct{}

func (FormPrompter) Confirm(title, affirmative, negative string) (bool, error) {
	var confirmed bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative(affirmative).
				Negative(negative).
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeDracula()).Run()
	return confirmed, err
}

func (FormPrompter) EditEntry(fm *EntryFormModel) error {
	return NewEntryForm(fm).Run()
}

// EntryFormModel holds the raw text of the entry form fields.
type EntryFormModel struct {
	Date    string
	Mood    string
	Pain    string
	Fatigue string
	Nausea  string
	Notes   string
	Tags    string // comma separated
}

// NewEntryFormModel prefills the form from e.
func NewEntryFormModel(e models.Entry) *EntryFormModel {
	return &EntryFormModel{
		Date:    e.Date,
		Mood:    strconv.Itoa(e.Mood),
		Pain:    strconv.Itoa(e.Pain),
		Fatigue: strconv.Itoa(e.Fatigue),
		Nausea:  strconv.Itoa(e.Nausea),
		Notes:   e.Notes,
		Tags:    formatTags(e.Tags),
	}
}

// Entry builds the candidate entry. Numbers are clamped to their domain and
// anything unparsable falls back to the field default.
func (fm *EntryFormModel) Entry() models.Entry {
	return models.Entry{
		Date:    fm.Date,
		Mood:    models.ClampMood(parseScore(fm.Mood, models.MoodDefault)),
		Pain:    models.ClampSymptom(parseScore(fm.Pain, models.SymptomDefault)),
		Fatigue: models.ClampSymptom(parseScore(fm.Fatigue, models.SymptomDefault)),
		Nausea:  models.ClampSymptom(parseScore(fm.Nausea, models.SymptomDefault)),
		Notes:   strings.TrimSpace(fm.Notes),
		Tags:    splitTags(fm.Tags),
	}
}

func parseScore(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

func scoreValidator(lo, hi int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if v < lo || v > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

// NewEntryForm creates the form for logging one day.
func NewEntryForm(fm *EntryFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(fmt.Sprintf("Entry for %s", fm.Date)),
			huh.NewInput().
				Title(fmt.Sprintf("Mood (%d-%d)", models.MoodMin, models.MoodMax)).
				Value(&fm.Mood).
				Validate(scoreValidator(models.MoodMin, models.MoodMax)),
			huh.NewInput().
				Title(fmt.Sprintf("Pain (%d-%d)", models.SymptomMin, models.SymptomMax)).
				Value(&fm.Pain).
				Validate(scoreValidator(models.SymptomMin, models.SymptomMax)),
			huh.NewInput().
				Title(fmt.Sprintf("Fatigue (%d-%d)", models.SymptomMin, models.SymptomMax)).
				Value(&fm.Fatigue).
				Validate(scoreValidator(models.SymptomMin, models.SymptomMax)),
			huh.NewInput().
				Title(fmt.Sprintf("Nausea (%d-%d)", models.SymptomMin, models.SymptomMax)).
				Value(&fm.Nausea).
				Validate(scoreValidator(models.SymptomMin, models.SymptomMax)),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Notes").
				Value(&fm.Notes),
			huh.NewInput().
				Title("Tags").
				Description("Comma separated").
				Value(&fm.Tags),
		),
	).WithTheme(huh.ThemeDracula())
}
