package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/storage"
)

var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

const (
	today      = "2024-03-15"
	nowStamp   = "2024-03-15T09:30:00.000Z"
	createdOld = "2024-01-01T08:00:00.000Z"
)

// fakePrompter answers prompts without a terminal and records what was asked.
type fakePrompter struct {
	confirm bool
	err     error
	edit    func(fm *EntryFormModel)
	asked   []string
	form    *EntryFormModel // last form shown, as prefilled
}

func (p *fakePrompter) Confirm(title, affirmative, negative string) (bool, error) {
	p.asked = append(p.asked, title)
	return p.confirm, p.err
}

func (p *fakePrompter) EditEntry(fm *EntryFormModel) error {
	prefilled := *fm
	p.form = &prefilled
	p.asked = append(p.asked, "edit "+fm.Date)
	if p.err != nil {
		return p.err
	}
	if p.edit != nil {
		p.edit(fm)
	}
	return nil
}

func setupTestContext(t *testing.T) (*Context, *bytes.Buffer, *fakePrompter) {
	t.Helper()
	return setupTestContextWithStore(t, storage.NewMemoryStore())
}

func setupTestContextWithStore(t *testing.T, store storage.Provider) (*Context, *bytes.Buffer, *fakePrompter) {
	t.Helper()
	out := &bytes.Buffer{}
	prompter := &fakePrompter{}
	ctx := &Context{
		Store:     store,
		Journal:   journal.New(journal.WithClock(func() time.Time { return fixedNow })),
		Prompter:  prompter,
		Out:       out,
		BackupDir: t.TempDir(),
	}
	return ctx, out, prompter
}

func testEntry(date string, mood int, notes string, tags ...string) models.Entry {
	return models.Entry{
		ID:        models.CanonicalID(date),
		Date:      date,
		Mood:      mood,
		Notes:     notes,
		Tags:      tags,
		CreatedAt: createdOld,
		UpdatedAt: createdOld,
	}
}

func seedEntries(ctx *Context, entries ...models.Entry) {
	ctx.Entries().Save(entries)
}

func storedEntries(ctx *Context) []models.Entry {
	return ctx.Entries().LoadEntries()
}

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

func TestResolveDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "", want: today},
		{in: "today", want: today},
		{in: "Yesterday", want: "2024-03-14"},
		{in: "2024-02-29", want: "2024-02-29"},
		{in: "2023-02-29", wantErr: true},
		{in: "2024-3-1", wantErr: true},
		{in: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := resolveDate(tt.in, fixedNow)
			if tt.wantErr {
				if err == nil {
					t.Errorf("resolveDate(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveDate(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("resolveDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitTags(t *testing.T) {
	got := splitTags(" run, ,sleep ,")
	if len(got) != 2 || got[0] != "run" || got[1] != "sleep" {
		t.Errorf("splitTags = %q, want [run sleep]", got)
	}
	if splitTags("  ") != nil {
		t.Errorf("blank input should give no tags")
	}
}

func TestEntryFormModel(t *testing.T) {
	fm := NewEntryFormModel(testEntry("2024-03-01", 6, "note", "a", "b"))
	if fm.Mood != "6" || fm.Pain != "0" || fm.Tags != "a, b" || fm.Notes != "note" {
		t.Fatalf("unexpected prefill: %+v", fm)
	}

	fm.Mood = "11"
	fm.Pain = "-2"
	fm.Fatigue = "abc"
	fm.Nausea = " 4 "
	fm.Notes = "  edited  "
	fm.Tags = "x,,y"

	e := fm.Entry()
	if e.Date != "2024-03-01" {
		t.Errorf("date = %q", e.Date)
	}
	if e.Mood != 10 || e.Pain != 0 || e.Fatigue != 0 || e.Nausea != 4 {
		t.Errorf("scores not parsed and clamped: %+v", e)
	}
	if e.Notes != "edited" {
		t.Errorf("notes = %q, want trimmed", e.Notes)
	}
	if len(e.Tags) != 2 {
		t.Errorf("tags = %q", e.Tags)
	}
}

func TestScoreValidator(t *testing.T) {
	validate := scoreValidator(1, 10)
	for _, ok := range []string{"1", "10", " 5 "} {
		if err := validate(ok); err != nil {
			t.Errorf("validate(%q) = %v, want nil", ok, err)
		}
	}
	for _, bad := range []string{"0", "11", "", "five", "2.5"} {
		if err := validate(bad); err == nil {
			t.Errorf("validate(%q) should fail", bad)
		}
	}
}
