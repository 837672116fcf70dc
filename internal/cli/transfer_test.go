package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/storage"
)

func TestExportCmd_CSVFile(t *testing.T) {
	ctx, out, _ := setupTestContext(t)
	seedEntries(ctx, testEntry("2024-03-02", 6, `said "hi"`, "a", "b"), testEntry("2024-03-01", 5, ""))

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := (&ExportCmd{Format: "csv", Out: path}).Run(ctx); err != nil {
		t.Fatalf("export command failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	if want := journal.ToCSV(storedEntries(ctx)); string(data) != want {
		t.Errorf("csv export mismatch:\ngot:\n%s\nwant:\n%s", data, want)
	}
	if !strings.HasPrefix(string(data), "date,mood,pain,fatigue,nausea,notes,tags\n2024-03-01,") {
		t.Errorf("rows not sorted by date:\n%s", data)
	}
	if !strings.Contains(out.String(), "✓ Exported 2 entries to "+path) {
		t.Errorf("unexpected output: %s", out.String())
	}
	if _, ok := storage.LastBackupAt(ctx.Store); ok {
		t.Error("csv export must not count as a backup")
	}
}

func TestExportCmd_JSONStdoutMarksBackup(t *testing.T) {
	ctx, out, _ := setupTestContext(t)
	seedEntries(ctx, testEntry("2024-03-01", 5, "note"))

	if err := (&ExportCmd{Format: "json", Out: "-"}).Run(ctx); err != nil {
		t.Fatalf("export command failed: %v", err)
	}

	var exported []map[string]any
	if err := json.Unmarshal(out.Bytes(), &exported); err != nil {
		t.Fatalf("stdout is not a JSON array: %v\n%s", err, out.String())
	}
	if len(exported) != 1 || exported[0]["date"] != "2024-03-01" {
		t.Errorf("unexpected export: %v", exported)
	}

	at, ok := storage.LastBackupAt(ctx.Store)
	if !ok || !at.Equal(fixedNow) {
		t.Errorf("backup marker = %v (%v), want %v", at, ok, fixedNow)
	}
}

func TestExportCmd_DefaultFileName(t *testing.T) {
	ctx, _, _ := setupTestContext(t)
	dir := t.TempDir()
	t.Chdir(dir)

	if err := (&ExportCmd{Format: "json"}).Run(ctx); err != nil {
		t.Fatalf("export command failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "journal-"+today+".json"))
	if err != nil {
		t.Fatalf("default export file missing: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("empty journal should export as [], got %s", data)
	}
}

func writeImport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write import file: %v", err)
	}
	return path
}

func TestImportCmd_PromptsAndOverwrites(t *testing.T) {
	ctx, out, prompter := setupTestContext(t)
	seedEntries(ctx, testEntry("2024-01-01", 5, "original"))
	prompter.confirm = true

	path := writeImport(t, `[{"date":"2024-01-01","mood":9},{"date":"2024-01-02","mood":3}]`)
	if err := (&ImportCmd{File: path}).Run(ctx); err != nil {
		t.Fatalf("import command failed: %v", err)
	}

	if len(prompter.asked) != 1 || prompter.asked[0] != "1 existing date found. Overwrite them?" {
		t.Errorf("unexpected prompt: %v", prompter.asked)
	}

	entries := storedEntries(ctx)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	first := entries[0]
	if first.Date != "2024-01-01" || first.Mood != 9 || first.Notes != "" {
		t.Errorf("conflict not overwritten: %+v", first)
	}
	if first.CreatedAt != createdOld || first.UpdatedAt != nowStamp {
		t.Errorf("overwrite timestamps: %s / %s", first.CreatedAt, first.UpdatedAt)
	}
	if entries[1].Date != "2024-01-02" {
		t.Errorf("new date not appended: %+v", entries[1])
	}
	if !strings.Contains(out.String(), "✓ Imported 2 entries (overwrote conflicts).") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestImportCmd_DeclineKeepsExisting(t *testing.T) {
	ctx, out, prompter := setupTestContext(t)
	seedEntries(ctx, testEntry("2024-01-01", 5, "original"))
	prompter.confirm = false

	path := writeImport(t, `{"entries":[{"date":"2024-01-01","mood":9},{"date":"2024-01-02"}]}`)
	if err := (&ImportCmd{File: path}).Run(ctx); err != nil {
		t.Fatalf("import command failed: %v", err)
	}

	entries := storedEntries(ctx)
	if len(entries) != 2 || entries[0].Mood != 5 || entries[0].Notes != "original" {
		t.Errorf("existing entry changed: %+v", entries)
	}
	if !strings.Contains(out.String(), "✓ Imported 2 entries.") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestImportCmd_FlagsSkipPrompt(t *testing.T) {
	tests := []struct {
		name     string
		cmd      ImportCmd
		wantMood int
	}{
		{name: "overwrite", cmd: ImportCmd{Overwrite: true}, wantMood: 9},
		{name: "keep", cmd: ImportCmd{Keep: true}, wantMood: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _, prompter := setupTestContext(t)
			seedEntries(ctx, testEntry("2024-01-01", 5, ""))

			cmd := tt.cmd
			cmd.File = writeImport(t, `[{"date":"2024-01-01","mood":9}]`)
			if err := cmd.Run(ctx); err != nil {
				t.Fatalf("import command failed: %v", err)
			}
			if len(prompter.asked) != 0 {
				t.Errorf("flag given, prompt should be skipped: %v", prompter.asked)
			}
			if got := storedEntries(ctx)[0].Mood; got != tt.wantMood {
				t.Errorf("mood = %d, want %d", got, tt.wantMood)
			}
		})
	}
}

func TestImportCmd_NoConflictsNoPrompt(t *testing.T) {
	ctx, out, prompter := setupTestContext(t)

	path := writeImport(t, `[{"date":"2024-01-02","mood":"7","tags":["x",0,""]}]`)
	if err := (&ImportCmd{File: path}).Run(ctx); err != nil {
		t.Fatalf("import command failed: %v", err)
	}
	if len(prompter.asked) != 0 {
		t.Errorf("no conflicts, prompt should be skipped: %v", prompter.asked)
	}
	e := storedEntries(ctx)[0]
	if e.Mood != 7 || len(e.Tags) != 1 || e.ID != "entry-2024-01-02" {
		t.Errorf("import not sanitized: %+v", e)
	}
	if !strings.Contains(out.String(), "✓ Imported 1 entry.") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestImportCmd_RejectsBadPayload(t *testing.T) {
	tests := []struct {
		content string
		want    error
	}{
		{content: `not json`, want: journal.ErrInvalidJSON},
		{content: `{"items":[]}`, want: journal.ErrUnsupportedShape},
		{content: `42`, want: journal.ErrUnsupportedShape},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			ctx, _, _ := setupTestContext(t)
			seedEntries(ctx, testEntry("2024-01-01", 5, ""))

			err := (&ImportCmd{File: writeImport(t, tt.content)}).Run(ctx)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if len(storedEntries(ctx)) != 1 {
				t.Error("failed import must not change the journal")
			}
		})
	}
}

func TestImportCmd_MissingFile(t *testing.T) {
	ctx, _, _ := setupTestContext(t)
	if err := (&ImportCmd{File: filepath.Join(t.TempDir(), "nope.json")}).Run(ctx); err == nil {
		t.Error("expected error for missing file")
	}
}
