package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/daylog/internal/models"
)

func TestMergeDryRunThenCommit(t *testing.T) {
	j, advance := setupTestJournal(t)

	existing := []models.Entry{{
		ID: "entry-2024-12-30", Date: "2024-12-30",
		Mood: 5, Pain: 1, Fatigue: 2, Nausea: 3,
		CreatedAt: createdOld, UpdatedAt: createdOld,
	}}
	imported := []any{map[string]any{"date": "2024-12-30", "mood": 8.0, "pain": 0.0, "fatigue": 0.0, "nausea": 0.0}}

	dry := j.Merge(existing, imported, false)
	assert.Equal(t, []string{"2024-12-30"}, dry.Conflicts)
	require.Len(t, dry.Merged, 1)
	assert.Equal(t, 5, dry.Merged[0].Mood)
	assert.Equal(t, existing[0], dry.Merged[0])

	advance()
	commit := j.Merge(existing, imported, true)
	assert.Equal(t, []string{"2024-12-30"}, commit.Conflicts)
	require.Len(t, commit.Merged, 1)
	got := commit.Merged[0]
	assert.Equal(t, 8, got.Mood)
	assert.Equal(t, 0, got.Pain)
	assert.Equal(t, 0, got.Fatigue)
	assert.Equal(t, 0, got.Nausea)
	assert.Equal(t, createdOld, got.CreatedAt)
	assert.Equal(t, laterNow, got.UpdatedAt)
	assert.Equal(t, "entry-2024-12-30", got.ID)

	assert.Equal(t, 5, existing[0].Mood)
}

func TestMergeInsertsNewDatesInImportOrder(t *testing.T) {
	j, _ := setupTestJournal(t)

	existing := []models.Entry{
		{ID: "b", Date: "2024-01-02", Mood: 5},
		{ID: "a", Date: "2024-01-01", Mood: 5},
	}
	imported := []any{
		map[string]any{"date": "2024-01-05", "mood": 2.0},
		map[string]any{"date": "2024-01-03", "mood": 3.0, "notes": "new"},
	}

	res := j.Merge(existing, imported, false)

	assert.Empty(t, res.Conflicts)
	assert.NotNil(t, res.Conflicts)
	require.Len(t, res.Merged, 4)
	assert.Equal(t, []string{"2024-01-02", "2024-01-01", "2024-01-05", "2024-01-03"}, dates(res.Merged))
	assert.Equal(t, "entry-2024-01-05", res.Merged[2].ID)
	assert.Equal(t, "new", res.Merged[3].Notes)
	assert.Equal(t, fixedNow, res.Merged[3].CreatedAt)
}

func TestMergeOverwriteTakesImportedCreatedAt(t *testing.T) {
	j, _ := setupTestJournal(t)

	existing := []models.Entry{{ID: "legacy", Date: "2024-01-01", Mood: 5, Notes: "old", Tags: []string{"t"}, CreatedAt: createdOld}}
	imported := []any{map[string]any{"date": "2024-01-01", "id": "other", "createdAt": laterNow}}

	res := j.Merge(existing, imported, true)

	require.Len(t, res.Merged, 1)
	got := res.Merged[0]
	assert.Equal(t, "entry-2024-01-01", got.ID)
	assert.Equal(t, laterNow, got.CreatedAt)
	assert.Equal(t, fixedNow, got.UpdatedAt)
	// omitted mutable fields take the sanitized defaults
	assert.Equal(t, 5, got.Mood)
	assert.Empty(t, got.Notes)
	assert.Nil(t, got.Tags)
}

func TestMergeRepeatedDateInImport(t *testing.T) {
	j, _ := setupTestJournal(t)

	imported := []any{
		map[string]any{"date": "2024-01-01", "mood": 2.0},
		map[string]any{"date": "2024-01-01", "mood": 9.0},
		map[string]any{"date": "2024-01-01", "mood": 7.0},
	}

	keep := j.Merge(nil, imported, false)
	assert.Equal(t, []string{"2024-01-01"}, keep.Conflicts)
	require.Len(t, keep.Merged, 1)
	assert.Equal(t, 2, keep.Merged[0].Mood)

	overwrite := j.Merge(nil, imported, true)
	require.Len(t, overwrite.Merged, 1)
	assert.Equal(t, 7, overwrite.Merged[0].Mood)
}

func TestMergeConflictsReportedOncePerDate(t *testing.T) {
	j, _ := setupTestJournal(t)

	existing := []models.Entry{
		{Date: "2024-01-01", Mood: 5},
		{Date: "2024-01-02", Mood: 5},
	}
	imported := []any{
		map[string]any{"date": "2024-01-02"},
		map[string]any{"date": "2024-01-01"},
		map[string]any{"date": "2024-01-02"},
	}

	res := j.Merge(existing, imported, false)
	assert.Equal(t, []string{"2024-01-02", "2024-01-01"}, res.Conflicts)
}

func TestMergeKeepsDatesUnique(t *testing.T) {
	j, _ := setupTestJournal(t)

	existing := []models.Entry{
		{ID: "first", Date: "2024-01-01", Mood: 2},
		{ID: "second", Date: "2024-01-01", Mood: 8},
	}

	res := j.Merge(existing, ToRaw([]models.Entry{{Date: "2024-01-02"}}), false)

	assert.Equal(t, []string{"2024-01-01", "2024-01-02"}, dates(res.Merged))
	assert.Equal(t, "second", res.Merged[0].ID)
}

func TestParseImport(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLen int
		wantErr error
	}{
		{"bare array", `[{"date":"2024-01-01"},{"date":"2024-01-02"}]`, 2, nil},
		{"entries object", `{"entries":[{"date":"2024-01-01"}],"version":1}`, 1, nil},
		{"empty array", `[]`, 0, nil},
		{"invalid json", `[{"date":`, 0, ErrInvalidJSON},
		{"object without entries", `{"items":[]}`, 0, ErrUnsupportedShape},
		{"entries not array", `{"entries":{}}`, 0, ErrUnsupportedShape},
		{"scalar", `"hello"`, 0, ErrUnsupportedShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseImport([]byte(tt.input))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func dates(entries []models.Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Date)
	}
	return out
}
