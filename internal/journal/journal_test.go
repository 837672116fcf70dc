package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/daylog/internal/models"
)

const (
	fixedNow   = "2024-03-15T09:30:00.000Z"
	laterNow   = "2024-03-16T18:00:00.000Z"
	createdOld = "2024-01-01T08:00:00.000Z"
)

// setupTestJournal returns a Journal whose clock reads fixedNow until advance
// is called, after which it reads laterNow.
func setupTestJournal(t *testing.T) (*Journal, func()) {
	t.Helper()
	now := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	j := New(WithClock(func() time.Time { return now }))
	advance := func() { now = time.Date(2024, 3, 16, 18, 0, 0, 0, time.UTC) }
	return j, advance
}

func TestTimestampAndToday(t *testing.T) {
	j, _ := setupTestJournal(t)
	assert.Equal(t, fixedNow, j.Timestamp())
	assert.Equal(t, "2024-03-15", j.Today())
}

func TestUpsertInsertsWithDefaults(t *testing.T) {
	j, _ := setupTestJournal(t)

	got := j.Upsert(nil, models.Entry{Date: "2024-03-15", Mood: 6})

	require.Len(t, got, 1)
	assert.Equal(t, "entry-2024-03-15", got[0].ID)
	assert.Equal(t, fixedNow, got[0].CreatedAt)
	assert.Equal(t, fixedNow, got[0].UpdatedAt)
	assert.Equal(t, 6, got[0].Mood)
}

func TestUpsertKeepsSuppliedIdentityOnInsert(t *testing.T) {
	j, _ := setupTestJournal(t)

	got := j.Upsert(nil, models.Entry{ID: "custom", Date: "2024-03-15", CreatedAt: createdOld})

	require.Len(t, got, 1)
	assert.Equal(t, "custom", got[0].ID)
	assert.Equal(t, createdOld, got[0].CreatedAt)
	assert.Equal(t, fixedNow, got[0].UpdatedAt)
}

func TestUpsertPreservesIdentityOnUpdate(t *testing.T) {
	j, advance := setupTestJournal(t)

	existing := []models.Entry{
		{ID: "first", Date: "2024-03-14", Mood: 4, CreatedAt: createdOld, UpdatedAt: createdOld},
		{ID: "second", Date: "2024-03-15", Mood: 3, CreatedAt: createdOld, UpdatedAt: createdOld},
	}
	advance()

	got := j.Upsert(existing, models.Entry{
		ID:        "ignored",
		Date:      "2024-03-15",
		Mood:      9,
		Pain:      2,
		Notes:     "better",
		Tags:      []string{"walk"},
		CreatedAt: fixedNow,
	})

	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].ID)
	updated := got[1]
	assert.Equal(t, "second", updated.ID)
	assert.Equal(t, createdOld, updated.CreatedAt)
	assert.Equal(t, laterNow, updated.UpdatedAt)
	assert.Equal(t, 9, updated.Mood)
	assert.Equal(t, 2, updated.Pain)
	assert.Equal(t, "better", updated.Notes)
	assert.Equal(t, []string{"walk"}, updated.Tags)

	// input untouched
	assert.Equal(t, 3, existing[1].Mood)
	assert.Equal(t, createdOld, existing[1].UpdatedAt)
}

func TestUpsertKeepsDatesUnique(t *testing.T) {
	j, _ := setupTestJournal(t)

	var entries []models.Entry
	for _, date := range []string{"2024-01-01", "2024-01-02", "2024-01-01", "2024-01-03", "2024-01-02"} {
		entries = j.Upsert(entries, models.Entry{Date: date})
	}

	require.Len(t, entries, 3)
	seen := map[string]bool{}
	for _, e := range entries {
		assert.False(t, seen[e.Date], "duplicate date %s", e.Date)
		seen[e.Date] = true
	}
}

func TestUpsertDoesNotShareTags(t *testing.T) {
	j, _ := setupTestJournal(t)

	tags := []string{"a"}
	got := j.Upsert(nil, models.Entry{Date: "2024-01-01", Tags: tags})
	tags[0] = "changed"

	assert.Equal(t, []string{"a"}, got[0].Tags)
}

func TestDelete(t *testing.T) {
	entries := []models.Entry{
		{ID: "entry-2024-01-01", Date: "2024-01-01"},
		{ID: "entry-2024-01-02", Date: "2024-01-02"},
	}

	got := Delete(entries, "entry-2024-01-01")
	require.Len(t, got, 1)
	assert.Equal(t, "2024-01-02", got[0].Date)
	assert.Len(t, entries, 2)

	unchanged := Delete(entries, "missing")
	assert.Equal(t, entries, unchanged)
}

func TestFind(t *testing.T) {
	entries := []models.Entry{
		{ID: "a", Date: "2024-01-01"},
		{ID: "b", Date: "2024-01-02"},
	}

	e, ok := Find(entries, "2024-01-02")
	require.True(t, ok)
	assert.Equal(t, "b", e.ID)

	_, ok = Find(entries, "2024-02-02")
	assert.False(t, ok)

	e, ok = FindByID(entries, "a")
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", e.Date)
}

func TestSorted(t *testing.T) {
	entries := []models.Entry{
		{ID: "b", Date: "2024-01-02"},
		{ID: "c", Date: "2024-01-03"},
		{ID: "a", Date: "2024-01-01"},
	}

	asc := Sorted(entries, false)
	desc := Sorted(entries, true)

	assert.Equal(t, []string{"a", "b", "c"}, ids(asc))
	assert.Equal(t, []string{"c", "b", "a"}, ids(desc))
	assert.Equal(t, []string{"b", "c", "a"}, ids(entries))
}

func TestFilter(t *testing.T) {
	entries := []models.Entry{
		{ID: "a", Date: "2024-01-01", Notes: "Migraine after lunch"},
		{ID: "b", Date: "2024-01-02", Tags: []string{"Travel", "sleep"}},
		{ID: "c", Date: "2024-01-03", Notes: "fine"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"notes match ignores case", "migraine", []string{"a"}},
		{"tag match", "TRAVEL", []string{"b"}},
		{"no match", "nausea", nil},
		{"empty query keeps all", "  ", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(entries, tt.query)))
		})
	}
}

func ids(entries []models.Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}
