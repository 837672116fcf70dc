package journal

import (
	"slices"
	"strings"

	"github.com/julianstephens/daylog/internal/models"
)

// Upsert inserts candidate or updates the entry sharing its date.
//
// An update takes every field from candidate but keeps the existing id and
// createdAt, refreshes updatedAt, and stays at the existing position. An
// insert fills in the canonical id and createdAt when candidate has none and
// is appended. entries is not modified.
func (j *Journal) Upsert(entries []models.Entry, candidate models.Entry) []models.Entry {
	now := j.Timestamp()
	next := slices.Clone(entries)

	if idx := indexByDate(entries, candidate.Date); idx >= 0 {
		existing := entries[idx]
		updated := candidate.Clone()
		updated.ID = existing.ID
		updated.CreatedAt = existing.CreatedAt
		updated.UpdatedAt = now
		next[idx] = updated
		return next
	}

	created := candidate.Clone()
	if created.ID == "" {
		created.ID = models.CanonicalID(created.Date)
	}
	if created.CreatedAt == "" {
		created.CreatedAt = now
	}
	created.UpdatedAt = now
	return append(next, created)
}

// Delete returns entries without the entry whose id matches. Unknown ids are
// a no-op.
func Delete(entries []models.Entry, id string) []models.Entry {
	return slices.DeleteFunc(slices.Clone(entries), func(e models.Entry) bool {
		return e.ID == id
	})
}

// Find returns the entry recorded for date.
func Find(entries []models.Entry, date string) (models.Entry, bool) {
	if idx := indexByDate(entries, date); idx >= 0 {
		return entries[idx], true
	}
	return models.Entry{}, false
}

// FindByID returns the entry with the given id.
func FindByID(entries []models.Entry, id string) (models.Entry, bool) {
	idx := slices.IndexFunc(entries, func(e models.Entry) bool { return e.ID == id })
	if idx < 0 {
		return models.Entry{}, false
	}
	return entries[idx], true
}

// Sorted returns a copy of entries ordered by date, newest first when desc.
// Entries sharing a date keep their relative order.
func Sorted(entries []models.Entry, desc bool) []models.Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b models.Entry) int {
		if desc {
			return strings.Compare(b.Date, a.Date)
		}
		return strings.Compare(a.Date, b.Date)
	})
	return sorted
}

// Filter keeps entries whose notes or any tag contain query, ignoring case.
// An empty query keeps everything.
func Filter(entries []models.Entry, query string) []models.Entry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(entries)
	}

	var out []models.Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Notes), q) {
			out = append(out, e)
			continue
		}
		if slices.ContainsFunc(e.Tags, func(t string) bool {
			return strings.Contains(strings.ToLower(t), q)
		}) {
			out = append(out, e)
		}
	}
	return out
}

func indexByDate(entries []models.Entry, date string) int {
	return slices.IndexFunc(entries, func(e models.Entry) bool { return e.Date == date })
}
