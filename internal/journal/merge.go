package journal

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/daylog/internal/models"
)

var (
	// ErrInvalidJSON is returned when an import payload is not valid JSON
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrUnsupportedShape is returned when an import payload is neither an array nor an object with an entries array
	ErrUnsupportedShape = errors.New("expected array or { entries: [...] }")
)

// MergeResult is the outcome of merging an import into a collection.
type MergeResult struct {
	Merged    []models.Entry
	Conflicts []string // dates present on both sides, once each, in first-seen order
}

// Merge combines existing with the imported raw values, keyed by date.
//
// Each imported value is sanitized first. A new date is inserted as-is. A date
// that is already present is reported in Conflicts; with overwrite the stored
// entry takes the imported mood, symptoms, notes and tags (and createdAt when
// the import carries one), gets the canonical id, and a fresh updatedAt.
// Without overwrite it is left untouched.
//
// Merge has no side effects, so callers run it once with overwrite=false to
// size the conflicts, ask the user, and run it again with the answer.
// Merged lists existing dates in their original order, then new dates in
// import order.
func (j *Journal) Merge(existing []models.Entry, imported []any, overwrite bool) MergeResult {
	order := make([]string, 0, len(existing)+len(imported))
	byDate := make(map[string]models.Entry, len(existing)+len(imported))
	put := func(e models.Entry) {
		if _, ok := byDate[e.Date]; !ok {
			order = append(order, e.Date)
		}
		byDate[e.Date] = e
	}

	for _, e := range existing {
		put(e.Clone())
	}

	conflicts := []string{}
	reported := make(map[string]bool)
	for _, raw := range imported {
		d := j.decode(raw)
		date := d.entry.Date

		current, ok := byDate[date]
		if !ok {
			put(d.entry)
			continue
		}

		if !reported[date] {
			reported[date] = true
			conflicts = append(conflicts, date)
		}
		if overwrite {
			byDate[date] = j.overlay(current, d)
		}
	}

	merged := make([]models.Entry, 0, len(order))
	for _, date := range order {
		merged = append(merged, byDate[date])
	}
	return MergeResult{Merged: merged, Conflicts: conflicts}
}

func (j *Journal) overlay(current models.Entry, d decoded) models.Entry {
	next := current
	next.Mood = d.entry.Mood
	next.Pain = d.entry.Pain
	next.Fatigue = d.entry.Fatigue
	next.Nausea = d.entry.Nausea
	next.Notes = d.entry.Notes
	next.Tags = d.entry.Tags
	if d.has(fieldCreatedAt) {
		next.CreatedAt = d.entry.CreatedAt
	}
	next.ID = models.CanonicalID(d.entry.Date)
	next.UpdatedAt = j.Timestamp()
	return next
}

// ParseImport decodes an import payload: either a bare JSON array of
// entry-like objects or an object whose "entries" field is such an array.
func ParseImport(data []byte) ([]any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	switch v := doc.(type) {
	case []any:
		return v, nil
	case map[string]any:
		if list, ok := v["entries"].([]any); ok {
			return list, nil
		}
	}
	return nil, ErrUnsupportedShape
}

// ToRaw converts typed entries into raw values accepted by Merge.
func ToRaw(entries []models.Entry) []any {
	raws := make([]any, len(entries))
	for i, e := range entries {
		raws[i] = e
	}
	return raws
}
