// Package validation checks a stored journal for problems the lenient
// loader would otherwise hide: malformed or repeated dates, values outside
// their domain, and elements that are not entries at all.
package validation

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictUnreadableEntry ConflictType = "unreadable_entry"
	ConflictInvalidDate     ConflictType = "invalid_date"
	ConflictFutureDate      ConflictType = "future_date"
	ConflictDuplicateDate   ConflictType = "duplicate_date"
	ConflictDuplicateID     ConflictType = "duplicate_id"
	ConflictOutOfRange      ConflictType = "out_of_range"
	ConflictMissingField    ConflictType = "missing_field"
)

// Conflict is one detected problem
type Conflict struct {
	Type        ConflictType
	Description string
	Date        string // YYYY-MM-DD format (if applicable)
	Index       int    // position in the stored document
	Fixable     bool   // whether Fix resolves it
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// FixAction represents an action taken during auto-fix
type FixAction struct {
	Action         string
	SourceConflict Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Count returns the number of conflicts of type t.
func (vr *ValidationResult) Count(t ConflictType) int {
	n := 0
	for _, c := range vr.Conflicts {
		if c.Type == t {
			n++
		}
	}
	return n
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No problems detected."
	}

	var b strings.Builder
	b.WriteString("Problems detected:\n")
	for _, c := range vr.Conflicts {
		marker := ""
		if c.Fixable {
			marker = " (fixable)"
		}
		fmt.Fprintf(&b, "- %s%s\n", c.Description, marker)
	}
	return b.String()
}

// Validator checks stored journals
type Validator struct {
	now func() time.Time
}

// New creates a Validator. now decides which dates count as future; nil
// uses the wall clock.
func New(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{now: now}
}

// ValidateRaw checks the undecoded elements of a stored journal.
func (v *Validator) ValidateRaw(raws []any) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	entries := make([]models.Entry, 0, len(raws))
	indexes := make([]int, 0, len(raws))
	for i, raw := range raws {
		entry, problems := decodeStrict(raw)
		for _, p := range problems {
			p.Index = i
			result.Conflicts = append(result.Conflicts, p)
		}
		if entry != nil {
			entries = append(entries, *entry)
			indexes = append(indexes, i)
		}
	}

	for _, c := range v.validate(entries).Conflicts {
		c.Index = indexes[c.Index]
		result.Conflicts = append(result.Conflicts, c)
	}
	return result
}

// ValidateEntries checks typed entries.
func (v *Validator) ValidateEntries(entries []models.Entry) ValidationResult {
	return v.validate(entries)
}

func (v *Validator) validate(entries []models.Entry) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	today := v.now().Format(constants.DateFormat)

	datesSeen := make(map[string]int)
	idsSeen := make(map[string]int)
	for i, e := range entries {
		if !IsValidDate(e.Date) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Entry %d has invalid date: %q", i+1, e.Date),
				Date:        e.Date,
				Index:       i,
			})
		} else if e.Date > today {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictFutureDate,
				Description: fmt.Sprintf("Entry for %s is dated in the future", e.Date),
				Date:        e.Date,
				Index:       i,
			})
		}

		if first, ok := datesSeen[e.Date]; ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateDate,
				Description: fmt.Sprintf("Date %s is recorded more than once (entries %d and %d)", e.Date, first+1, i+1),
				Date:        e.Date,
				Index:       i,
				Fixable:     true,
			})
		} else {
			datesSeen[e.Date] = i
		}

		if e.ID != "" {
			if first, ok := idsSeen[e.ID]; ok && entries[first].Date != e.Date {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictDuplicateID,
					Description: fmt.Sprintf("ID %q is shared by %s and %s", e.ID, entries[first].Date, e.Date),
					Date:        e.Date,
					Index:       i,
				})
			} else if !ok {
				idsSeen[e.ID] = i
			}
		}

		if !e.InDomain() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictOutOfRange,
				Description: fmt.Sprintf("Entry for %s has values out of range (mood %d, pain %d, fatigue %d, nausea %d)",
					e.Date, e.Mood, e.Pain, e.Fatigue, e.Nausea),
				Date:    e.Date,
				Index:   i,
				Fixable: true,
			})
		}
	}

	return result
}

// Fix rewrites a stored journal into its canonical form: every element
// sanitized and each date kept once, the later duplicate winning. Problems
// that sanitizing cannot repair, like malformed dates, are left in place.
func (v *Validator) Fix(j *journal.Journal, raws []any) ([]models.Entry, []FixAction) {
	before := v.ValidateRaw(raws)
	fixed := j.Merge(j.SanitizeAll(raws), nil, false).Merged

	var actions []FixAction
	for _, c := range before.Conflicts {
		if !c.Fixable {
			continue
		}
		var action string
		switch c.Type {
		case ConflictDuplicateDate:
			action = fmt.Sprintf("Kept the last entry for %s", c.Date)
		case ConflictOutOfRange:
			action = fmt.Sprintf("Clamped values for %s", c.Date)
		case ConflictMissingField:
			action = fmt.Sprintf("Filled defaults for entry %d", c.Index+1)
		case ConflictUnreadableEntry:
			action = fmt.Sprintf("Replaced entry %d with defaults", c.Index+1)
		}
		actions = append(actions, FixAction{Action: action, SourceConflict: c})
	}
	return fixed, actions
}

// IsValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsValidDate(s string) bool {
	if len(s) != len(constants.DateFormat) {
		return false
	}
	_, err := time.Parse(constants.DateFormat, s)
	return err == nil
}

// decodeStrict reads raw as an Entry without coercion. It returns nil when
// raw is not an object or its fields have the wrong types.
func decodeStrict(raw any) (*models.Entry, []Conflict) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, []Conflict{{
			Type:        ConflictUnreadableEntry,
			Description: fmt.Sprintf("Element is not an entry object: %v", raw),
			Fixable:     true,
		}}
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return nil, []Conflict{{Type: ConflictUnreadableEntry, Description: err.Error(), Fixable: true}}
	}
	var e models.Entry
	if err := json.Unmarshal(data, &e); err != nil {
		date, _ := obj["date"].(string)
		return nil, []Conflict{{
			Type:        ConflictUnreadableEntry,
			Description: fmt.Sprintf("Entry %q has mistyped fields: %v", date, err),
			Date:        date,
			Fixable:     true,
		}}
	}

	var problems []Conflict
	for _, key := range []string{"id", "date", "mood", "pain", "fatigue", "nausea", "createdAt", "updatedAt"} {
		if _, ok := obj[key]; !ok {
			problems = append(problems, Conflict{
				Type:        ConflictMissingField,
				Description: fmt.Sprintf("Entry %q is missing %s", e.Date, key),
				Date:        e.Date,
				Fixable:     key != "date",
			})
		}
	}
	return &e, problems
}
