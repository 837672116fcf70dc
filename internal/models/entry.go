package models

import "slices"

// Field domains for the numeric entry fields
const (
	MoodMin     = 1
	MoodMax     = 10
	MoodDefault = 5

	SymptomMin     = 0
	SymptomMax     = 10
	SymptomDefault = 0
)

// CanonicalIDPrefix is prepended to the date to form an entry's canonical id
const CanonicalIDPrefix = "entry-"

// Entry is one day's symptom and mood record. Date is the natural key: a valid
// collection holds at most one Entry per date.
type Entry struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"` // YYYY-MM-DD format
	Mood      int      `json:"mood"`
	Pain      int      `json:"pain"`
	Fatigue   int      `json:"fatigue"`
	Nausea    int      `json:"nausea"`
	Notes     string   `json:"notes,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// CanonicalID returns the id an entry for date receives when none is supplied.
func CanonicalID(date string) string {
	return CanonicalIDPrefix + date
}

// Clone returns a copy of e that does not share its tag slice.
func (e Entry) Clone() Entry {
	e.Tags = slices.Clone(e.Tags)
	return e
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampMood limits v to the mood domain.
func ClampMood(v int) int {
	return Clamp(v, MoodMin, MoodMax)
}

// ClampSymptom limits v to the pain/fatigue/nausea domain.
func ClampSymptom(v int) int {
	return Clamp(v, SymptomMin, SymptomMax)
}

// InDomain reports whether every numeric field of e is within its domain.
func (e Entry) InDomain() bool {
	return e.Mood == ClampMood(e.Mood) &&
		e.Pain == ClampSymptom(e.Pain) &&
		e.Fatigue == ClampSymptom(e.Fatigue) &&
		e.Nausea == ClampSymptom(e.Nausea)
}
