// Package trends summarizes the journal over a trailing window of days.
package trends

import (
	"fmt"
	"time"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/models"
)

// DefaultDays is the window used when none is given
const DefaultDays = 30

// FieldStats aggregates one numeric field
type FieldStats struct {
	Name string
	Mean float64
	Min  int
	Max  int
}

// Summary is the aggregate of the entries dated within [From, To].
type Summary struct {
	From    string
	To      string
	Count   int
	Fields  []FieldStats   // mood, pain, fatigue, nausea
	Entries []models.Entry // ascending by date
}

// Summarize aggregates entries dated in the days-long window ending on
// today (YYYY-MM-DD). Entries with malformed dates are skipped.
func Summarize(entries []models.Entry, today string, days int) (Summary, error) {
	if days < 1 {
		return Summary{}, fmt.Errorf("days must be at least 1, got %d", days)
	}
	end, err := time.Parse(constants.DateFormat, today)
	if err != nil {
		return Summary{}, fmt.Errorf("invalid date %q: %w", today, err)
	}

	s := Summary{
		From: end.AddDate(0, 0, -(days - 1)).Format(constants.DateFormat),
		To:   today,
	}

	for _, e := range journal.Sorted(entries, false) {
		if _, err := time.Parse(constants.DateFormat, e.Date); err != nil {
			continue
		}
		if e.Date < s.From || e.Date > s.To {
			continue
		}
		s.Entries = append(s.Entries, e)
	}
	s.Count = len(s.Entries)

	pick := []struct {
		name string
		get  func(models.Entry) int
	}{
		{"mood", func(e models.Entry) int { return e.Mood }},
		{"pain", func(e models.Entry) int { return e.Pain }},
		{"fatigue", func(e models.Entry) int { return e.Fatigue }},
		{"nausea", func(e models.Entry) int { return e.Nausea }},
	}
	for _, p := range pick {
		s.Fields = append(s.Fields, stats(p.name, s.Entries, p.get))
	}
	return s, nil
}

func stats(name string, entries []models.Entry, get func(models.Entry) int) FieldStats {
	fs := FieldStats{Name: name}
	if len(entries) == 0 {
		return fs
	}

	sum := 0
	fs.Min, fs.Max = get(entries[0]), get(entries[0])
	for _, e := range entries {
		v := get(e)
		sum += v
		fs.Min = min(fs.Min, v)
		fs.Max = max(fs.Max, v)
	}
	fs.Mean = float64(sum) / float64(len(entries))
	return fs
}
