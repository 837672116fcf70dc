package storage

import (
	"encoding/json"
	"errors"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/logger"
	"github.com/julianstephens/daylog/internal/models"
)

// EntryStore reads and writes the journal document. It never reports
// failures: they are logged, Load degrades to an empty journal and Save
// leaves the previous document in place.
type EntryStore struct {
	slot    Slot
	journal *journal.Journal
}

// NewEntryStore wraps slot. j sanitizes entries in LoadEntries.
func NewEntryStore(slot Slot, j *journal.Journal) *EntryStore {
	if j == nil {
		j = journal.New()
	}
	return &EntryStore{slot: slot, journal: j}
}

// Load returns the stored elements undecoded, or an empty slice when the
// document is missing, unreadable or not an array.
func (s *EntryStore) Load() []any {
	data, err := s.slot.Get(constants.EntriesKey)
	if errors.Is(err, ErrNotFound) {
		return []any{}
	}
	if err != nil {
		logger.Warn("Failed to read journal", "key", constants.EntriesKey, "error", err)
		return []any{}
	}

	var raws []any
	if err := json.Unmarshal(data, &raws); err != nil {
		logger.Warn("Stored journal is not a JSON array", "key", constants.EntriesKey, "error", err)
		return []any{}
	}
	if raws == nil {
		return []any{}
	}
	return raws
}

// LoadEntries returns the stored journal sanitized.
func (s *EntryStore) LoadEntries() []models.Entry {
	return s.journal.SanitizeAll(s.Load())
}

// Save replaces the stored journal with entries.
func (s *EntryStore) Save(entries []models.Entry) {
	data, err := journal.ToJSON(entries)
	if err != nil {
		logger.Warn("Failed to encode journal", "error", err)
		return
	}
	if err := s.slot.Set(constants.EntriesKey, data); err != nil {
		logger.Warn("Failed to write journal", "key", constants.EntriesKey, "error", err)
		return
	}
	logger.Debug("Saved journal", "entries", len(entries))
}
