// Package journal holds the entry data store: sanitization of untrusted
// input, date-keyed upsert and delete, CSV/JSON serialization, the
// conflict-aware merge used by imports, and the appointment question list.
//
// Every operation works on an immutable snapshot: the input collection is
// never modified and a new slice is returned. A Journal only carries the clock
// used to stamp createdAt/updatedAt and the question id generator, so a
// zero-configuration New() is enough for production use and tests inject a
// fixed clock with WithClock.
package journal

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/daylog/internal/constants"
)

// Journal applies store operations using its clock for timestamps.
type Journal struct {
	now   func() time.Time
	newID func() string
}

// Option configures a Journal.
type Option func(*Journal)

// WithClock replaces the wall clock used for createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) {
		if now != nil {
			j.now = now
		}
	}
}

// WithIDs replaces the generator for question ids.
func WithIDs(newID func() string) Option {
	return func(j *Journal) {
		if newID != nil {
			j.newID = newID
		}
	}
}

// New creates a Journal using the system clock unless overridden.
func New(opts ...Option) *Journal {
	j := &Journal{now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Now returns the current time according to the journal clock.
func (j *Journal) Now() time.Time {
	return j.now()
}

// Timestamp returns the current time in the entry timestamp format.
func (j *Journal) Timestamp() string {
	return j.now().UTC().Format(constants.TimestampFormat)
}

// Today returns the current local date in YYYY-MM-DD format.
func (j *Journal) Today() string {
	return j.now().Format(constants.DateFormat)
}
