// Package storage persists the journal in a device-local key/value slot.
//
// A Provider owns one backend (a diskv directory by default, or a SQLite
// database). Each key holds one JSON document; the journal itself lives in a
// single array document under constants.EntriesKey.
package storage

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound is returned by Get when the key has never been written
	ErrNotFound = errors.New("key not found")
	// ErrNotInitialized is returned by Load before `daylog init` has run
	ErrNotInitialized = errors.New("storage not initialized, run 'daylog init' first")
)

// Slot is a key/value store holding one JSON document per key.
type Slot interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Provider is a Slot with a lifecycle.
//
// Providers are not safe for concurrent use by multiple goroutines, and
// running several daylog processes against the same path at once is not
// supported.
type Provider interface {
	Slot

	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Utils
	GetConfigPath() string
}

// Open returns the backend for path without touching the filesystem. Paths
// ending in .db or .sqlite select SQLite; anything else is a diskv directory.
func Open(path string) Provider {
	if IsSQLitePath(path) {
		return NewSQLiteStore(path)
	}
	return NewDiskvStore(path)
}

// IsSQLitePath reports whether path names a SQLite database file.
func IsSQLitePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		return true
	}
	return false
}
