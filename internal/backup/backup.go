// Package backup writes rotating JSON snapshots of the journal.
package backup

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/logger"
	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/storage"
)

const (
	minuteLayout = "20060102-1504"
	secondLayout = "20060102-150405"
)

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Path      string
	Timestamp time.Time
	Seq       int // disambiguates snapshots taken within the same second
	Size      int64
}

// Manager handles backup operations
type Manager struct {
	slot      storage.Slot
	entries   *storage.EntryStore
	journal   *journal.Journal
	backupDir string
}

// DefaultDir returns the backup directory that sits next to the store at configPath.
func DefaultDir(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), constants.BackupDirName)
}

// NewManager creates a backup manager snapshotting the journal held in slot.
func NewManager(slot storage.Slot, backupDir string, j *journal.Journal) *Manager {
	if j == nil {
		j = journal.New()
	}
	return &Manager{
		slot:      slot,
		entries:   storage.NewEntryStore(slot, j),
		journal:   j,
		backupDir: backupDir,
	}
}

// GetBackupDir returns the backup directory path
func (m *Manager) GetBackupDir() string {
	return m.backupDir
}

// CreateBackup snapshots the journal, prunes old snapshots and records the
// backup time.
func (m *Manager) CreateBackup() (string, error) {
	path, err := m.createBackup(false)
	if err != nil {
		return "", err
	}
	if err := storage.MarkBackup(m.slot, m.journal.Now()); err != nil {
		logger.Warn("Backup written but marker not saved", "path", path, "error", err)
	}
	return path, nil
}

// createBackup writes a snapshot; skipRotation keeps restore from pruning
// the snapshot it is about to read.
func (m *Manager) createBackup(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	data, err := journal.ToJSON(m.entries.LoadEntries())
	if err != nil {
		return "", err
	}

	backupPath, err := m.nextPath()
	if err != nil {
		return "", err
	}
	if err := writeFileAtomic(backupPath, data); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	logger.Info("Created backup", "path", backupPath, "bytes", len(data))

	if !skipRotation {
		if err := m.rotateBackups(); err != nil {
			logger.Warn("Failed to rotate old backups", "error", err)
		}
	}
	return backupPath, nil
}

// nextPath picks daylog-YYYYMMDD-HHMM.json, falling back to seconds and then
// a counter when that name is taken.
func (m *Manager) nextPath() (string, error) {
	now := m.journal.Now()
	candidate := func(stamp string) string {
		return filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+constants.BackupFileSuffix)
	}

	path := candidate(now.Format(minuteLayout))
	if !exists(path) {
		return path, nil
	}

	stamp := now.Format(secondLayout)
	path = candidate(stamp)
	for counter := 1; exists(path); counter++ {
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
		path = candidate(fmt.Sprintf("%s-%d", stamp, counter))
	}
	return path, nil
}

// ListBackups returns all snapshots, newest first.
func (m *Manager) ListBackups() ([]BackupInfo, error) {
	dirEntries, err := os.ReadDir(m.backupDir)
	if errors.Is(err, fs.ErrNotExist) {
		return []BackupInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := []BackupInfo{}
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		timestamp, seq, ok := parseName(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, BackupInfo{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: timestamp,
			Seq:       seq,
			Size:      info.Size(),
		})
	}

	slices.SortFunc(backups, func(a, b BackupInfo) int {
		return cmp.Or(
			b.Timestamp.Compare(a.Timestamp),
			cmp.Compare(b.Seq, a.Seq),
			strings.Compare(b.Path, a.Path),
		)
	})
	return backups, nil
}

// parseName extracts the timestamp and counter from a backup file name.
func parseName(name string) (time.Time, int, bool) {
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, constants.BackupFileSuffix) {
		return time.Time{}, 0, false
	}
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, constants.BackupFilePrefix), constants.BackupFileSuffix)

	seq := 0
	if parts := strings.Split(stamp, "-"); len(parts) == 3 {
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			return time.Time{}, 0, false
		}
		seq = n
		stamp = parts[0] + "-" + parts[1]
	}

	for _, layout := range []string{minuteLayout, secondLayout} {
		if ts, err := time.ParseInLocation(layout, stamp, time.Local); err == nil {
			return ts, seq, true
		}
	}
	return time.Time{}, 0, false
}

// rotateBackups removes old backups beyond the retention limit
func (m *Manager) rotateBackups() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}

	for _, old := range backups[min(len(backups), constants.MaxBackups):] {
		if err := os.Remove(old.Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", old.Path, err)
		}
		logger.Debug("Removed old backup", "path", old.Path)
	}
	return nil
}

// Verify reads a snapshot and returns the entries it holds.
func (m *Manager) Verify(backupPath string) ([]models.Entry, error) {
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}
	raws, err := journal.ParseImport(data)
	if err != nil {
		return nil, fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}
	// Seeding a merge collapses repeated dates the same way a load does.
	return m.journal.Merge(m.journal.SanitizeAll(raws), nil, false).Merged, nil
}

// RestoreBackup replaces the journal with the snapshot at backupPath. The
// current journal is snapshotted first when it has entries; that snapshot's
// path is returned (empty when none was taken).
func (m *Manager) RestoreBackup(backupPath string) (string, error) {
	if !exists(backupPath) {
		return "", fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	restored, err := m.Verify(backupPath)
	if err != nil {
		return "", err
	}

	var preRestore string
	if len(m.entries.LoadEntries()) > 0 {
		preRestore, err = m.createBackup(true)
		if err != nil {
			return "", fmt.Errorf("failed to backup current journal before restore: %w", err)
		}
	}

	data, err := journal.ToJSON(restored)
	if err != nil {
		return preRestore, err
	}
	if err := m.slot.Set(constants.EntriesKey, data); err != nil {
		return preRestore, fmt.Errorf("failed to restore journal: %w", err)
	}
	logger.Info("Restored backup", "path", backupPath, "entries", len(restored))
	return preRestore, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// writeFileAtomic writes through a temporary file and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-"+filepath.Base(path))
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
