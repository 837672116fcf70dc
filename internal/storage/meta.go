package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/logger"
	"github.com/julianstephens/daylog/internal/models"
)

// LoadSettings returns the stored settings, falling back to defaults for
// anything missing or malformed.
func LoadSettings(slot Slot) models.Settings {
	data, err := slot.Get(constants.SettingsKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("Failed to read settings", "error", err)
		}
		return models.DefaultSettings()
	}
	return models.DecodeSettings(data)
}

// SaveSettings persists settings.
func SaveSettings(slot Slot, settings models.Settings) error {
	models.ApplyDefaultSettings(&settings)
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := slot.Set(constants.SettingsKey, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// MarkBackup records at as the time of the last backup.
func MarkBackup(slot Slot, at time.Time) error {
	stamp := at.UTC().Format(constants.TimestampFormat)
	if err := slot.Set(constants.LastBackupKey, []byte(stamp)); err != nil {
		return fmt.Errorf("failed to record backup time: %w", err)
	}
	return nil
}

// LastBackupAt returns the recorded backup time. ok is false when no backup
// was recorded or the stored value cannot be parsed.
func LastBackupAt(slot Slot) (time.Time, bool) {
	data, err := slot.Get(constants.LastBackupKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("Failed to read backup marker", "error", err)
		}
		return time.Time{}, false
	}

	at, err := time.Parse(time.RFC3339, strings.Trim(strings.TrimSpace(string(data)), `"`))
	if err != nil {
		logger.Debug("Ignoring unparsable backup marker", "value", string(data))
		return time.Time{}, false
	}
	return at, true
}

// DaysSinceBackup returns whole days elapsed between the last backup and now.
func DaysSinceBackup(slot Slot, now time.Time) (int, bool) {
	at, ok := LastBackupAt(slot)
	if !ok {
		return 0, false
	}
	return int(now.Sub(at) / (24 * time.Hour)), true
}

// BackupDue reports whether the backup reminder applies: reminders are on,
// the journal is not empty and there is no backup within the reminder window.
func BackupDue(slot Slot, settings models.Settings, entryCount int, now time.Time) bool {
	if !settings.RemindersEnabled || entryCount == 0 {
		return false
	}
	days, ok := DaysSinceBackup(slot, now)
	if !ok {
		return true
	}
	return time.Duration(days)*24*time.Hour >= constants.BackupReminderAfter
}
