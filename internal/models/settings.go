package models

import "github.com/julianstephens/daylog/internal/constants"

// Settings represents user preferences persisted next to the entries
type Settings struct {
	RemindersEnabled bool                `json:"remindersEnabled"` // show the backup reminder
	StartView        constants.StartView `json:"startView"`        // view shown when no subcommand is given
}

// DefaultSettings returns the settings used when nothing valid is stored.
func DefaultSettings() Settings {
	return Settings{
		RemindersEnabled: constants.DefaultRemindersEnabled,
		StartView:        constants.DefaultStartView,
	}
}

// ParseStartView returns the start view named by s and whether it is known.
func ParseStartView(s string) (constants.StartView, bool) {
	for _, v := range constants.StartViews {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}
