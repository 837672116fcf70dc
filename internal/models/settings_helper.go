package models

import (
	"encoding/json"

	"github.com/julianstephens/daylog/internal/constants"
)

// DecodeSettings parses a stored settings document field by field. Missing,
// mistyped, or unknown values fall back to their defaults; a document that is
// not a JSON object yields DefaultSettings. The older "startTab" name is read
// when "startView" is absent or invalid.
func DecodeSettings(data []byte) Settings {
	settings := DefaultSettings()

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return settings
	}

	if v, ok := raw["remindersEnabled"].(bool); ok {
		settings.RemindersEnabled = v
	}
	for _, key := range []string{"startView", "startTab"} {
		s, ok := raw[key].(string)
		if !ok {
			continue
		}
		if view, ok := ParseStartView(s); ok {
			settings.StartView = view
			break
		}
	}
	return settings
}

// ApplyDefaultSettings fills in zero-valued fields that have no valid zero.
func ApplyDefaultSettings(settings *Settings) {
	if _, ok := ParseStartView(string(settings.StartView)); !ok {
		settings.StartView = constants.DefaultStartView
	}
}
