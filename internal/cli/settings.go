package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// GlobalSettings holds user-level CLI settings stored in ~/.dbapps/settings.json.
// These settings apply across all checkouts and persist between sessions.
type GlobalSettings struct {
	// UpdateReminder controls whether the CLI nudges about stale checkouts.
	// nil = enabled (default), false = disabled.
	UpdateReminder *bool `json:"update_reminder,omitempty"`
}

// globalSettingsDir is the directory name for global dbapps settings.
const globalSettingsDir = ".dbapps"

// globalSettingsBasePath overrides the home directory for testing.
// When empty (default), uses os.UserHomeDir().
var globalSettingsBasePath string

// getGlobalSettingsPath returns the path to the global settings file.
func getGlobalSettingsPath() (string, error) {
	basePath := globalSettingsBasePath
	if basePath == "" {
		var err error
		basePath, err = os.UserHomeDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(basePath, globalSettingsDir, "settings.json"), nil
}

// loadGlobalSettings loads the global settings from ~/.dbapps/settings.json.
// Returns an empty settings struct if the file doesn't exist or can't be parsed.
func loadGlobalSettings() *GlobalSettings {
	path, err := getGlobalSettingsPath()
	if err != nil {
		return &GlobalSettings{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return &GlobalSettings{}
	}

	var settings GlobalSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return &GlobalSettings{}
	}

	return &settings
}

// IsUpdateReminderEnabled returns true if the update reminder is enabled.
// The reminder is enabled by default (when UpdateReminder is nil).
func (s *GlobalSettings) IsUpdateReminderEnabled() bool {
	if s.UpdateReminder == nil {
		return true
	}
	return *s.UpdateReminder
}
