package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// UpdateStamp records when the checkout was last synced via --update.
type UpdateStamp struct {
	UpdatedAt time.Time `json:"updated_at"`
}

// reminderState holds the state for the deferred update reminder.
type reminderState struct {
	mu      sync.Mutex
	pending bool
	quiet   bool
	skip    bool
}

var updateReminder = &reminderState{}

// updateStampFileName is the name of the update stamp file.
const updateStampFileName = ".update_stamp"

// updateReminderInterval is how long after the last update the reminder appears.
const updateReminderInterval = 7 * 24 * time.Hour

// updateReminderEnvVar is the environment variable to disable the reminder.
const updateReminderEnvVar = "DBAPPS_NO_UPDATE_REMINDER"

// timeNowFunc allows tests to override time.Now().
var timeNowFunc = time.Now

// initUpdateReminder prepares the end-of-run reminder.
// A missing stamp starts the clock instead of nagging on first run.
func initUpdateReminder(quiet bool) {
	updateReminder.mu.Lock()
	updateReminder.quiet = quiet
	updateReminder.skip = false
	updateReminder.pending = false
	updateReminder.mu.Unlock()

	if isUpdateReminderDisabled() {
		return
	}

	stamp, err := readUpdateStamp()
	if err != nil {
		_ = writeUpdateStamp(&UpdateStamp{UpdatedAt: timeNowFunc()})
		return
	}

	if timeNowFunc().Sub(stamp.UpdatedAt) >= updateReminderInterval {
		updateReminder.mu.Lock()
		updateReminder.pending = true
		updateReminder.mu.Unlock()
	}
}

// skipUpdateReminder marks that the reminder should be skipped for this run.
// Call this for commands like completion that emit machine-readable output.
func skipUpdateReminder() {
	updateReminder.mu.Lock()
	updateReminder.skip = true
	updateReminder.mu.Unlock()
}

// markUpdated records a successful update so the reminder clock restarts.
func markUpdated() {
	_ = writeUpdateStamp(&UpdateStamp{UpdatedAt: timeNowFunc()})
	updateReminder.mu.Lock()
	updateReminder.pending = false
	updateReminder.mu.Unlock()
}

// showUpdateReminder displays the reminder if one is pending.
// This should be called at the end of Run() via defer.
func showUpdateReminder() {
	updateReminder.mu.Lock()
	pending := updateReminder.pending
	quiet := updateReminder.quiet
	skip := updateReminder.skip
	updateReminder.mu.Unlock()

	if !pending || quiet || skip {
		return
	}

	out.Blank()
	out.Hint("Tip: run dbapps-install --update to pull the latest command files")
}

// readUpdateStamp reads the update stamp from disk.
func readUpdateStamp() (*UpdateStamp, error) {
	path, err := getUpdateStampPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var stamp UpdateStamp
	if err := json.Unmarshal(data, &stamp); err != nil {
		return nil, err
	}

	return &stamp, nil
}

// writeUpdateStamp writes the update stamp to disk.
func writeUpdateStamp(stamp *UpdateStamp) error {
	path, err := getUpdateStampPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.Marshal(stamp)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// getUpdateStampPath returns the path to the update stamp file.
func getUpdateStampPath() (string, error) {
	basePath := globalSettingsBasePath
	if basePath == "" {
		var err error
		basePath, err = os.UserHomeDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(basePath, globalSettingsDir, updateStampFileName), nil
}

// isUpdateReminderDisabled returns true if the reminder is disabled via env var
// or global settings.
func isUpdateReminderDisabled() bool {
	// Check environment variable first (takes precedence)
	if os.Getenv(updateReminderEnvVar) != "" {
		return true
	}

	// Check global settings
	settings := loadGlobalSettings()
	return !settings.IsUpdateReminderEnabled()
}
