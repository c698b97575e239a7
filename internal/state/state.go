package state

import (
	"encoding/json" // JSON encoding/decoding of the history file
	"os"            // File system operations
	"path/filepath"
	"time"

	"eclipse-sync/internal/logger"
)

// ImportRecord is the saved outcome of the most recent import into one
// workspace. It feeds the status command.
type ImportRecord struct {
	Source       string    `json:"source"`        // Settings source path as given by the user
	Format       string    `json:"format"`        // Detected source format description
	FilesApplied int       `json:"files_applied"` // Component files written or copied
	BackupPath   string    `json:"backup_path"`   // Backup location, empty if no backup was taken
	Timestamp    time.Time `json:"timestamp"`     // When the import completed
}

// State holds the whole import history, keyed by workspace root path.
type State struct {
	Imports map[string]ImportRecord `json:"imports"`
}

// Load reads the saved import history from a JSON file at the given path.
// A missing or unreadable file yields a new empty State; the Imports map is
// always non-nil so callers can index it without checking.
func Load(path string) *State {
	file, err := os.ReadFile(path)
	if err != nil {
		return &State{Imports: make(map[string]ImportRecord)}
	}

	var st State
	_ = json.Unmarshal(file, &st)

	if st.Imports == nil {
		st.Imports = make(map[string]ImportRecord)
	}
	return &st
}

// Save writes the import history to a JSON file at the given path,
// pretty-printed for readability. Errors are logged, not propagated: losing
// a history entry never fails an import that already succeeded.
func Save(path string, st *State) {
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal state: %v\n", err)
		return
	}

	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", path, string(file))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Error("[ERROR] Failed to create state directory for %s: %v\n", path, err)
		return
	}
	if err := os.WriteFile(path, file, 0644); err != nil {
		logger.Error("[ERROR] Failed to write state file %s: %v\n", path, err)
	}
}

// DefaultPath returns the conventional history location,
// ~/.config/eclipse-sync/state.json.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "state.json"
	}
	return filepath.Join(home, ".config", "eclipse-sync", "state.json")
}
