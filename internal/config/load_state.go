package config

import (
	"encoding/json" // For JSON encoding and decoding of the state file
	"os"            // For file system operations like reading and writing files

	"buddy-setup/internal/logger"
)

// LoadState loads the saved state from a JSON file at the given path.
// If the file does not exist or cannot be read, it returns a new empty State struct.
// It ensures the Packages and Tools maps are non-nil to prevent nil pointer issues.
func LoadState(path string) *State {
	// Read entire state JSON file into memory
	file, err := os.ReadFile(path)
	if err != nil {
		// If file read fails (file missing, permission issues), return empty initialized state
		return &State{
			Packages: make(map[string]PackageState),
			Tools:    make(map[string]ToolState),
		}
	}

	// Parse JSON data into a State struct
	var st State
	_ = json.Unmarshal(file, &st)

	// Defensive: Ensure maps are initialized if JSON contained null for these fields
	if st.Packages == nil {
		st.Packages = make(map[string]PackageState)
	}
	if st.Tools == nil {
		st.Tools = make(map[string]ToolState)
	}

	return &st
}

// SaveState writes the given State struct to a JSON file at the given path.
// It pretty-prints the JSON with indentation for readability.
// Errors during marshalling or writing are logged but not propagated.
func SaveState(path string, st *State) {
	// Marshal the State struct into indented JSON bytes
	file, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		// Log marshalling errors, typically should never happen unless invalid data
		logger.Error("[ERROR] Failed to marshal state: %v\n", err)
		return
	}

	// Log debug info showing the full JSON state being written (can be verbose)
	logger.Debug("[DEBUG] Writing state to %s:\n%s\n", path, string(file))

	// Write the JSON bytes to the file with mode 0644 (read/write owner, read others)
	err = os.WriteFile(path, file, 0644)
	if err != nil {
		// Log write errors, e.g., permission denied or disk full
		logger.Error("[ERROR] Failed to write state file %s: %v\n", path, err)
	}
}
