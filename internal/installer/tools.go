package installer

import (
	"os"
	"path"
	"path/filepath"

	"buddy-setup/internal/config"
	"buddy-setup/internal/logger"
)

// SyncTools downloads the configured tool archives into the user's home
// directory, extracts the ones marked for extraction, and records the
// results in the state. Tools whose recorded version matches the config are
// skipped, making repeat runs cheap.
//
// Failures are logged and the loop continues with the next tool. Tools that
// disappear from the config are warned about but their files are left in
// place; this tool never deletes anything it downloaded.
func SyncTools(tools []config.Tool, st *config.State) {
	logger.Debug("[DEBUG] Starting SyncTools with %d tools, current state has %d entries\n", len(tools), len(st.Tools))

	home, err := os.UserHomeDir()
	if err != nil {
		logger.Error("[ERROR] Failed to determine home directory: %v\n", err)
		return
	}

	existing := make(map[string]bool)
	for _, tool := range tools {
		existing[tool.Name] = true

		if cur, ok := st.Tools[tool.Name]; ok && cur.Version == tool.Version {
			logger.Info("[INFO] %s version %s is current. Skipping.\n", tool.Name, tool.Version)
			continue
		}

		// Destination defaults to the archive's own filename
		dest := tool.Dest
		if dest == "" {
			dest = path.Base(tool.URL)
		}
		archivePath := filepath.Join(home, dest)

		logger.Info("[INFO] Downloading %s@%s to %s\n", tool.Name, tool.Version, archivePath)
		if err := downloadFile(tool.URL, archivePath); err != nil {
			logger.Error("[ERROR] Download failed for %s: %v\n", tool.Name, err)
			continue
		}

		toolState := config.ToolState{
			Version:     tool.Version,
			URL:         tool.URL,
			ArchivePath: archivePath,
		}

		if tool.Extract {
			extracted, err := ExtractArchive(archivePath, home)
			if err != nil {
				// The archive itself downloaded fine and stays on disk;
				// record it so the version is not re-fetched next run.
				logger.Error("[ERROR] Failed to extract %s: %v\n", tool.Name, err)
			} else {
				logger.Info("[INFO] Extracted %s to %s\n", tool.Name, extracted)
				toolState.ExtractPath = extracted
			}
		}

		st.Tools[tool.Name] = toolState
	}

	// Tools removed from the config keep their files; the original setup
	// never uninstalls, so neither does this one.
	for name := range st.Tools {
		if !existing[name] {
			logger.Warn("[WARN] %s removed from config. Leaving downloaded files in place.\n", name)
		}
	}

	logger.Debug("[DEBUG] Finished SyncTools\n")
}
