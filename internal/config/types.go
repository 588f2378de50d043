package config

// Tool represents an external checker archive to download.
// - Name: Logical name for the tool.
// - Version: Version to fetch; changing it in the config triggers a re-download.
// - URL: Direct download URL of the archive.
// - Dest: Destination filename under the user's home directory; derived
//   from the URL when left empty.
// - Extract: Whether to extract the archive next to the downloaded file.
type Tool struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	URL     string `yaml:"url"`
	Dest    string `yaml:"dest"`
	Extract bool   `yaml:"extract"`
}

// Config is the top-level structure returned after loading the YAML
// configuration (or the built-in defaults). It contains the OS package
// names to install and the tool archives to download.
type Config struct {
	Packages []string `yaml:"packages"`
	Tools    []Tool   `yaml:"tools"`
}

// PackageState represents the saved state of an installed OS package.
// It records which package manager performed the install and a boolean
// indicating whether this package was installed by this setup system.
type PackageState struct {
	Manager               string `json:"manager"`                  // Package manager name used for the install, e.g. "apt"
	InstalledByBuddySetup bool   `json:"installed_by_buddy_setup"` // True if installed by this tool, false if external/manual install
}

// ToolState represents the saved state of a downloaded tool archive.
// It records the fetched version and URL plus the on-disk paths, so
// subsequent runs can skip tools that are already current.
type ToolState struct {
	Version     string `json:"version"`                // Version string recorded at download time
	URL         string `json:"url"`                    // Download URL used
	ArchivePath string `json:"archive_path"`           // Absolute path of the downloaded archive
	ExtractPath string `json:"extract_path,omitempty"` // Absolute path of the extracted tree, when extraction ran
}

// State holds the entire saved state for the setup tool.
// It includes maps of installed packages and downloaded tools keyed by name.
type State struct {
	Packages map[string]PackageState `json:"packages"` // Map from package name to its PackageState
	Tools    map[string]ToolState    `json:"tools"`    // Map from tool name to its ToolState
}
