package main

import (
	"buddy-setup/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The buddy-setup project bootstraps a Linux host for LaTeXBuddy. It:
//   - Detects the host distribution by probing the well-known release marker
//     files (/etc/debian_version, /etc/alpine-release, ...) and selects the
//     matching package manager command prefix
//   - Installs the OS packages LaTeXBuddy needs (python3-pip, git, default-jdk,
//     curl, make) through that package manager, refreshing the package index
//     first on Debian-family hosts
//   - Downloads the external checker tool archives (ChkTeX, Diction,
//     LanguageTool, Aspell, and LaTeXBuddy itself) into the invoking user's
//     home directory and extracts them there
//   - Maintains a JSON state file recording which packages were installed and
//     which tool versions were fetched, enabling idempotent and incremental
//     runs (only applying changes when necessary)
//
// Error handling strategy:
//   - Installs and downloads are best-effort: failures are logged with the
//     command output and the run continues, aiming to apply as much of the
//     configuration as possible in one pass
//   - Only configuration loading is fatal, since a broken config means the
//     run cannot mean anything
//
// Integration points:
//   - Invokes the native package manager (apt-get, apk, yum, dnf, pacman,
//     emerge, zypper) directly; no package-manager internals are reimplemented
//   - Fetches tool archives over plain HTTP(S) from their upstream mirrors
//
// All package names, tool URLs, and destinations have built-in defaults and
// can be replaced through a single YAML configuration file.
func main() {
	cmd.Execute()
}
