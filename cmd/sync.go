package cmd

import (
	"github.com/spf13/cobra"

	"buddy-setup/internal/config"
	"buddy-setup/internal/distro"
	"buddy-setup/internal/installer"
	"buddy-setup/internal/logger"
)

// configPath holds the path to the optional configuration YAML file.
// When left empty, the built-in package list and tool set are used.
// It's passed via the `--config` or `-c` flag.
var configPath string

// statePath is the path to the persistent state file.
// This file tracks installed packages and downloaded tools.
var statePath string

// syncCmd is the top-level command for syncing everything:
// OS packages and the external checker tool archives.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync system state with config (packages, tool downloads)",
	Run: func(cmd *cobra.Command, args []string) {
		// Load configuration and state
		cfg := config.LoadConfig(configPath)
		st := config.LoadState(statePath)

		// Install OS packages through the detected package manager,
		// then fetch the tool archives into the user's home directory.
		syncPackages(cfg, st)
		installer.SyncTools(cfg.Tools, st)

		// Save updated state after syncing
		config.SaveState(statePath, st)
	},
}

// syncPackagesCmd syncs only the OS package installations.
var syncPackagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "Sync only OS packages with config",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig(configPath)
		st := config.LoadState(statePath)

		syncPackages(cfg, st)
		config.SaveState(statePath, st)
	},
}

// syncToolsCmd syncs only the tool archive downloads.
var syncToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Sync only tool downloads with config",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.LoadConfig(configPath)
		st := config.LoadState(statePath)

		installer.SyncTools(cfg.Tools, st)
		config.SaveState(statePath, st)
	},
}

// syncPackages detects the host distribution and installs the configured
// packages through its package manager. Hosts without a recognized release
// marker get a warning and no package manager is ever invoked.
func syncPackages(cfg config.Config, st *config.State) {
	mgr, marker, ok := distro.Detect()
	if !ok {
		logger.Warn("[WARN] No supported distribution marker found. Skipping package installation.\n")
		return
	}
	logger.Info("[INFO] Detected %s (marker %s)\n", mgr.Name, marker)
	installer.SyncPackages(mgr, cfg.Packages, st)
}

// init sets up CLI flags and adds subcommands to the root command.
func init() {
	// Global flags for specifying config and state file paths
	syncCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (built-in defaults when omitted)")
	syncCmd.PersistentFlags().StringVar(&statePath, "state", "state.json", "Path to state file")

	// Add subcommands for more granular control
	syncCmd.AddCommand(syncPackagesCmd)
	syncCmd.AddCommand(syncToolsCmd)
	// Register the `sync` command with the root command
	rootCmd.AddCommand(syncCmd)
}
