package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"buddy-setup/internal/distro"
	"buddy-setup/internal/logger"
)

// detectCmd prints the distribution detected on this host and the package
// manager command prefix that a sync run would use. Useful for checking a
// machine before letting `sync` touch it.
var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the detected distribution and package manager",
	Run: func(cmd *cobra.Command, args []string) {
		mgr, marker, ok := distro.Detect()
		if !ok {
			logger.Warn("[WARN] No supported distribution marker found on this host.\n")
			return
		}
		logger.Info("[INFO] Marker:          %s\n", marker)
		logger.Info("[INFO] Package manager: %s\n", mgr.Name)
		logger.Info("[INFO] Install prefix:  %s\n", strings.Join(mgr.InstallCmd, " "))
		if len(mgr.RefreshCmd) > 0 {
			logger.Info("[INFO] Index refresh:   %s\n", strings.Join(mgr.RefreshCmd, " "))
		}
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
