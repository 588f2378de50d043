package installer

import (
	"os/exec"
	"strings"

	"buddy-setup/internal/config"
	"buddy-setup/internal/distro"
	"buddy-setup/internal/logger"
)

// runCommand executes a package manager invocation and returns its combined
// output. It is a package variable so tests can swap it out and record the
// exact commands a sync run would issue without touching the host.
var runCommand = func(args ...string) ([]byte, error) {
	cmd := exec.Command(args[0], args[1:]...)
	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	return cmd.CombinedOutput()
}

// SyncPackages installs the configured OS packages through the detected
// package manager and records successes in the state.
//
// The run is best-effort throughout: a failed index refresh or a failed
// install is logged together with the command output and the remaining
// packages are still attempted. Packages the state already records for this
// manager are skipped.
func SyncPackages(mgr distro.Manager, packages []string, st *config.State) {
	logger.Debug("[DEBUG] Starting SyncPackages with %d packages, current state has %d entries\n", len(packages), len(st.Packages))

	// Without a detected manager there is nothing to invoke. Callers guard
	// this already; keep the invariant locally too.
	if len(mgr.InstallCmd) == 0 {
		logger.Warn("[WARN] No package manager selected. Skipping package installation.\n")
		return
	}

	// Refresh the package index once, only when the manager defines a
	// refresh step (the Debian family). A failed refresh is not fatal:
	// installs may still succeed against the cached index.
	if len(mgr.RefreshCmd) > 0 {
		logger.Info("[INFO] Refreshing %s package index...\n", mgr.Name)
		output, err := runCommand(mgr.RefreshCmd...)
		if err != nil {
			logger.Error("[ERROR] Index refresh failed: %v\nOutput: %s\n", err, output)
		}
	}

	for _, pkg := range packages {
		// Skip packages this tool already installed with the same manager
		if prev, ok := st.Packages[pkg]; ok && prev.Manager == mgr.Name {
			logger.Info("[INFO] %s already installed via %s. Skipping.\n", pkg, mgr.Name)
			continue
		}

		logger.Info("[INFO] Installing %s via %s...\n", pkg, mgr.Name)
		args := append(append([]string{}, mgr.InstallCmd...), pkg)
		output, err := runCommand(args...)
		if err != nil {
			// Best-effort: log and move on to the next package. Some names
			// are wrong for some families (default-jdk outside Debian) and
			// that must not stop the rest of the run.
			logger.Error("[ERROR] Failed to install %s: %v\nOutput: %s\n", pkg, err, output)
			continue
		}

		st.Packages[pkg] = config.PackageState{
			Manager:               mgr.Name,
			InstalledByBuddySetup: true,
		}
	}

	logger.Debug("[DEBUG] Finished SyncPackages\n")
}
