package installer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"buddy-setup/internal/config"
	"buddy-setup/internal/distro"
)

// captureCommands swaps the exec hook for one that records every invocation
// instead of running it. The fail set marks commands (by their last
// argument) that should report a non-zero exit.
func captureCommands(t *testing.T, fail map[string]bool) *[][]string {
	t.Helper()
	var calls [][]string
	orig := runCommand
	runCommand = func(args ...string) ([]byte, error) {
		calls = append(calls, args)
		if fail[args[len(args)-1]] {
			return []byte("simulated failure"), errors.New("exit status 1")
		}
		return nil, nil
	}
	t.Cleanup(func() { runCommand = orig })
	return &calls
}

func aptManager() distro.Manager {
	return distro.Manager{
		Name:       "apt",
		InstallCmd: []string{"apt-get", "install", "-y"},
		RefreshCmd: []string{"apt-get", "update", "-y"},
	}
}

func emptyState() *config.State {
	return &config.State{
		Packages: make(map[string]config.PackageState),
		Tools:    make(map[string]config.ToolState),
	}
}

func TestSyncPackagesRefreshesOnceThenInstalls(t *testing.T) {
	calls := captureCommands(t, nil)
	st := emptyState()

	SyncPackages(aptManager(), []string{"git", "make"}, st)

	require.Equal(t, [][]string{
		{"apt-get", "update", "-y"},
		{"apt-get", "install", "-y", "git"},
		{"apt-get", "install", "-y", "make"},
	}, *calls)
	require.Equal(t, config.PackageState{Manager: "apt", InstalledByBuddySetup: true}, st.Packages["git"])
	require.Equal(t, config.PackageState{Manager: "apt", InstalledByBuddySetup: true}, st.Packages["make"])
}

func TestSyncPackagesNoRefreshOutsideDebianFamily(t *testing.T) {
	calls := captureCommands(t, nil)
	mgr := distro.Manager{Name: "dnf", InstallCmd: []string{"dnf", "install", "-y"}}

	SyncPackages(mgr, []string{"git"}, emptyState())

	require.Equal(t, [][]string{{"dnf", "install", "-y", "git"}}, *calls)
}

func TestSyncPackagesWithoutManagerInvokesNothing(t *testing.T) {
	calls := captureCommands(t, nil)

	SyncPackages(distro.Manager{}, []string{"git", "make"}, emptyState())

	require.Empty(t, *calls)
}

func TestSyncPackagesContinuesAfterFailure(t *testing.T) {
	calls := captureCommands(t, map[string]bool{"git": true})
	st := emptyState()

	SyncPackages(aptManager(), []string{"git", "make"}, st)

	// Both installs were attempted despite git failing
	require.Len(t, *calls, 3)
	require.NotContains(t, st.Packages, "git")
	require.Contains(t, st.Packages, "make")
}

func TestSyncPackagesSkipsRecordedPackages(t *testing.T) {
	calls := captureCommands(t, nil)
	st := emptyState()
	st.Packages["git"] = config.PackageState{Manager: "apt", InstalledByBuddySetup: true}

	SyncPackages(aptManager(), []string{"git", "make"}, st)

	require.Equal(t, [][]string{
		{"apt-get", "update", "-y"},
		{"apt-get", "install", "-y", "make"},
	}, *calls)
}
