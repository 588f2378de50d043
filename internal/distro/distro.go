package distro

import (
	"os"
	"path/filepath"

	"buddy-setup/internal/logger"
)

// Manager describes the package manager associated with a detected
// distribution family.
// - Name: Short manager name, e.g. "apt".
// - InstallCmd: Command prefix a package name is appended to.
// - RefreshCmd: Command run once to refresh the package index before any
//   install; nil for managers that resolve packages without a refresh step.
type Manager struct {
	Name       string
	InstallCmd []string
	RefreshCmd []string
}

// markerEntry associates a distribution release marker file with the
// package manager used on that distribution.
type markerEntry struct {
	Marker  string
	Manager Manager
}

// markerTable lists the supported release markers in detection order.
// At most one marker is expected to exist on a host; when several do
// (CentOS ships both centos-release and redhat-release), the first match
// wins. Only the Debian family defines a refresh command: apt installs
// fail outright on a stale index, while the rpm/apk/pacman families
// resolve against their own metadata.
var markerTable = []markerEntry{
	{"etc/debian_version", Manager{Name: "apt", InstallCmd: []string{"apt-get", "install", "-y"}, RefreshCmd: []string{"apt-get", "update", "-y"}}},
	{"etc/alpine-release", Manager{Name: "apk", InstallCmd: []string{"apk", "add"}}},
	{"etc/centos-release", Manager{Name: "yum", InstallCmd: []string{"yum", "install", "-y"}}},
	{"etc/fedora-release", Manager{Name: "dnf", InstallCmd: []string{"dnf", "install", "-y"}}},
	{"etc/redhat-release", Manager{Name: "yum", InstallCmd: []string{"yum", "install", "-y"}}},
	{"etc/arch-release", Manager{Name: "pacman", InstallCmd: []string{"pacman", "-S", "--noconfirm"}}},
	{"etc/gentoo-release", Manager{Name: "emerge", InstallCmd: []string{"emerge"}}},
	{"etc/SuSE-release", Manager{Name: "zypper", InstallCmd: []string{"zypper", "-n", "install"}}},
}

// Detect probes the host filesystem for a known release marker and returns
// the matching package manager, the marker path that matched, and whether
// anything matched at all. With no match the caller must not invoke any
// package manager command.
func Detect() (Manager, string, bool) {
	return DetectAt("/")
}

// DetectAt is Detect rooted at an arbitrary directory, so tests can stage
// marker files in a temporary tree instead of reading the real /etc.
func DetectAt(root string) (Manager, string, bool) {
	for _, entry := range markerTable {
		probe := filepath.Join(root, entry.Marker)
		if _, err := os.Stat(probe); err == nil {
			logger.Debug("[DEBUG] Marker %s exists, selecting %s\n", probe, entry.Manager.Name)
			return entry.Manager, probe, true
		}
	}
	logger.Debug("[DEBUG] No release marker found under %s\n", root)
	return Manager{}, "", false
}
