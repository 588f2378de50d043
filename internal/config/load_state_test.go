package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadStateMissingFile(t *testing.T) {
	st := LoadState(filepath.Join(t.TempDir(), "state.json"))

	require.NotNil(t, st.Packages)
	require.NotNil(t, st.Tools)
	require.Empty(t, st.Packages)
	require.Empty(t, st.Tools)
}

func TestLoadStateCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	// Broken state must not crash a run; it degrades to an empty state.
	st := LoadState(path)
	require.NotNil(t, st.Packages)
	require.NotNil(t, st.Tools)
}

func TestStateRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	st := &State{
		Packages: map[string]PackageState{
			"git": {Manager: "apt", InstalledByBuddySetup: true},
		},
		Tools: map[string]ToolState{
			"chktex": {
				Version:     "1.7.8",
				URL:         "http://download.savannah.gnu.org/releases/chktex/chktex-1.7.8.tar.gz",
				ArchivePath: "/home/user/chktex-1.7.8.tar.gz",
				ExtractPath: "/home/user/chktex-1.7.8",
			},
		},
	}

	SaveState(path, st)
	require.Equal(t, st, LoadState(path))
}
