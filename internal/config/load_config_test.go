package config

import (
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	require.Equal(t, []string{"python3-pip", "git", "default-jdk", "curl", "make"}, cfg.Packages)
	require.Len(t, cfg.Tools, 5)

	urls := map[string]string{
		"chktex":       "http://download.savannah.gnu.org/releases/chktex/chktex-1.7.8.tar.gz",
		"diction":      "https://ftp.gnu.org/gnu/diction/diction-1.13.tar.gz",
		"languagetool": "https://languagetool.org/download/LanguageTool-stable.zip",
		"aspell":       "https://ftp.gnu.org/gnu/aspell/aspell-0.60.8.tar.gz",
		"latexbuddy":   "https://gitlab.com/LaTeXBuddy/LaTeXBuddy/-/archive/master/LaTeXBuddy-master.tar.gz",
	}
	for _, tool := range cfg.Tools {
		require.Equal(t, urls[tool.Name], tool.URL, "unexpected URL for %s", tool.Name)
		// Every default destination is the archive's own filename
		require.Equal(t, path.Base(tool.URL), tool.Dest, "unexpected destination for %s", tool.Name)
		require.True(t, tool.Extract, "%s should be extracted", tool.Name)
		require.NotEmpty(t, tool.Version)
	}
}

func TestLoadConfigEmptyPathReturnsDefaults(t *testing.T) {
	require.Equal(t, Default(), LoadConfig(""))
}

func TestLoadConfigReplacesSectionsWholesale(t *testing.T) {
	dir := t.TempDir()

	// Only the packages section is set; tools must stay at the defaults.
	pkgOnly := filepath.Join(dir, "packages.yaml")
	require.NoError(t, os.WriteFile(pkgOnly, []byte("packages: [vim, tmux]\n"), 0644))
	cfg := LoadConfig(pkgOnly)
	require.Equal(t, []string{"vim", "tmux"}, cfg.Packages)
	require.Equal(t, Default().Tools, cfg.Tools)

	// Only the tools section is set; packages must stay at the defaults.
	toolsOnly := filepath.Join(dir, "tools.yaml")
	toolsYAML := `tools:
  - name: demo
    version: "1.0"
    url: https://example.com/demo-1.0.tar.gz
    dest: demo-1.0.tar.gz
    extract: true
`
	require.NoError(t, os.WriteFile(toolsOnly, []byte(toolsYAML), 0644))
	cfg = LoadConfig(toolsOnly)
	require.Equal(t, Default().Packages, cfg.Packages)
	require.Equal(t, []Tool{{
		Name:    "demo",
		Version: "1.0",
		URL:     "https://example.com/demo-1.0.tar.gz",
		Dest:    "demo-1.0.tar.gz",
		Extract: true,
	}}, cfg.Tools)
}

func TestLoadConfigPanicsOnBadInput(t *testing.T) {
	require.Panics(t, func() { LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")) })

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("packages: {not: a list"), 0644))
	require.Panics(t, func() { LoadConfig(bad) })
}
