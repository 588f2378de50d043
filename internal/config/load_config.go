package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns the built-in configuration: the OS packages LaTeXBuddy
// needs and the five external checker archives, matching the documented
// upstream URLs. A config file replaces a section wholesale when it sets it.
func Default() Config {
	return Config{
		Packages: []string{"python3-pip", "git", "default-jdk", "curl", "make"},
		Tools: []Tool{
			{
				Name:    "chktex",
				Version: "1.7.8",
				URL:     "http://download.savannah.gnu.org/releases/chktex/chktex-1.7.8.tar.gz",
				Dest:    "chktex-1.7.8.tar.gz",
				Extract: true,
			},
			{
				Name:    "diction",
				Version: "1.13",
				URL:     "https://ftp.gnu.org/gnu/diction/diction-1.13.tar.gz",
				Dest:    "diction-1.13.tar.gz",
				Extract: true,
			},
			{
				Name:    "languagetool",
				Version: "stable",
				URL:     "https://languagetool.org/download/LanguageTool-stable.zip",
				Dest:    "LanguageTool-stable.zip",
				Extract: true,
			},
			{
				Name:    "aspell",
				Version: "0.60.8",
				URL:     "https://ftp.gnu.org/gnu/aspell/aspell-0.60.8.tar.gz",
				Dest:    "aspell-0.60.8.tar.gz",
				Extract: true,
			},
			{
				Name:    "latexbuddy",
				Version: "master",
				URL:     "https://gitlab.com/LaTeXBuddy/LaTeXBuddy/-/archive/master/LaTeXBuddy-master.tar.gz",
				Dest:    "LaTeXBuddy-master.tar.gz",
				Extract: true,
			},
		},
	}
}

// LoadConfig reads the optional config YAML and merges it over the built-in
// defaults. An empty path means "defaults only". It returns a populated
// Config struct.
func LoadConfig(configFile string) Config {
	cfg := Default()
	if configFile == "" {
		return cfg
	}

	// Read and parse the config file; both sections are optional and a
	// section that is present replaces the corresponding default.
	raw, err := os.ReadFile(configFile)
	if err != nil {
		panic("Failed to read config file: " + err.Error())
	}
	var fileConfig Config
	if err := yaml.Unmarshal(raw, &fileConfig); err != nil {
		panic("Failed to unmarshal config file: " + err.Error())
	}

	if fileConfig.Packages != nil {
		cfg.Packages = fileConfig.Packages
	}
	if fileConfig.Tools != nil {
		cfg.Tools = fileConfig.Tools
	}
	return cfg
}
