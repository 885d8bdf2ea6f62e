// internal/config/discover.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSettingsFile is the settings file name looked up in the working directory.
const DefaultSettingsFile = "classsort.toml"

// DefaultPath returns the XDG-compliant default settings path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./" + DefaultSettingsFile
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "classsort", DefaultSettingsFile)
}

// Discover finds the settings file using the standard search order.
// Search order:
//  1. CLASSSORT_SETTINGS environment variable
//  2. ./classsort.toml (current directory)
//  3. $XDG_CONFIG_HOME/classsort/classsort.toml
//
// It returns "" with a nil error when no settings file exists; settings are optional.
func Discover() (string, error) {
	if envPath := os.Getenv("CLASSSORT_SETTINGS"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("CLASSSORT_SETTINGS=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

func searchPaths() []string {
	return []string{
		"./" + DefaultSettingsFile,
		DefaultPath(),
	}
}

// SearchPaths describes where Discover looks, for help output.
func SearchPaths() string {
	return strings.Join(searchPaths(), ", ")
}
