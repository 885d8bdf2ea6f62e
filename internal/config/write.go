// internal/config/write.go
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrExists indicates WriteDefaults would overwrite an existing file.
var ErrExists = errors.New("file already exists")

//go:embed default_config.txt
var defaultSchedule string

//go:embed default_settings.toml
var defaultSettings string

// WriteDefaults writes example Config.txt and classsort.toml files into dir.
// Existing files are never overwritten. Returns the paths written.
func WriteDefaults(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	files := []struct {
		name, content string
	}{
		{DefaultConfigFile, defaultSchedule},
		{DefaultSettingsFile, defaultSettings},
	}
	for _, f := range files {
		if _, err := os.Stat(filepath.Join(dir, f.name)); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrExists, filepath.Join(dir, f.name))
		}
	}

	var written []string
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0644); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}
