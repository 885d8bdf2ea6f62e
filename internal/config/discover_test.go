package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/classsort/classsort.toml", DefaultPath())
}

func TestDefaultPath_Home(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	assert.Contains(t, DefaultPath(), filepath.Join(".config", "classsort", DefaultSettingsFile))
}

func TestDiscover_EnvVar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]"), 0644))
	t.Setenv("CLASSSORT_SETTINGS", path)

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestDiscover_EnvVarNotFound(t *testing.T) {
	t.Setenv("CLASSSORT_SETTINGS", "/nonexistent/classsort.toml")

	_, err := Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLASSSORT_SETTINGS")
}

func TestDiscover_CurrentDir(t *testing.T) {
	t.Setenv("CLASSSORT_SETTINGS", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmp := t.TempDir()
	t.Chdir(tmp)
	require.NoError(t, os.WriteFile(DefaultSettingsFile, []byte("[log]"), 0644))

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, "./"+DefaultSettingsFile, got)
}

func TestDiscover_NoneFound(t *testing.T) {
	t.Setenv("CLASSSORT_SETTINGS", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
