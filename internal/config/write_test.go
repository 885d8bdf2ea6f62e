package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefaults(t *testing.T) {
	dir := t.TempDir()

	written, err := WriteDefaults(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, DefaultConfigFile),
		filepath.Join(dir, DefaultSettingsFile),
	}, written)

	// The examples must load cleanly.
	s, err := LoadSchedule(written[0])
	require.NoError(t, err)
	assert.NotEmpty(t, s.Entries)

	settings, err := LoadSettings(written[1])
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestWriteDefaults_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, DefaultConfigFile)
	require.NoError(t, os.WriteFile(existing, []byte("keep me"), 0644))

	_, err := WriteDefaults(dir)
	assert.ErrorIs(t, err, ErrExists)

	got, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(got))

	_, err = os.Stat(filepath.Join(dir, DefaultSettingsFile))
	assert.True(t, os.IsNotExist(err))
}
