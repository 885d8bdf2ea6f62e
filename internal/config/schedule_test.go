package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/classsort/internal/schedule"
)

const validSchedule = `pdf, .MP4
10
yyyyMMdd_HHmmss
yyyy-MM-dd_HHmm
Algebra,09:00:00,1
Biology,13:30:00,2,4

Chemistry,08:15:30,5
`

func TestParseSchedule_Valid(t *testing.T) {
	s, err := ParseSchedule(strings.NewReader(validSchedule), "Config.txt")
	require.NoError(t, err)

	assert.Equal(t, []string{"pdf", "MP4"}, s.Extensions)
	assert.Equal(t, 10.0, s.Tolerance)
	assert.Equal(t, "20060102_150405", s.InputFormat.GoLayout())
	assert.Equal(t, "2006-01-02_1504", s.OutputFormat.GoLayout())

	require.Len(t, s.Entries, 3)
	assert.Equal(t, schedule.Entry{Name: "Algebra", Start: 540, Days: schedule.NewDays(schedule.Monday)}, s.Entries[0])
	assert.Equal(t, schedule.NewDays(schedule.Tuesday, schedule.Thursday), s.Entries[1].Days)
	assert.InDelta(t, 495.5, s.Entries[2].Start, 1e-9)
}

func TestParseSchedule_CRLFAndBOM(t *testing.T) {
	content := "\ufeffpdf\r\n5.5\r\nyyyyMMdd\r\nyyyy-MM-dd\r\nAlgebra,09:00:00,1\r\n"
	s, err := ParseSchedule(strings.NewReader(content), "Config.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"pdf"}, s.Extensions)
	assert.Equal(t, 5.5, s.Tolerance)
	require.Len(t, s.Entries, 1)
	assert.Equal(t, "Algebra", s.Entries[0].Name)
}

func TestParseSchedule_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"too short", "pdf\n10\n", "header lines"},
		{"non numeric tolerance", "pdf\nten\nyyyy\nyyyy\n", "line 2"},
		{"negative tolerance", "pdf\n-1\nyyyy\nyyyy\n", "line 2"},
		{"no extensions", " , \n10\nyyyy\nyyyy\n", "line 1"},
		{"bad input format", "pdf\n10\nyyyy Q\nyyyy\n", "line 3"},
		{"bad output format", "pdf\n10\nyyyy\n'open\n", "line 4"},
		{"separator in output format", "pdf\n10\nyyyy\nyyyy/MM\n", "path separators"},
		{"bad time", "pdf\n10\nyyyy\nyyyy\nAlgebra,9am,1\n", "line 5"},
		{"bad weekday", "pdf\n10\nyyyy\nyyyy\nAlgebra,09:00:00,x\n", "line 5"},
		{"weekday out of range", "pdf\n10\nyyyy\nyyyy\nAlgebra,09:00:00,1\nBiology,10:00:00,8\n", "line 6"},
		{"missing weekday", "pdf\n10\nyyyy\nyyyy\nAlgebra,09:00:00\n", "line 5"},
		{"empty name", "pdf\n10\nyyyy\nyyyy\n ,09:00:00,1\n", "empty class name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSchedule(strings.NewReader(tt.content), "Config.txt")
			require.Error(t, err)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseSchedule_CollectsAllErrors(t *testing.T) {
	content := "pdf\nten\nyyyy\nyyyy\nAlgebra,09:00:00,9\nBiology,25:00:00,1\n"
	_, err := ParseSchedule(strings.NewReader(content), "Config.txt")

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Len(t, cfgErr.Errors, 3)
}

func TestParseSchedule_CommentsSkipped(t *testing.T) {
	content := "pdf\n10\nyyyy\nyyyy\n# morning\nAlgebra,09:00:00,1\n"
	s, err := ParseSchedule(strings.NewReader(content), "Config.txt")
	require.NoError(t, err)
	assert.Len(t, s.Entries, 1)
}

func TestLoadSchedule_NotFound(t *testing.T) {
	_, err := LoadSchedule(filepath.Join(t.TempDir(), DefaultConfigFile))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadSchedule_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(validSchedule), 0644))

	s, err := LoadSchedule(path)
	require.NoError(t, err)
	assert.Len(t, s.Entries, 3)
}

func TestSchedule_Warnings(t *testing.T) {
	s := &Schedule{}
	warns := s.Warnings()
	assert.Len(t, warns, 2)

	s = &Schedule{Tolerance: 5, Entries: []schedule.Entry{{Name: "Algebra"}}}
	assert.Empty(t, s.Warnings())
}
