// Package scan lists the files in a directory that are eligible for sorting.
package scan

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/text/cases"

	"github.com/vmunix/classsort/internal/schedule"
	"github.com/vmunix/classsort/pkg/datefmt"
)

// File is a directory entry split at the first dot of its name.
type File struct {
	Path string
	Base string // name before the first '.'
	Ext  string // name after the first '.'
}

// Skip records a file left out of the candidate set and why.
type Skip struct {
	Path string
	Err  error
}

// Scanner lists regular files with an accepted extension.
type Scanner struct {
	fs      afero.Fs
	fold    cases.Caser
	exts    map[string]bool
	exclude map[string]bool
	log     *slog.Logger
}

// New creates a scanner accepting extensions (case-insensitive, no leading
// dot) and ignoring the file names in exclude.
func New(fs afero.Fs, extensions, exclude []string, log *slog.Logger) *Scanner {
	if log == nil {
		log = slog.Default()
	}
	s := &Scanner{
		fs:      fs,
		fold:    cases.Fold(),
		exts:    make(map[string]bool, len(extensions)),
		exclude: make(map[string]bool, len(exclude)),
		log:     log,
	}
	for _, e := range extensions {
		s.exts[s.fold.String(strings.TrimPrefix(e, "."))] = true
	}
	for _, name := range exclude {
		if name != "" {
			s.exclude[filepath.Base(name)] = true
		}
	}
	return s
}

// Accepts reports whether ext is one of the configured extensions.
func (s *Scanner) Accepts(ext string) bool {
	return s.exts[s.fold.String(ext)]
}

// List returns eligible files in dir sorted by name. Subdirectories are not
// descended into.
func (s *Scanner) List(dir string) ([]File, error) {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	s.log.Info("scanning directory", "dir", dir, "entries", len(entries))

	var files []File
	for _, info := range entries {
		name := info.Name()
		if !info.Mode().IsRegular() || s.exclude[name] {
			continue
		}
		base, ext, ok := strings.Cut(name, ".")
		if !ok || base == "" {
			s.log.Debug("no extension", "file", name)
			continue
		}
		if !s.Accepts(ext) {
			s.log.Debug("extension not configured", "file", name, "ext", ext)
			continue
		}
		files = append(files, File{Path: filepath.Join(dir, name), Base: base, Ext: ext})
	}
	return files, nil
}

// Candidates lists dir and parses each base name with layout in loc. Files
// whose names do not parse are returned as skips; they are never moved.
func (s *Scanner) Candidates(dir string, layout *datefmt.Layout, loc *time.Location) ([]schedule.Candidate, []Skip, error) {
	files, err := s.List(dir)
	if err != nil {
		return nil, nil, err
	}

	var (
		candidates []schedule.Candidate
		skips      []Skip
	)
	for _, f := range files {
		ts, err := layout.Parse(f.Base, loc)
		if err != nil {
			s.log.Warn("file name is not a date", "file", filepath.Base(f.Path), "format", layout.Pattern(), "error", err)
			skips = append(skips, Skip{Path: f.Path, Err: err})
			continue
		}
		candidates = append(candidates, schedule.Candidate{Path: f.Path, Timestamp: ts, Ext: f.Ext})
	}
	return candidates, skips, nil
}
