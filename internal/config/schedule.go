// Package config loads the line-oriented Config.txt schedule file and the
// optional TOML settings file.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/vmunix/classsort/internal/schedule"
	"github.com/vmunix/classsort/pkg/datefmt"
)

// DefaultConfigFile is the schedule file name looked up in the working directory.
const DefaultConfigFile = "Config.txt"

// headerLines is the number of fixed lines before the schedule entries.
const headerLines = 4

// Schedule is the parsed Config.txt:
//
//	line 1: comma-separated file extensions (case-insensitive)
//	line 2: tolerance in minutes
//	line 3: input date pattern (file names)
//	line 4: output date pattern (destination names)
//	line 5..N: <name>,<HH:MM:SS>,<weekday>[,<weekday>...]
type Schedule struct {
	Extensions   []string
	Tolerance    float64
	InputFormat  *datefmt.Layout
	OutputFormat *datefmt.Layout
	Entries      []schedule.Entry
}

// LoadSchedule reads and parses a Config.txt file.
func LoadSchedule(path string) (*Schedule, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	defer func() { _ = f.Close() }()

	return ParseSchedule(f, path)
}

// ParseSchedule parses Config.txt content. All problems are collected into a
// single *ConfigError; path is only used for messages.
func ParseSchedule(r io.Reader, path string) (*Schedule, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if len(lines) > 0 {
		lines[0] = strings.TrimPrefix(lines[0], "\ufeff")
	}

	cfgErr := &ConfigError{Path: path}
	if len(lines) < headerLines {
		cfgErr.addf("expected at least %d header lines, got %d", headerLines, len(lines))
		return nil, cfgErr
	}

	s := &Schedule{}
	s.Extensions = parseExtensions(lines[0])
	if len(s.Extensions) == 0 {
		cfgErr.addf("line 1: no file extensions listed")
	}

	tol, err := strconv.ParseFloat(strings.TrimSpace(lines[1]), 64)
	switch {
	case err != nil:
		cfgErr.addf("line 2: tolerance %q is not a number", lines[1])
	case tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0):
		cfgErr.addf("line 2: tolerance must be a non-negative number, got %q", lines[1])
	default:
		s.Tolerance = tol
	}

	if s.InputFormat, err = datefmt.Compile(strings.TrimSpace(lines[2])); err != nil {
		cfgErr.addf("line 3: input format: %v", err)
	}
	if s.OutputFormat, err = datefmt.Compile(strings.TrimSpace(lines[3])); err != nil {
		cfgErr.addf("line 4: output format: %v", err)
	} else if strings.ContainsAny(s.OutputFormat.GoLayout(), `/\`) {
		cfgErr.addf("line 4: output format %q must not contain path separators", lines[3])
	}

	for i := headerLines; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, err := parseEntry(line)
		if err != nil {
			cfgErr.addf("line %d: %v", i+1, err)
			continue
		}
		s.Entries = append(s.Entries, entry)
	}

	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return s, nil
}

func parseExtensions(line string) []string {
	var exts []string
	for _, e := range strings.Split(line, ",") {
		e = strings.TrimPrefix(strings.TrimSpace(e), ".")
		if e != "" {
			exts = append(exts, e)
		}
	}
	return exts
}

func parseEntry(line string) (schedule.Entry, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 3 {
		return schedule.Entry{}, fmt.Errorf("expected <name>,<HH:MM:SS>,<weekday>[,<weekday>...], got %q", line)
	}

	name := strings.TrimSpace(fields[0])
	if name == "" {
		return schedule.Entry{}, errors.New("empty class name")
	}

	start, err := schedule.ParseTimeOfDay(fields[1])
	if err != nil {
		return schedule.Entry{}, fmt.Errorf("class %q: %w", name, err)
	}

	var days schedule.Days
	for _, f := range fields[2:] {
		d, err := schedule.ParseWeekday(f)
		if err != nil {
			return schedule.Entry{}, fmt.Errorf("class %q: %w", name, err)
		}
		days = days.With(d)
	}

	return schedule.Entry{Name: name, Start: start, Days: days}, nil
}
