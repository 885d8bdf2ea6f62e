// internal/config/validate.go
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validPolicies = map[string]bool{
	"first": true, "closest": true, "": true,
}

// Validate checks the settings for errors.
// Returns a slice of error messages (empty if valid).
func (s *Settings) Validate() []string {
	var errs []string

	if !validLogLevels[strings.ToLower(s.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", s.Log.Level))
	}
	if s.Log.File != "" && filepath.Base(s.Log.File) == DefaultConfigFile {
		errs = append(errs, fmt.Sprintf("log.file: must not overwrite %s", DefaultConfigFile))
	}

	if !validPolicies[strings.ToLower(s.Match.Policy)] {
		errs = append(errs, fmt.Sprintf("match.policy: must be one of first, closest; got %q", s.Match.Policy))
	}

	return errs
}

// Warnings returns non-fatal observations about a parsed schedule.
func (s *Schedule) Warnings() []string {
	var warns []string
	if len(s.Entries) == 0 {
		warns = append(warns, "no classes configured; no file will be moved")
	}
	if s.Tolerance == 0 {
		warns = append(warns, "tolerance is 0; only exact start times match")
	}
	return warns
}
