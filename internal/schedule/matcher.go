package schedule

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strings"
)

// Policy decides which of two passing entries keeps a file.
type Policy int

const (
	// PolicyFirst stores the tolerance as the match delta. Every later passing
	// entry then fails the strict comparison, so the first entry in schedule
	// order keeps the file regardless of how close the others are.
	PolicyFirst Policy = iota

	// PolicyClosest stores the actual time difference. A later entry takes the
	// file only when it is strictly closer; ties stay with the earlier entry.
	PolicyClosest
)

func (p Policy) String() string {
	switch p {
	case PolicyFirst:
		return "first"
	case PolicyClosest:
		return "closest"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses "first" or "closest". An empty string is PolicyFirst.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "first":
		return PolicyFirst, nil
	case "closest":
		return PolicyClosest, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Delta returns the value recorded for a passing match.
func (p Policy) Delta(diff, tolerance float64) float64 {
	if p == PolicyClosest {
		return diff
	}
	return tolerance
}

// Better reports whether candidate should replace current.
func (p Policy) Better(current *Assignment, candidate Assignment) bool {
	if current == nil || math.IsNaN(current.Delta) {
		return true
	}
	return candidate.Delta < current.Delta
}

// Matcher assigns candidates to schedule entries.
type Matcher struct {
	tolerance float64
	policy    Policy
	log       *slog.Logger
}

// NewMatcher creates a matcher. tolerance is in minutes.
func NewMatcher(tolerance float64, policy Policy, log *slog.Logger) *Matcher {
	if log == nil {
		log = slog.Default()
	}
	return &Matcher{tolerance: tolerance, policy: policy, log: log}
}

// Match pairs every entry with every file, entries outermost, and returns the
// files in input order with their assignment. Files no entry claims keep a nil
// Assignment.
func (m *Matcher) Match(entries []Entry, files []Candidate) []MatchedFile {
	out := make([]MatchedFile, len(files))
	for i, f := range files {
		out[i] = MatchedFile{Candidate: f}
	}

	for _, e := range entries {
		for i := range out {
			f := &out[i]
			name := filepath.Base(f.Path)

			day := ISOWeekday(f.Timestamp)
			if !e.Days.Has(day) {
				m.log.Debug("class does not occur on file day", "class", e.Name, "file", name, "day", day)
				continue
			}

			diff := math.Abs(MinutesSinceMidnight(f.Timestamp) - e.Start)
			if diff > m.tolerance {
				m.log.Debug("outside tolerance", "class", e.Name, "file", name, "difference_min", diff)
				continue
			}

			candidate := Assignment{Destination: e.Name, Delta: m.policy.Delta(diff, m.tolerance)}
			if !m.policy.Better(f.Assignment, candidate) {
				m.log.Debug("file already has destination", "class", e.Name, "file", name, "destination", f.Destination())
				continue
			}
			f.Assignment = &candidate
			m.log.Debug("file located", "class", e.Name, "file", name, "difference_min", diff)
		}
	}

	return out
}
