// Package schedule holds the weekly class schedule and assigns date-stamped
// files to the class whose slot they fall into.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday is an ISO-8601 day of week: Monday=1 through Sunday=7.
// Config.txt weekday integers use the same numbering.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	// time.Weekday has Sunday=0; ISO Sunday is 7.
	return time.Weekday(int(d) % 7).String()
}

// Valid reports whether d is within 1..7.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// ParseWeekday parses an ISO weekday integer.
func ParseWeekday(s string) (Weekday, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
	}
	d := Weekday(n)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %d is outside 1..7", ErrInvalidWeekday, n)
	}
	return d, nil
}

// Days is a set of weekdays.
type Days uint8

// NewDays returns the set holding days.
func NewDays(days ...Weekday) Days {
	var s Days
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

// With returns s with d added. Invalid days are ignored.
func (s Days) With(d Weekday) Days {
	if !d.Valid() {
		return s
	}
	return s | 1<<uint(d)
}

// Has reports whether d is in the set.
func (s Days) Has(d Weekday) bool {
	return d.Valid() && s&(1<<uint(d)) != 0
}

// List returns the days in ascending order.
func (s Days) List() []Weekday {
	var out []Weekday
	for d := Monday; d <= Sunday; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s Days) String() string {
	days := s.List()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}

// Entry is one recurring weekly slot ("class") files can be routed to.
type Entry struct {
	Name  string
	Start float64 // minutes since midnight
	Days  Days
}

func (e Entry) String() string {
	return fmt.Sprintf("%s at %s on %s", e.Name, FormatTimeOfDay(e.Start), e.Days)
}

// Candidate is a scanned file together with the timestamp parsed from its name.
type Candidate struct {
	Path      string
	Timestamp time.Time
	Ext       string // without leading dot
}

// Assignment records which entry claimed a file and the delta it was claimed with.
type Assignment struct {
	Destination string
	Delta       float64
}

// MatchedFile is a candidate after matching. Assignment is nil when no entry matched.
type MatchedFile struct {
	Candidate
	Assignment *Assignment
}

// Assigned reports whether the file has a destination.
func (f MatchedFile) Assigned() bool {
	return f.Assignment != nil
}

// Destination returns the assigned destination or "".
func (f MatchedFile) Destination() string {
	if f.Assignment == nil {
		return ""
	}
	return f.Assignment.Destination
}
