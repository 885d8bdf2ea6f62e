// Package reverse recovers timestamps from names produced by the placement
// planner, so sorted files can be renamed into another folder.
package reverse

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/vmunix/classsort/pkg/datefmt"
)

// ErrUnparseable indicates a name that is not "<label> <timestamp>".
var ErrUnparseable = errors.New("file name does not match output format")

// partPattern matches the collision suffix the planner appends.
var partPattern = regexp.MustCompile(` PART [0-9]+$`)

// Split separates "<label> <timestamp>[ PART n]" at its first space.
func Split(base string) (label, stamp string, err error) {
	label, stamp, ok := strings.Cut(base, " ")
	if !ok || label == "" || stamp == "" {
		return "", "", fmt.Errorf("%w: %q has no label", ErrUnparseable, base)
	}
	return label, stamp, nil
}

// Parse returns the timestamp encoded in base, a file name without extension.
// A trailing PART suffix is ignored. The label may itself contain spaces: when
// the text after the first space does not parse, each later space is tried in
// turn and the first stamp that parses wins.
func Parse(base string, layout *datefmt.Layout, loc *time.Location) (time.Time, error) {
	_, stamp, err := Split(base)
	if err != nil {
		return time.Time{}, err
	}

	var firstErr error
	for {
		ts, err := parseStamp(stamp, layout, loc)
		if err == nil {
			return ts, nil
		}
		if firstErr == nil {
			firstErr = err
		}
		_, rest, ok := strings.Cut(stamp, " ")
		if !ok || rest == "" {
			break
		}
		stamp = rest
	}
	return time.Time{}, fmt.Errorf("%w: %v", ErrUnparseable, firstErr)
}

func parseStamp(stamp string, layout *datefmt.Layout, loc *time.Location) (time.Time, error) {
	ts, err := layout.Parse(stamp, loc)
	if err == nil {
		return ts, nil
	}
	if trimmed := partPattern.ReplaceAllString(stamp, ""); trimmed != stamp {
		if ts, terr := layout.Parse(trimmed, loc); terr == nil {
			return ts, nil
		}
	}
	return time.Time{}, err
}
