package placement

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vmunix/classsort/internal/schedule"
	"github.com/vmunix/classsort/pkg/datefmt"
)

// PartSuffix separates the formatted name from the collision counter.
const PartSuffix = " PART "

// maxParts bounds the collision search.
const maxParts = 10000

// Target describes a file to be placed under Dir.
type Target struct {
	Dir       string
	Label     string
	Timestamp time.Time
	Ext       string // without leading dot
}

// Planner computes destination paths. A path it returns is free on the
// filesystem and has not been handed out earlier by the same Planner.
//
// Nothing is locked between the existence check and the later move, so another
// process can still take the path in between.
type Planner struct {
	fs      FileSystem
	base    string
	layout  *datefmt.Layout
	claimed map[string]bool
}

// NewPlanner creates a planner placing class folders under base and naming
// files with layout.
func NewPlanner(fs FileSystem, base string, layout *datefmt.Layout) *Planner {
	return &Planner{
		fs:      fs,
		base:    base,
		layout:  layout,
		claimed: make(map[string]bool),
	}
}

// FileName renders "<label> <timestamp>[ PART n][.ext]". part 0 has no suffix.
func (p *Planner) FileName(label string, ts time.Time, part int, ext string) string {
	name := label + " " + p.layout.Format(ts)
	if part > 0 {
		name += PartSuffix + strconv.Itoa(part)
	}
	if ext != "" {
		name += "." + ext
	}
	return name
}

// Plan returns the destination for an assigned file: base/<label>/<name>.
// ok is false for files without an assignment, which stay where they are.
func (p *Planner) Plan(f schedule.MatchedFile) (path string, ok bool, err error) {
	if !f.Assigned() {
		return "", false, nil
	}

	label := SanitizeLabel(f.Destination())
	if label == "" {
		return "", false, fmt.Errorf("%w: %q", ErrEmptyLabel, f.Destination())
	}
	dir := filepath.Join(p.base, label)
	if err := ValidatePath(dir, p.base); err != nil {
		return "", false, err
	}

	path, err = p.Resolve(Target{Dir: dir, Label: label, Timestamp: f.Timestamp, Ext: f.Ext})
	if err != nil {
		return "", false, err
	}
	return path, true, nil
}

// Resolve returns the first free name for t, trying the unsuffixed name and
// then PART 1, PART 2, and so on.
func (p *Planner) Resolve(t Target) (string, error) {
	for part := 0; part < maxParts; part++ {
		candidate := filepath.Join(t.Dir, p.FileName(t.Label, t.Timestamp, part, t.Ext))
		if p.claimed[candidate] {
			continue
		}
		exists, err := p.fs.Exists(candidate)
		if err != nil {
			return "", fmt.Errorf("check %s: %w", candidate, err)
		}
		if exists {
			continue
		}
		p.claimed[candidate] = true
		return candidate, nil
	}
	return "", fmt.Errorf("%w: %s in %s", ErrTooManyParts, t.Label, t.Dir)
}
