// Package sorter runs a full sort or rename pass: scan, match, plan, move.
package sorter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/afero"

	"github.com/vmunix/classsort/internal/config"
	"github.com/vmunix/classsort/internal/placement"
	"github.com/vmunix/classsort/internal/reverse"
	"github.com/vmunix/classsort/internal/scan"
	"github.com/vmunix/classsort/internal/schedule"
)

// Options controls a run.
type Options struct {
	WorkDir         string   // scanned in sort mode; class folders are created here
	Exclude         []string // file names never picked up (config and log files)
	Policy          schedule.Policy
	DryRun          bool
	SkipUnparseable bool           // rename mode: skip instead of abort
	Location        *time.Location // zone file names are read in; nil is Local
}

// Sorter moves files according to a parsed Config.txt.
type Sorter struct {
	cfg  *config.Schedule
	opts Options
	fs   *placement.AferoFS
	log  *slog.Logger
}

// New creates a sorter operating on fs.
func New(cfg *config.Schedule, fs afero.Fs, opts Options, log *slog.Logger) *Sorter {
	if log == nil {
		log = slog.Default()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Sorter{cfg: cfg, opts: opts, fs: placement.NewFS(fs), log: log}
}

func (s *Sorter) scanner() *scan.Scanner {
	return scan.New(s.fs.Afero(), s.cfg.Extensions, s.opts.Exclude, s.log)
}

// Sort assigns every dated file in WorkDir to a class and moves it into
// WorkDir/<class>/. Files with no class stay where they are. A failed move is
// recorded in the stats and the run carries on.
func (s *Sorter) Sort(ctx context.Context) (*Stats, error) {
	s.log.Info("sort started", "dir", s.opts.WorkDir, "classes", len(s.cfg.Entries), "tolerance_min", s.cfg.Tolerance, "policy", s.opts.Policy)

	candidates, skips, err := s.scanner().Candidates(s.opts.WorkDir, s.cfg.InputFormat, s.opts.Location)
	if err != nil {
		return nil, err
	}
	stats := &Stats{Found: len(candidates) + len(skips), Skipped: len(skips)}

	for _, c := range candidates {
		s.log.Debug("candidate", "file", filepath.Base(c.Path), "timestamp", c.Timestamp)
	}

	matcher := schedule.NewMatcher(s.cfg.Tolerance, s.opts.Policy, s.log)
	files := matcher.Match(s.cfg.Entries, candidates)

	// Earlier recordings claim the unsuffixed name.
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Timestamp.Before(files[j].Timestamp)
	})

	planner := placement.NewPlanner(s.fs, s.opts.WorkDir, s.cfg.OutputFormat)
	relocator := placement.NewRelocator(s.fs, s.log)

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		name := filepath.Base(f.Path)
		if !f.Assigned() {
			stats.Unmatched++
			s.log.Info("no class matched", "file", name, "timestamp", f.Timestamp)
			continue
		}
		stats.Matched++

		dest, _, err := planner.Plan(f)
		if err != nil {
			stats.fail(f.Path, err)
			s.log.Error("plan failed", "file", name, "class", f.Destination(), "error", err)
			continue
		}
		s.move(stats, relocator, f.Path, dest)
	}

	s.log.Info("sort complete", "found", stats.Found, "matched", stats.Matched, "unmatched", stats.Unmatched, "moved", stats.Moved, "failed", stats.Failed())
	return stats, nil
}

// Rename reads the timestamp back out of every sorted file in srcDir and
// moves it to dstDir, labelled with dstDir's name. Relative directories are
// resolved against WorkDir.
//
// Unless SkipUnparseable is set, a single unreadable name aborts the run
// before any file is moved.
func (s *Sorter) Rename(ctx context.Context, srcDir, dstDir string) (*Stats, error) {
	srcDir = s.resolve(srcDir)
	dstDir = s.resolve(dstDir)
	s.log.Info("rename started", "src", srcDir, "dest", dstDir)

	files, err := s.scanner().List(srcDir)
	if err != nil {
		return nil, err
	}
	stats := &Stats{Found: len(files)}

	label := placement.SanitizeLabel(filepath.Base(dstDir))
	if label == "" {
		return stats, fmt.Errorf("%w: %q", placement.ErrEmptyLabel, dstDir)
	}

	var targets []placement.Target
	var sources []string
	for _, f := range files {
		ts, err := reverse.Parse(f.Base, s.cfg.OutputFormat, s.opts.Location)
		if err != nil {
			if !s.opts.SkipUnparseable {
				s.log.Error("cannot parse sorted file name", "file", f.Path, "format", s.cfg.OutputFormat.Pattern(), "error", err)
				return stats, fmt.Errorf("%s: %w", f.Path, err)
			}
			stats.Skipped++
			s.log.Warn("skipping unparseable file", "file", f.Path, "error", err)
			continue
		}
		targets = append(targets, placement.Target{Dir: dstDir, Label: label, Timestamp: ts, Ext: f.Ext})
		sources = append(sources, f.Path)
	}
	stats.Matched = len(targets)

	planner := placement.NewPlanner(s.fs, s.opts.WorkDir, s.cfg.OutputFormat)
	relocator := placement.NewRelocator(s.fs, s.log)

	for i, t := range targets {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		dest, err := planner.Resolve(t)
		if err != nil {
			stats.fail(sources[i], err)
			s.log.Error("plan failed", "file", sources[i], "error", err)
			continue
		}
		s.move(stats, relocator, sources[i], dest)
	}

	s.log.Info("rename complete", "found", stats.Found, "moved", stats.Moved, "skipped", stats.Skipped, "failed", stats.Failed())
	return stats, nil
}

func (s *Sorter) move(stats *Stats, r *placement.Relocator, src, dest string) {
	if s.opts.DryRun {
		stats.Planned++
		s.log.Info("would move", "src", src, "dest", dest)
		return
	}
	if err := r.Relocate(src, dest); err != nil {
		stats.fail(src, err)
		s.log.Error("move failed", "src", src, "dest", dest, "error", err)
		return
	}
	stats.Moved++
	s.log.Info("moved", "src", src, "dest", dest)
}

func (s *Sorter) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(s.opts.WorkDir, dir)
}
