package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/vmunix/classsort/internal/config"
	"github.com/vmunix/classsort/internal/schedule"
	"github.com/vmunix/classsort/internal/sorter"
)

// errPartial reports a completed run in which some files could not be moved.
var errPartial = errors.New("some files could not be moved")

type rootFlags struct {
	configPath      string
	settingsPath    string
	logFile         string
	logLevel        string
	policy          string
	dryRun          bool
	verbose         bool
	skipUnparseable bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "classsort [<source-dir> <dest-dir>]",
		Short: "Sort date-stamped recordings into class folders",
		Long: `classsort - sort date-stamped files into folders by weekly class schedule

With no arguments, every file in the current directory whose name parses with
the Config.txt input format is matched against the class schedule and moved
to <class>/<class> <timestamp>.<ext>.

With <source-dir> <dest-dir>, files previously sorted into source-dir have
their timestamp read back from their names and are moved to dest-dir. A
source folder named like a subcommand (check, init, version, help,
completion) must follow "--", otherwise the subcommand runs.

Examples:
  classsort                    # Sort the current directory
  classsort --dry-run          # Show what would move
  classsort Algebra Archive    # Move sorted Algebra files to Archive
  classsort -- check Archive   # Rename from a folder called "check"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected no arguments or <source-dir> <dest-dir>, got %d", len(args))
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, f, args)
		},
	}

	cmd.PersistentFlags().StringVar(&f.configPath, "config", config.DefaultConfigFile, "Schedule file")
	cmd.PersistentFlags().StringVar(&f.settingsPath, "settings", "", "Settings file (default: discovered "+config.DefaultSettingsFile+")")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "Run log file (default "+config.DefaultLogFile+")")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.Flags().StringVar(&f.policy, "policy", "", "Match policy: first or closest")
	cmd.Flags().BoolVarP(&f.dryRun, "dry-run", "n", false, "Log planned moves without moving anything")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Also write the log to stderr")
	cmd.Flags().BoolVar(&f.skipUnparseable, "skip-unparseable", false, "Rename mode: skip unreadable names instead of aborting")

	cmd.Version = version
	cmd.SetVersionTemplate("classsort {{.Version}}\n")

	cmd.AddCommand(newInitCmd(), newCheckCmd(f), newVersionCmd())
	return cmd
}

// loadSettings reads the explicit settings file, or the discovered one, or
// falls back to defaults.
func loadSettings(path string) (*config.Settings, error) {
	if path == "" {
		found, err := config.Discover()
		if err != nil {
			return nil, err
		}
		if found == "" {
			return config.DefaultSettings(), nil
		}
		path = found
	}
	return config.LoadSettings(path)
}

// applyFlags lets command-line flags override the settings file.
func applyFlags(cmd *cobra.Command, f *rootFlags, s *config.Settings) {
	flags := cmd.Flags()
	if flags.Changed("log-file") {
		s.Log.File = f.logFile
	}
	if flags.Changed("log-level") {
		s.Log.Level = f.logLevel
	}
	if flags.Changed("policy") {
		s.Match.Policy = f.policy
	}
	if flags.Changed("dry-run") {
		s.Run.DryRun = f.dryRun
	}
	if flags.Changed("verbose") {
		s.Log.Stderr = f.verbose
	}
	if flags.Changed("skip-unparseable") {
		s.Rename.SkipUnparseable = f.skipUnparseable
	}
}

func runRoot(cmd *cobra.Command, f *rootFlags, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	settings, err := loadSettings(f.settingsPath)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	applyFlags(cmd, f, settings)
	if errs := settings.Validate(); len(errs) > 0 {
		return &config.ConfigError{Path: "flags", Errors: errs}
	}

	log, closeLog, err := newLogger(settings.Log, wd, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer func() { _ = closeLog() }()

	mode := "sort"
	if len(args) == 2 {
		mode = "rename"
	}
	log.Info("run started", "mode", mode, "version", version, "dry_run", settings.Run.DryRun)

	cfgPath := f.configPath
	if !filepath.IsAbs(cfgPath) {
		cfgPath = filepath.Join(wd, cfgPath)
	}
	sched, err := loadSchedule(cfgPath, log)
	if err != nil {
		log.Error("config error", "path", cfgPath, "error", err)
		return err
	}

	policy, err := schedule.ParsePolicy(settings.Match.Policy)
	if err != nil {
		return err
	}

	s := sorter.New(sched, afero.NewOsFs(), sorter.Options{
		WorkDir:         wd,
		Exclude:         []string{filepath.Base(cfgPath), filepath.Base(settings.Log.File)},
		Policy:          policy,
		DryRun:          settings.Run.DryRun,
		SkipUnparseable: settings.Rename.SkipUnparseable,
	}, log)

	var stats *sorter.Stats
	if mode == "sort" {
		stats, err = s.Sort(cmd.Context())
	} else {
		stats, err = s.Rename(cmd.Context(), args[0], args[1])
	}
	if stats != nil {
		printSummary(cmd.OutOrStdout(), mode, settings.Run.DryRun, stats)
	}
	if err != nil {
		return err
	}
	if stats.Failed() > 0 {
		return fmt.Errorf("%w: %d failed", errPartial, stats.Failed())
	}
	return nil
}

// loadSchedule parses Config.txt and logs its non-fatal warnings.
func loadSchedule(path string, log *slog.Logger) (*config.Schedule, error) {
	sched, err := config.LoadSchedule(path)
	if err != nil {
		return nil, err
	}
	for _, e := range sched.Entries {
		log.Info("class loaded", "class", e.Name, "start", schedule.FormatTimeOfDay(e.Start), "days", e.Days.String())
	}
	for _, w := range sched.Warnings() {
		log.Warn(w)
	}
	for _, p := range schedule.SimilarNames(sched.Entries, schedule.DefaultSimilarity) {
		log.Warn("class names look alike; files will go to separate folders", "a", p.A, "b", p.B, "similarity", fmt.Sprintf("%.2f", p.Score))
	}
	return sched, nil
}

func printSummary(w io.Writer, mode string, dryRun bool, s *sorter.Stats) {
	fmt.Fprintf(w, "%s: %d found", mode, s.Found)
	if s.Skipped > 0 {
		fmt.Fprintf(w, ", %d skipped", s.Skipped)
	}
	if mode == "sort" {
		fmt.Fprintf(w, ", %d matched, %d unmatched", s.Matched, s.Unmatched)
	}
	if dryRun {
		fmt.Fprintf(w, ", %d would move", s.Planned)
	} else {
		fmt.Fprintf(w, ", %d moved", s.Moved)
	}
	if s.Failed() > 0 {
		fmt.Fprintf(w, ", %d failed", s.Failed())
	}
	fmt.Fprintln(w)

	for _, f := range s.Failures {
		fmt.Fprintf(w, "  %s: %v\n", f.Path, f.Err)
	}
}
