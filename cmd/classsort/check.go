package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vmunix/classsort/internal/config"
	"github.com/vmunix/classsort/internal/schedule"
)

func newCheckCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate Config.txt and settings, then print the schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(f.settingsPath)
			if err != nil {
				return fmt.Errorf("settings: %w", err)
			}

			w := cmd.OutOrStdout()
			// Warnings go to the terminal instead of the run log.
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
			sched, err := loadSchedule(f.configPath, log)
			if err != nil {
				return err
			}
			printSchedule(w, sched, settings)
			return nil
		},
	}
}

func printSchedule(w io.Writer, s *config.Schedule, settings *config.Settings) {
	fmt.Fprintf(w, "Extensions:    %v\n", s.Extensions)
	fmt.Fprintf(w, "Tolerance:     %g min\n", s.Tolerance)
	fmt.Fprintf(w, "Input format:  %s\n", s.InputFormat.Pattern())
	fmt.Fprintf(w, "Output format: %s\n", s.OutputFormat.Pattern())
	fmt.Fprintf(w, "Policy:        %s\n", settings.Match.Policy)
	fmt.Fprintf(w, "Log file:      %s\n\n", settings.Log.File)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CLASS\tSTART\tDAYS")
	for _, e := range s.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, schedule.FormatTimeOfDay(e.Start), e.Days)
	}
	_ = tw.Flush()
}
