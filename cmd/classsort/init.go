package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/classsort/internal/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Write example Config.txt and classsort.toml",
		Long: `Write an example schedule (Config.txt) and settings file (classsort.toml)
into dir, or the current directory. Existing files are never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			written, err := config.WriteDefaults(dir)
			if err != nil {
				return err
			}
			for _, p := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
			}
			return nil
		},
	}
}
