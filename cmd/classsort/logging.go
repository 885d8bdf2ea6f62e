package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmunix/classsort/internal/config"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger opens the run log (truncated each run) relative to wd and tees
// it to stderr when configured.
func newLogger(cfg config.LogConfig, wd string, stderr io.Writer) (*slog.Logger, func() error, error) {
	path := cfg.File
	if path == "" {
		path = config.DefaultLogFile
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(wd, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = f
	if cfg.Stderr {
		w = io.MultiWriter(f, stderr)
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Level),
	}))
	return logger, f.Close, nil
}
