package placement

import (
	"fmt"
	"log/slog"
	"path/filepath"
)

// Relocator moves files to planned destinations.
type Relocator struct {
	fs  FileSystem
	log *slog.Logger
}

// NewRelocator creates a relocator.
func NewRelocator(fs FileSystem, log *slog.Logger) *Relocator {
	if log == nil {
		log = slog.Default()
	}
	return &Relocator{fs: fs, log: log}
}

// Relocate creates the parent directories of dst and moves src there.
// Errors wrap ErrMoveFailed; callers decide whether to carry on.
func (r *Relocator) Relocate(src, dst string) error {
	if err := r.fs.MkdirAll(filepath.Dir(dst)); err != nil {
		return fmt.Errorf("%w: create directory: %v", ErrMoveFailed, err)
	}
	if err := r.fs.Move(src, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMoveFailed, err)
	}
	r.log.Debug("file moved", "src", src, "dest", dst)
	return nil
}
