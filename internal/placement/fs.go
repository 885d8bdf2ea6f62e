// Package placement turns matched files into collision-free destination paths
// and moves them there.
package placement

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/spf13/afero"
)

//go:generate mockgen -destination=mocks/mock_filesystem.go -package=mocks . FileSystem

// FileSystem is the only filesystem surface the planner and relocator use.
type FileSystem interface {
	Exists(path string) (bool, error)
	MkdirAll(path string) error
	Move(src, dst string) error
}

// AferoFS implements FileSystem on top of an afero.Fs.
type AferoFS struct {
	fs afero.Fs
}

// NewFS wraps fs.
func NewFS(fs afero.Fs) *AferoFS {
	return &AferoFS{fs: fs}
}

// OS returns a FileSystem backed by the real operating system.
func OS() *AferoFS {
	return NewFS(afero.NewOsFs())
}

// Afero returns the underlying afero.Fs.
func (a *AferoFS) Afero() afero.Fs {
	return a.fs
}

// Exists reports whether anything (file or directory) is present at path.
func (a *AferoFS) Exists(path string) (bool, error) {
	_, err := a.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// MkdirAll creates path and any missing parents.
func (a *AferoFS) MkdirAll(path string) error {
	return a.fs.MkdirAll(path, 0755)
}

// Move renames src to dst, copying and deleting when the rename crosses devices.
func (a *AferoFS) Move(src, dst string) error {
	err := a.fs.Rename(src, dst)
	if err == nil || !errors.Is(err, syscall.EXDEV) {
		return err
	}
	if err := copyFile(a.fs, src, dst); err != nil {
		return err
	}
	return a.fs.Remove(src)
}

// copyFile copies src to dst, keeping mode and modification time.
// It refuses to overwrite dst and removes a partial copy on failure.
func copyFile(fs afero.Fs, src, dst string) error {
	info, err := fs.Stat(src)
	if err != nil {
		return fmt.Errorf("%w: stat source: %v", ErrCopyFailed, err)
	}

	in, err := fs.Open(src)
	if err != nil {
		return fmt.Errorf("%w: open source: %v", ErrCopyFailed, err)
	}
	defer func() { _ = in.Close() }()

	out, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("%w: create destination: %v", ErrCopyFailed, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = fs.Remove(dst)
		return fmt.Errorf("%w: copy content: %v", ErrCopyFailed, err)
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		_ = fs.Remove(dst)
		return fmt.Errorf("%w: sync: %v", ErrCopyFailed, err)
	}
	if err := out.Close(); err != nil {
		_ = fs.Remove(dst)
		return fmt.Errorf("%w: close: %v", ErrCopyFailed, err)
	}

	_ = fs.Chtimes(dst, info.ModTime(), info.ModTime())
	return nil
}
