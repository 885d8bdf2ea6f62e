package placement

import "errors"

var (
	// ErrMoveFailed indicates the file could not be moved into place.
	ErrMoveFailed = errors.New("failed to move file")

	// ErrCopyFailed indicates the cross-device copy fallback failed.
	ErrCopyFailed = errors.New("failed to copy file")

	// ErrPathTraversal indicates a destination escaping the base directory.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrEmptyLabel indicates a destination label that sanitizes to nothing.
	ErrEmptyLabel = errors.New("destination label is empty")

	// ErrTooManyParts indicates no free collision suffix was found.
	ErrTooManyParts = errors.New("too many colliding destinations")
)
