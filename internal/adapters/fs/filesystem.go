package fs

import (
	"io"
	iofs "io/fs"
	"os"
)

// FileSystem abstracts the filesystem calls made by the writer.
type FileSystem interface {
	Stat(path string) (iofs.FileInfo, error)
	WriteFile(path string, data []byte, perm iofs.FileMode) error
	Chmod(path string, mode iofs.FileMode) error
	Open(path string) (io.ReadCloser, error)
}

// OSFS implements FileSystem on the host filesystem.
type OSFS struct{}

// NewOSFS creates a new OSFS.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(path)
}

// WriteFile replaces the contents of path.
func (OSFS) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// Chmod sets the mode of path.
func (OSFS) Chmod(path string, mode iofs.FileMode) error {
	return os.Chmod(path, mode)
}

// Open opens path for reading.
func (OSFS) Open(path string) (io.ReadCloser, error) {
	return os.Open(path) //nolint:gosec // Path is controlled by caller
}
