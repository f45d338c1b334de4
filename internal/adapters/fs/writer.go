// Package fs persists the generated version file.
package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pkgver/internal/core/domain"
	"go.trai.ch/pkgver/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	noticeSkipped  = "package not found (probably scheduled for removal); generation of version file skipped"
	noticeStarting = "generating version file..."
	noticeDone     = "...done generating version file"
)

var _ ports.ArtifactWriter = (*Writer)(nil)

// Writer implements ports.ArtifactWriter.
type Writer struct {
	fs     FileSystem
	logger ports.Logger
}

// NewWriter creates a Writer on the host filesystem.
func NewWriter(logger ports.Logger) *Writer {
	return &Writer{fs: NewOSFS(), logger: logger}
}

// NewWriterWithFS creates a Writer on fsys.
func NewWriterWithFS(fsys FileSystem, logger ports.Logger) *Writer {
	return &Writer{fs: fsys, logger: logger}
}

// Write overwrites path with content and sets its mode to domain.ArtifactFilePerm.
// A missing parent directory means the tool is being removed; the write is
// skipped with a notice. Parent directories are never created.
func (w *Writer) Write(path string, content []byte) (domain.WriteOutcome, error) {
	dir := filepath.Dir(path)
	if _, err := w.fs.Stat(dir); err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			w.logger.Info(noticeSkipped)
			return domain.OutcomeSkipped, nil
		}
		return domain.OutcomeNone, zerr.With(zerr.Wrap(err, domain.ErrArtifactStatFailed.Error()), "path", dir)
	}

	w.logger.Info(noticeStarting)

	if err := w.fs.WriteFile(path, content, domain.ArtifactFilePerm); err != nil {
		return domain.OutcomeNone, zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "path", path)
	}

	// WriteFile leaves the mode of an existing file alone and applies the umask.
	if err := w.fs.Chmod(path, domain.ArtifactFilePerm); err != nil {
		return domain.OutcomeNone, zerr.With(zerr.Wrap(err, domain.ErrArtifactChmodFailed.Error()), "path", path)
	}

	w.logger.Info(noticeDone)
	return domain.OutcomeWritten, nil
}

// Digest returns the xxhash of the file at path. ok is false when it does not exist.
func (w *Writer) Digest(path string) (uint64, bool, error) {
	f, err := w.fs.Open(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, zerr.With(zerr.Wrap(err, domain.ErrArtifactReadFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, false, zerr.With(zerr.Wrap(err, domain.ErrArtifactReadFailed.Error()), "path", path)
	}

	return hasher.Sum64(), true, nil
}

// ContentDigest returns the digest Digest would report for a file holding content.
func ContentDigest(content []byte) uint64 {
	return xxhash.Sum64(content)
}
