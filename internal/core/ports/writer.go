package ports

import "go.trai.ch/pkgver/internal/core/domain"

// ArtifactWriter defines the interface for persisting the version file.
//
//go:generate mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type ArtifactWriter interface {
	// Write overwrites the file at path with content.
	// If the parent directory does not exist nothing is written and
	// OutcomeSkipped is returned with a nil error.
	Write(path string, content []byte) (domain.WriteOutcome, error)

	// Digest returns a content digest of the file at path.
	// ok is false when the file does not exist.
	Digest(path string) (digest uint64, ok bool, err error)
}
