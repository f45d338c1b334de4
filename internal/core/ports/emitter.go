package ports

import "go.trai.ch/pkgver/internal/core/domain"

// Emitter defines the interface for rendering the version file.
//
//go:generate mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type Emitter interface {
	// Render returns the source text for rootName and versions.
	// Identical inputs must produce byte-identical output.
	Render(rootName string, versions *domain.VersionMap) ([]byte, error)
}
