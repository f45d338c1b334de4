package ports

import "go.trai.ch/pkgver/internal/core/domain"

// LockReader defines the interface for reading the host lock data.
//
//go:generate mockgen -source=lock_reader.go -destination=mocks/mock_lock_reader.go -package=mocks
type LockReader interface {
	// Read returns the production and development records of the lock file at path.
	// Records missing a required field make the whole read fail.
	Read(path string) (*domain.LockSnapshot, error)
}
