// Package lock decodes the host dependency manager's lock file.
package lock

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/tidwall/jsonc"
	"go.trai.ch/pkgver/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	sectionPackages    = "packages"
	sectionPackagesDev = "packages-dev"
)

// rawLock mirrors the subset of the lock file read by pkgver.
// Pointer fields distinguish an absent key from an empty value.
type rawLock struct {
	Packages    *[]rawPackage `json:"packages"`
	PackagesDev *[]rawPackage `json:"packages-dev"`
}

type rawPackage struct {
	Name    *string       `json:"name"`
	Version *string       `json:"version"`
	Source  *rawReference `json:"source"`
	Dist    *rawReference `json:"dist"`
}

type rawReference struct {
	Reference *string `json:"reference"`
}

// Reader implements ports.LockReader for JSON lock files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read loads and decodes the lock file at path.
func (r *Reader) Read(path string) (*domain.LockSnapshot, error) {
	// #nosec G304 -- path comes from configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockReadFailed.Error()), "path", path)
	}

	snapshot, err := r.Decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return snapshot, nil
}

// Decode parses lock data. Comments and trailing commas are tolerated.
func (r *Reader) Decode(data []byte) (*domain.LockSnapshot, error) {
	var raw rawLock
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockParseFailed.Error())
	}

	if raw.Packages == nil {
		return nil, zerr.With(domain.ErrMalformedLock, "section", sectionPackages)
	}

	packages, err := convertSection(sectionPackages, *raw.Packages)
	if err != nil {
		return nil, err
	}

	var packagesDev []domain.LockedPackage
	if raw.PackagesDev != nil {
		packagesDev, err = convertSection(sectionPackagesDev, *raw.PackagesDev)
		if err != nil {
			return nil, err
		}
	}

	return &domain.LockSnapshot{Packages: packages, PackagesDev: packagesDev}, nil
}

func convertSection(section string, records []rawPackage) ([]domain.LockedPackage, error) {
	out := make([]domain.LockedPackage, 0, len(records))
	for i, rec := range records {
		pkg, field := convertPackage(rec)
		if field != "" {
			err := zerr.With(domain.ErrMalformedLock, "section", section)
			err = zerr.With(err, "index", strconv.Itoa(i))
			return nil, zerr.With(err, "field", field)
		}
		out = append(out, pkg)
	}
	return out, nil
}

// convertPackage returns the name of the first missing required field, if any.
func convertPackage(rec rawPackage) (domain.LockedPackage, string) {
	if rec.Name == nil {
		return domain.LockedPackage{}, "name"
	}
	if rec.Version == nil {
		return domain.LockedPackage{}, "version"
	}

	pkg := domain.LockedPackage{Name: *rec.Name, Version: *rec.Version}
	if rec.Source != nil {
		pkg.SourceReference = rec.Source.Reference
	}
	if rec.Dist != nil {
		pkg.DistReference = rec.Dist.Reference
	}
	return pkg, ""
}
