// Package installpath resolves where the version file is written.
package installpath

import (
	"path/filepath"

	"go.trai.ch/pkgver/internal/core/domain"
)

// Resolve returns the directory that owns the generated version file.
//
// When the canonical root package is this tool itself, the project being
// developed is the tool's own source tree and the parent of vendorDir is
// returned. Otherwise the vendored copy of the tool is the target.
func Resolve(vendorDir string, root *domain.RootPackage) string {
	if root.Canonical().Name == domain.CoordinatorPackage {
		return filepath.Dir(filepath.Clean(vendorDir))
	}
	return domain.VendoredToolPath(vendorDir)
}

// ArtifactPath returns the path of the version file below installPath.
func ArtifactPath(installPath string) string {
	return filepath.Join(installPath, domain.ArtifactRelPath())
}
