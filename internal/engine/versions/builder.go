// Package versions builds the package name to version string mapping.
package versions

import (
	"iter"
	"sync/atomic"

	"go.trai.ch/pkgver/internal/core/domain"
)

// Pairs returns the (package name, version string) sequence for snapshot and root.
//
// Production records come first, then development records, then exactly one
// pair for the root package. The sequence is single-pass: ranging over it a
// second time yields nothing.
func Pairs(snapshot *domain.LockSnapshot, root *domain.RootPackage) iter.Seq2[string, string] {
	var consumed atomic.Bool
	return func(yield func(string, string) bool) {
		if consumed.Swap(true) {
			return
		}
		for _, records := range [][]domain.LockedPackage{snapshot.Packages, snapshot.PackagesDev} {
			for _, pkg := range records {
				if !yield(pkg.Name, pkg.VersionString()) {
					return
				}
			}
		}
		yield(root.Name, root.VersionString())
	}
}

// Build collects Pairs into an ordered VersionMap.
// A root package sharing its name with a dependency overrides that entry.
func Build(snapshot *domain.LockSnapshot, root *domain.RootPackage) *domain.VersionMap {
	return domain.CollectVersions(Pairs(snapshot, root))
}

// ShouldGenerate reports whether the project depends on this tool directly.
// Environments that only carry the tool transitively must not get a version file.
func ShouldGenerate(versions *domain.VersionMap) bool {
	return versions.Has(domain.CoordinatorPackage)
}
