// Package build holds version information injected at link time.
package build

// These are set with -ldflags "-X go.trai.ch/pkgver/internal/build.Version=...".
var (
	// Version is the released version of pkgver.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)
