package domain

import "path/filepath"

const (
	// ToolVendor is the vendor segment of this tool's package name.
	ToolVendor = "trai"

	// ToolName is the name segment of this tool's package name.
	ToolName = "pkgver"

	// CoordinatorPackage is this tool's own package name as it appears in lock data.
	CoordinatorPackage = ToolVendor + "/" + ToolName

	// SourceDirName is the source directory inside an installed package.
	SourceDirName = "src"

	// NamespacePath is the directory, and Go package name, of the generated file.
	NamespacePath = "packageversions"

	// ArtifactFileName is the name of the generated file.
	ArtifactFileName = "Versions.go"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "pkgver.yaml"

	// DefaultVendorDir is the vendor directory used when none is configured.
	DefaultVendorDir = "vendor"

	// DefaultLockFile is the lock file used when none is configured.
	DefaultLockFile = "composer.lock"

	// ArtifactFilePerm is the mode of the generated file (rw-rw-r--).
	ArtifactFilePerm = 0o664

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// VendoredToolPath returns the location of this tool's sources inside vendorDir.
func VendoredToolPath(vendorDir string) string {
	return filepath.Join(vendorDir, ToolVendor, ToolName)
}

// ArtifactRelPath returns the path of the generated file relative to an install path.
// It joins src, packageversions and Versions.go.
func ArtifactRelPath() string {
	return filepath.Join(SourceDirName, NamespacePath, ArtifactFileName)
}
