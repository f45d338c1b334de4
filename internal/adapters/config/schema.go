package config

// Configfile represents the structure of the pkgver.yaml configuration file.
type Configfile struct {
	Version   string   `yaml:"version"`
	VendorDir string   `yaml:"vendor-dir"`
	LockFile  string   `yaml:"lock-file"`
	Root      *RootDTO `yaml:"root"`
}

// RootDTO describes the root package. AliasOf nests the aliased descriptor.
type RootDTO struct {
	Name            string   `yaml:"name"`
	PrettyVersion   string   `yaml:"pretty-version"`
	SourceReference string   `yaml:"source-reference"`
	AliasOf         *RootDTO `yaml:"alias-of"`
}

// supportedVersion is the only config schema version.
const supportedVersion = "1"
