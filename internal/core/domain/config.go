package domain

// Config holds the resolved inputs of a generation run.
type Config struct {
	// VendorDir is the directory the host installs dependencies into.
	VendorDir string
	// LockFile is the path of the host lock data.
	LockFile string
	// Root describes the package owning the project.
	Root RootPackage
	// Source is the config file the values came from, empty when defaults were used.
	Source string
}

// ConfigOverrides carries values given on the command line.
// Empty fields leave the loaded configuration untouched.
type ConfigOverrides struct {
	ConfigPath    string
	VendorDir     string
	LockFile      string
	RootName      string
	RootVersion   string
	RootReference string
}

// Apply copies every non-empty override into cfg.
func (o ConfigOverrides) Apply(cfg *Config) {
	if o.VendorDir != "" {
		cfg.VendorDir = o.VendorDir
	}
	if o.LockFile != "" {
		cfg.LockFile = o.LockFile
	}
	if o.RootName != "" {
		cfg.Root.Name = o.RootName
	}
	if o.RootVersion != "" {
		cfg.Root.PrettyVersion = o.RootVersion
	}
	if o.RootReference != "" {
		cfg.Root.SourceReference = o.RootReference
	}
}
