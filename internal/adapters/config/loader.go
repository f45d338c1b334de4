// Package config provides the configuration loader for pkgver.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"go.trai.ch/pkgver/internal/core/domain"
	"go.trai.ch/pkgver/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader reading from the real filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// NewLoaderWithFS creates a new Loader reading from fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load resolves the configuration for a run started in cwd.
// An explicit configPath must exist. Without one, pkgver.yaml is searched
// from cwd upwards, and defaults relative to cwd are used when none is found.
func (l *Loader) Load(cwd, configPath string) (*domain.Config, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetRoot.Error())
	}

	if configPath != "" {
		if !filepath.IsAbs(configPath) {
			configPath = filepath.Join(absCwd, configPath)
		}
		return l.loadConfigfile(filepath.Clean(configPath))
	}

	found, ok := l.findConfiguration(absCwd)
	if !ok {
		return defaults(absCwd), nil
	}
	return l.loadConfigfile(found)
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) loadConfigfile(configPath string) (*domain.Config, error) {
	var configfile Configfile
	if err := l.readAndUnmarshalYAML(configPath, &configfile); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if configfile.Version != "" && configfile.Version != supportedVersion {
		l.Logger.Warn(fmt.Sprintf("unsupported version %q in %s, reading it as version %s",
			configfile.Version, domain.ConfigFileName, supportedVersion))
	}

	configDir := filepath.Dir(configPath)
	cfg := &domain.Config{
		VendorDir: resolvePath(configDir, configfile.VendorDir, domain.DefaultVendorDir),
		LockFile:  resolvePath(configDir, configfile.LockFile, domain.DefaultLockFile),
		Source:    configPath,
	}

	if configfile.Root != nil {
		root, err := buildRoot(configfile.Root, "root")
		if err != nil {
			return nil, zerr.With(err, "path", configPath)
		}
		cfg.Root = *root
	}

	return cfg, nil
}

func defaults(cwd string) *domain.Config {
	return &domain.Config{
		VendorDir: filepath.Join(cwd, domain.DefaultVendorDir),
		LockFile:  filepath.Join(cwd, domain.DefaultLockFile),
	}
}

// buildRoot converts the descriptor chain. Nested descriptors must be named;
// the outermost one may leave the name to a command line override.
func buildRoot(dto *RootDTO, field string) (*domain.RootPackage, error) {
	root := &domain.RootPackage{
		Name:            dto.Name,
		PrettyVersion:   dto.PrettyVersion,
		SourceReference: dto.SourceReference,
	}

	if dto.AliasOf != nil {
		aliasField := field + ".alias-of"
		if dto.AliasOf.Name == "" {
			return nil, zerr.With(domain.ErrMissingRootName, "field", aliasField)
		}
		aliased, err := buildRoot(dto.AliasOf, aliasField)
		if err != nil {
			return nil, err
		}
		root.AliasOf = aliased
	}

	return root, nil
}

func resolvePath(configDir, configured, fallback string) string {
	if configured == "" {
		configured = fallback
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(configDir, configured))
}

// readAndUnmarshalYAML reads a YAML file and strictly decodes it into the target struct.
func (l *Loader) readAndUnmarshalYAML(configPath string, target *Configfile) error {
	configFile, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
