package ports

import "go.trai.ch/pkgver/internal/core/domain"

// ConfigLoader defines the interface for loading the generation inputs.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration for the project at cwd.
	// configPath selects an explicit config file; when empty the loader
	// searches cwd and its parents and falls back to defaults.
	Load(cwd, configPath string) (*domain.Config, error)
}
