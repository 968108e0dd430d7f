package ports

import "go.trai.ch/noxy/internal/core/domain"

// ConfigLoader defines the interface for loading the runner configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration at path, layers environment overrides on top
	// and returns the resolved options. A missing file yields the defaults.
	Load(path string) (*domain.Options, error)
}
