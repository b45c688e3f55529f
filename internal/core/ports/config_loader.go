package ports

import "go.trai.ch/rewatch/internal/core/domain"

// ConfigLoader defines the interface for loading the rewatch configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers the configuration from cwd, or reads path when it is not empty.
	Load(cwd, path string) (*domain.Config, error)
}
