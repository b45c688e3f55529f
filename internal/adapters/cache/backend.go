package cache

import (
	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheBackendFactory = (*Factory)(nil)

// Factory opens the cache backend named in the configuration.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open returns the backend selected by cfg.Backend, rooted at cfg.StatePath.
func (f *Factory) Open(cfg *domain.Config) (ports.CacheBackend, error) {
	switch cfg.Backend {
	case domain.BackendMemory:
		return NewMemoryBackend(), nil
	case domain.BackendFile, "":
		return NewFileBackend(domain.SnapshotDirPath(cfg.StatePath)), nil
	case domain.BackendSQLite:
		return OpenSQLiteBackend(domain.SnapshotDBPath(cfg.StatePath))
	default:
		return nil, zerr.With(domain.ErrUnknownCacheBackend, "backend", cfg.Backend)
	}
}
