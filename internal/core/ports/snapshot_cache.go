package ports

import "go.trai.ch/rewatch/internal/core/domain"

// SnapshotCache stores the last known state of every resource of one watch.
//
// Implementations are not required to be safe for concurrent passes; the
// detector serialises access.
//
//go:generate go run go.uber.org/mock/mockgen -source=snapshot_cache.go -destination=mocks/mock_snapshot_cache.go -package=mocks
type SnapshotCache interface {
	// Get returns the entry for id and whether it exists.
	Get(id domain.ResourceID) (domain.CacheEntry, bool, error)
	// Set creates or overwrites the entry for id.
	Set(id domain.ResourceID, entry domain.CacheEntry) error
	// Has reports whether an entry exists for id.
	Has(id domain.ResourceID) (bool, error)
	// Remove deletes the entry for id. Removing a missing id is not an error.
	Remove(id domain.ResourceID) error
	// AllIDs returns the cached ids in insertion order.
	AllIDs() ([]domain.ResourceID, error)
	// Rebuild discards every entry and reseeds the cache with entries.
	Rebuild(entries []domain.SnapshotEntry) error
}

// Flusher is implemented by caches that buffer writes.
// The detector calls Flush at the end of every pass.
type Flusher interface {
	Flush() error
}

// CacheBackend opens snapshot caches by watch name.
type CacheBackend interface {
	// Cache returns the snapshot cache for the named watch.
	Cache(name string) (SnapshotCache, error)
	// Purge drops every stored snapshot.
	Purge() error
	// Close releases resources held by the backend.
	Close() error
}

// CacheBackendFactory opens the backend selected by the configuration.
type CacheBackendFactory interface {
	// Open returns the backend for cfg.
	Open(cfg *domain.Config) (CacheBackend, error)
}
