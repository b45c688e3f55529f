// Package cache implements snapshot cache backends.
package cache

import (
	"slices"

	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
)

var (
	_ ports.SnapshotCache = (*Memory)(nil)
	_ ports.CacheBackend  = (*MemoryBackend)(nil)
)

// Memory is an insertion-ordered in-memory snapshot cache.
type Memory struct {
	entries map[domain.ResourceID]domain.CacheEntry
	order   []domain.ResourceID
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[domain.ResourceID]domain.CacheEntry)}
}

// Get returns the entry for id.
func (m *Memory) Get(id domain.ResourceID) (domain.CacheEntry, bool, error) {
	entry, ok := m.entries[id]
	return entry, ok, nil
}

// Set creates or overwrites the entry for id. Overwrites keep the original position.
func (m *Memory) Set(id domain.ResourceID, entry domain.CacheEntry) error {
	if _, ok := m.entries[id]; !ok {
		m.order = append(m.order, id)
	}
	m.entries[id] = entry
	return nil
}

// Has reports whether id is cached.
func (m *Memory) Has(id domain.ResourceID) (bool, error) {
	_, ok := m.entries[id]
	return ok, nil
}

// Remove deletes the entry for id.
func (m *Memory) Remove(id domain.ResourceID) error {
	if _, ok := m.entries[id]; !ok {
		return nil
	}
	delete(m.entries, id)
	if i := slices.Index(m.order, id); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	return nil
}

// AllIDs returns a copy of the cached ids in insertion order.
func (m *Memory) AllIDs() ([]domain.ResourceID, error) {
	return slices.Clone(m.order), nil
}

// Rebuild replaces the whole cache with entries.
func (m *Memory) Rebuild(entries []domain.SnapshotEntry) error {
	m.entries = make(map[domain.ResourceID]domain.CacheEntry, len(entries))
	m.order = make([]domain.ResourceID, 0, len(entries))
	for _, e := range entries {
		_ = m.Set(e.ID, e.Entry)
	}
	return nil
}

// snapshot returns the entries in insertion order.
func (m *Memory) snapshot() []domain.SnapshotEntry {
	out := make([]domain.SnapshotEntry, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, domain.SnapshotEntry{ID: id, Entry: m.entries[id]})
	}
	return out
}

// MemoryBackend hands out process-lifetime caches.
type MemoryBackend struct {
	caches map[string]*Memory
}

// NewMemoryBackend creates an empty memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{caches: make(map[string]*Memory)}
}

// Cache returns the cache for the named watch, creating it on first use.
func (b *MemoryBackend) Cache(name string) (ports.SnapshotCache, error) {
	c, ok := b.caches[name]
	if !ok {
		c = NewMemory()
		b.caches[name] = c
	}
	return c, nil
}

// Purge forgets every cache.
func (b *MemoryBackend) Purge() error {
	for _, c := range b.caches {
		_ = c.Rebuild(nil)
	}
	return nil
}

// Close is a no-op.
func (b *MemoryBackend) Close() error {
	return nil
}
