package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.SnapshotCache = (*File)(nil)
	_ ports.Flusher       = (*File)(nil)
	_ ports.CacheBackend  = (*FileBackend)(nil)
)

// snapshotVersion is bumped whenever the document layout changes.
const snapshotVersion = 1

// snapshotDocument is the on-disk layout of a file-backed snapshot.
type snapshotDocument struct {
	Version int                    `json:"version"`
	Watch   string                 `json:"watch"`
	Entries []domain.SnapshotEntry `json:"entries"`
}

// File is a snapshot cache persisted as one JSON document.
// Writes are buffered in memory until Flush.
type File struct {
	*Memory
	path  string
	watch string
	dirty bool
}

// OpenFile loads the snapshot stored at path. A missing file yields an empty cache.
func OpenFile(path, watch string) (*File, error) {
	f := &File{
		Memory: NewMemory(),
		path:   filepath.Clean(path),
		watch:  watch,
	}
	if err := f.load(); err != nil {
		return nil, errors.Join(domain.ErrCacheBackendFailed, zerr.With(err, "path", f.path))
	}
	return f, nil
}

func (f *File) load() error {
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	if len(data) == 0 {
		return nil
	}

	var doc snapshotDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}

	for _, e := range doc.Entries {
		_ = f.Memory.Set(e.ID, e.Entry)
	}
	return nil
}

// Set records the entry and marks the snapshot dirty.
func (f *File) Set(id domain.ResourceID, entry domain.CacheEntry) error {
	f.dirty = true
	return f.Memory.Set(id, entry)
}

// Remove deletes the entry and marks the snapshot dirty.
func (f *File) Remove(id domain.ResourceID) error {
	f.dirty = true
	return f.Memory.Remove(id)
}

// Rebuild replaces all entries and marks the snapshot dirty.
func (f *File) Rebuild(entries []domain.SnapshotEntry) error {
	f.dirty = true
	return f.Memory.Rebuild(entries)
}

// Flush writes the snapshot to disk if it changed since the last flush.
// The document is written to a temporary file and renamed into place.
func (f *File) Flush() error {
	if !f.dirty {
		return nil
	}

	data, err := json.MarshalIndent(snapshotDocument{
		Version: snapshotVersion,
		Watch:   f.watch,
		Entries: f.snapshot(),
	}, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrCacheBackendFailed, zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error()))
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return errors.Join(domain.ErrCacheBackendFailed, zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()))
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return errors.Join(domain.ErrCacheBackendFailed, zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()))
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.Join(domain.ErrCacheBackendFailed, zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(domain.ErrCacheBackendFailed, zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()))
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return errors.Join(domain.ErrCacheBackendFailed, zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()))
	}

	f.dirty = false
	return nil
}

// FileBackend stores one JSON snapshot per watch below a directory.
type FileBackend struct {
	dir    string
	caches map[string]*File
}

// NewFileBackend creates a backend rooted at dir. The directory is created on first flush.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{
		dir:    filepath.Clean(dir),
		caches: make(map[string]*File),
	}
}

// Cache opens the snapshot of the named watch.
func (b *FileBackend) Cache(name string) (ports.SnapshotCache, error) {
	if c, ok := b.caches[name]; ok {
		return c, nil
	}
	c, err := OpenFile(b.filename(name), name)
	if err != nil {
		return nil, err
	}
	b.caches[name] = c
	return c, nil
}

// Purge deletes every stored snapshot and forgets open caches.
func (b *FileBackend) Purge() error {
	if err := os.RemoveAll(b.dir); err != nil {
		return errors.Join(domain.ErrCacheBackendFailed, zerr.With(err, "path", b.dir))
	}
	b.caches = make(map[string]*File)
	return nil
}

// Close flushes every open cache.
func (b *FileBackend) Close() error {
	var errs []error
	for _, c := range b.caches {
		if err := c.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (b *FileBackend) filename(name string) string {
	hash := sha256.Sum256([]byte(name))
	return filepath.Join(b.dir, hex.EncodeToString(hash[:])+".json")
}
