package cache_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rewatch/internal/adapters/cache"
	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
)

var modTime = time.Unix(1_700_000_000, 123_000_000)

func entry(fp string) domain.CacheEntry {
	return domain.CacheEntry{Fingerprint: domain.Fingerprint(fp), ModTime: modTime, Size: int64(len(fp))}
}

func assertEntry(t *testing.T, want domain.CacheEntry, c ports.SnapshotCache, id domain.ResourceID) {
	t.Helper()
	got, ok, err := c.Get(id)
	require.NoError(t, err)
	require.True(t, ok, "entry %q should exist", id)
	assert.Equal(t, want.Fingerprint, got.Fingerprint)
	assert.Equal(t, want.Size, got.Size)
	assert.True(t, want.ModTime.Equal(got.ModTime), "mtime %v != %v", want.ModTime, got.ModTime)
}

func flush(t *testing.T, c ports.SnapshotCache) {
	t.Helper()
	if f, ok := c.(ports.Flusher); ok {
		require.NoError(t, f.Flush())
	}
}

// backends returns a fresh instance of every backend.
func backends(t *testing.T) map[string]ports.CacheBackend {
	t.Helper()
	dir := t.TempDir()

	sqlite, err := cache.OpenSQLiteBackend(filepath.Join(dir, "db", domain.SnapshotDBName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]ports.CacheBackend{
		domain.BackendMemory: cache.NewMemoryBackend(),
		domain.BackendFile:   cache.NewFileBackend(filepath.Join(dir, "files")),
		domain.BackendSQLite: sqlite,
	}
}

func TestSnapshotCache_Contract(t *testing.T) {
	t.Parallel()

	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			c, err := backend.Cache("src")
			require.NoError(t, err)

			ids, err := c.AllIDs()
			require.NoError(t, err)
			assert.Empty(t, ids)

			_, ok, err := c.Get("a")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, c.Set("c", entry("1")))
			require.NoError(t, c.Set("a", entry("2")))
			require.NoError(t, c.Set("b", entry("3")))
			flush(t, c)

			has, err := c.Has("a")
			require.NoError(t, err)
			assert.True(t, has)
			assertEntry(t, entry("2"), c, "a")

			// Overwrites keep the original position.
			require.NoError(t, c.Set("c", entry("44")))
			assertEntry(t, entry("44"), c, "c")

			ids, err = c.AllIDs()
			require.NoError(t, err)
			assert.Equal(t, []domain.ResourceID{"c", "a", "b"}, ids)

			require.NoError(t, c.Remove("a"))
			require.NoError(t, c.Remove("missing"))
			has, err = c.Has("a")
			require.NoError(t, err)
			assert.False(t, has)

			ids, err = c.AllIDs()
			require.NoError(t, err)
			assert.Equal(t, []domain.ResourceID{"c", "b"}, ids)
			flush(t, c)
		})
	}
}

func TestSnapshotCache_Rebuild(t *testing.T) {
	t.Parallel()

	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			c, err := backend.Cache("src")
			require.NoError(t, err)

			require.NoError(t, c.Set("old", entry("1")))
			require.NoError(t, c.Set("kept", entry("2")))
			flush(t, c)

			require.NoError(t, c.Rebuild([]domain.SnapshotEntry{
				{ID: "z", Entry: entry("9")},
				{ID: "kept", Entry: entry("8")},
			}))
			flush(t, c)

			ids, err := c.AllIDs()
			require.NoError(t, err)
			assert.Equal(t, []domain.ResourceID{"z", "kept"}, ids)
			assertEntry(t, entry("8"), c, "kept")

			has, err := c.Has("old")
			require.NoError(t, err)
			assert.False(t, has)

			require.NoError(t, c.Rebuild(nil))
			ids, err = c.AllIDs()
			require.NoError(t, err)
			assert.Empty(t, ids)
		})
	}
}

func TestSnapshotCache_WatchesAreIsolated(t *testing.T) {
	t.Parallel()

	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			a, err := backend.Cache("a")
			require.NoError(t, err)
			b, err := backend.Cache("b")
			require.NoError(t, err)

			require.NoError(t, a.Set("x", entry("1")))
			flush(t, a)

			has, err := b.Has("x")
			require.NoError(t, err)
			assert.False(t, has)

			require.NoError(t, b.Rebuild(nil))
			flush(t, b)
			has, err = a.Has("x")
			require.NoError(t, err)
			assert.True(t, has)
		})
	}
}

func TestSnapshotCache_Purge(t *testing.T) {
	t.Parallel()

	for name, backend := range backends(t) {
		t.Run(name, func(t *testing.T) {
			c, err := backend.Cache("src")
			require.NoError(t, err)
			require.NoError(t, c.Set("x", entry("1")))
			flush(t, c)

			require.NoError(t, backend.Purge())

			c, err = backend.Cache("src")
			require.NoError(t, err)
			ids, err := c.AllIDs()
			require.NoError(t, err)
			assert.Empty(t, ids)
		})
	}
}

func TestFileBackend_Persistence(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := cache.NewFileBackend(dir)
	c, err := first.Cache("src")
	require.NoError(t, err)
	require.NoError(t, c.Set("b", entry("1")))
	require.NoError(t, c.Set("a", entry("2")))
	require.NoError(t, first.Close())

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, ".json", filepath.Ext(files[0].Name()))

	second := cache.NewFileBackend(dir)
	c, err = second.Cache("src")
	require.NoError(t, err)

	ids, err := c.AllIDs()
	require.NoError(t, err)
	assert.Equal(t, []domain.ResourceID{"b", "a"}, ids)
	assertEntry(t, entry("2"), c, "a")
}

func TestFileBackend_UnflushedWritesAreNotPersisted(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := cache.NewFileBackend(dir)
	c, err := first.Cache("src")
	require.NoError(t, err)
	require.NoError(t, c.Set("a", entry("1")))

	_, err = os.Stat(dir)
	assert.ErrorIs(t, err, os.ErrNotExist, "nothing is written before a flush")
}

func TestFileBackend_Corrupt(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	backend := cache.NewFileBackend(dir)
	c, err := backend.Cache("src")
	require.NoError(t, err)
	require.NoError(t, c.Set("a", entry("1")))
	require.NoError(t, backend.Close())

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)

	//nolint:gosec // 0644 is fine for test
	err = os.WriteFile(filepath.Join(dir, files[0].Name()), []byte("{ invalid json"), 0o600)
	require.NoError(t, err)

	_, err = cache.NewFileBackend(dir).Cache("src")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCacheBackendFailed)
	assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestFileBackend_EmptyFileIsEmptyCache(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	c, err := cache.OpenFile(path, "src")
	require.NoError(t, err)
	ids, err := c.AllIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestSQLiteBackend_Persistence(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), domain.SnapshotDBName)

	first, err := cache.OpenSQLiteBackend(path)
	require.NoError(t, err)
	c, err := first.Cache("src")
	require.NoError(t, err)
	require.NoError(t, c.Set("b", entry("1")))
	require.NoError(t, c.Set("a", entry("2")))
	require.NoError(t, c.Set("zero", domain.CacheEntry{Fingerprint: domain.DirectoryFingerprint}))
	require.NoError(t, first.Close())

	second, err := cache.OpenSQLiteBackend(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	c, err = second.Cache("src")
	require.NoError(t, err)
	ids, err := c.AllIDs()
	require.NoError(t, err)
	assert.Equal(t, []domain.ResourceID{"b", "a", "zero"}, ids)
	assertEntry(t, entry("2"), c, "a")

	got, ok, err := c.Get("zero")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.ModTime.IsZero())
	assert.Equal(t, domain.DirectoryFingerprint, got.Fingerprint)
}

// rejectID installs a trigger that makes every write of id fail.
func rejectID(t *testing.T, path string, id domain.ResourceID) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck // Best effort close in defer

	_, err = db.Exec(`CREATE TRIGGER reject_id BEFORE INSERT ON entries WHEN NEW.id = '` + string(id) + `'
BEGIN SELECT RAISE(ABORT, 'rejected'); END`)
	require.NoError(t, err)
}

func TestSQLiteBackend_FailedRebuildKeepsBaseline(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), domain.SnapshotDBName)

	first, err := cache.OpenSQLiteBackend(path)
	require.NoError(t, err)
	c, err := first.Cache("src")
	require.NoError(t, err)
	require.NoError(t, c.Set("keep1", entry("1")))
	require.NoError(t, c.Set("keep2", entry("2")))
	flush(t, c)

	rejectID(t, path, "bad")

	err = c.Rebuild([]domain.SnapshotEntry{
		{ID: "x", Entry: entry("3")},
		{ID: "bad", Entry: entry("4")},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCacheBackendFailed)

	ids, err := c.AllIDs()
	require.NoError(t, err)
	assert.Equal(t, []domain.ResourceID{"keep1", "keep2"}, ids, "the failed rebuild is discarded")
	require.NoError(t, first.Close())

	second, err := cache.OpenSQLiteBackend(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	c, err = second.Cache("src")
	require.NoError(t, err)
	ids, err = c.AllIDs()
	require.NoError(t, err)
	assert.Equal(t, []domain.ResourceID{"keep1", "keep2"}, ids)
}

func TestSQLiteBackend_FailedSetDiscardsPendingWrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), domain.SnapshotDBName)

	backend, err := cache.OpenSQLiteBackend(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	rejectID(t, path, "bad")

	c, err := backend.Cache("src")
	require.NoError(t, err)
	require.NoError(t, c.Set("a", entry("1")))
	require.Error(t, c.Set("bad", entry("2")))

	has, err := c.Has("a")
	require.NoError(t, err)
	assert.False(t, has, "writes buffered before the failure are rolled back")

	require.NoError(t, c.Set("b", entry("3")))
	flush(t, c)

	ids, err := c.AllIDs()
	require.NoError(t, err)
	assert.Equal(t, []domain.ResourceID{"b"}, ids)
}

func TestFactory_Open(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	f := cache.NewFactory()

	tests := []struct {
		backend string
		want    any
	}{
		{backend: domain.BackendMemory, want: &cache.MemoryBackend{}},
		{backend: domain.BackendFile, want: &cache.FileBackend{}},
		{backend: "", want: &cache.FileBackend{}},
		{backend: domain.BackendSQLite, want: &cache.SQLiteBackend{}},
	}

	for _, tt := range tests {
		b, err := f.Open(&domain.Config{Backend: tt.backend, StatePath: base})
		require.NoError(t, err)
		assert.IsType(t, tt.want, b)
		require.NoError(t, b.Close())
	}

	_, err := f.Open(&domain.Config{Backend: "redis", StatePath: base})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownCacheBackend.Error())
}
