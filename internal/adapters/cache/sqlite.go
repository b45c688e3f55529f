package cache

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
	"go.trai.ch/zerr"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

var (
	_ ports.SnapshotCache = (*SQLite)(nil)
	_ ports.Flusher       = (*SQLite)(nil)
	_ ports.CacheBackend  = (*SQLiteBackend)(nil)
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS entries (
	watch         TEXT    NOT NULL,
	id            TEXT    NOT NULL,
	seq           INTEGER NOT NULL,
	fingerprint   TEXT    NOT NULL,
	size          INTEGER NOT NULL DEFAULT 0,
	last_modified INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (watch, id)
);
CREATE INDEX IF NOT EXISTS idx_entries_watch_seq ON entries (watch, seq);
`

const (
	sqlGet    = `SELECT fingerprint, size, last_modified FROM entries WHERE watch = ? AND id = ?`
	sqlHas    = `SELECT 1 FROM entries WHERE watch = ? AND id = ?`
	sqlIDs    = `SELECT id FROM entries WHERE watch = ? ORDER BY seq`
	sqlRemove = `DELETE FROM entries WHERE watch = ? AND id = ?`
	sqlClear  = `DELETE FROM entries WHERE watch = ?`
	sqlUpsert = `
INSERT INTO entries (watch, id, seq, fingerprint, size, last_modified)
VALUES (?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM entries WHERE watch = ?), ?, ?, ?)
ON CONFLICT (watch, id) DO UPDATE SET
	fingerprint = excluded.fingerprint,
	size = excluded.size,
	last_modified = excluded.last_modified`
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// SQLiteBackend stores every watch's snapshot in one SQLite database.
type SQLiteBackend struct {
	db     *sql.DB
	caches map[string]*SQLite
}

// OpenSQLiteBackend opens (creating if needed) the database at path.
func OpenSQLiteBackend(path string) (*SQLiteBackend, error) {
	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return nil, errors.Join(domain.ErrCacheBackendFailed, zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()))
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Join(domain.ErrCacheBackendFailed, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path))
	}
	// A single connection keeps the buffered transaction and reads on the same session.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.Join(domain.ErrCacheBackendFailed, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path))
	}

	return &SQLiteBackend{db: db, caches: make(map[string]*SQLite)}, nil
}

// Cache returns the snapshot cache of the named watch.
func (b *SQLiteBackend) Cache(name string) (ports.SnapshotCache, error) {
	if c, ok := b.caches[name]; ok {
		return c, nil
	}
	c := &SQLite{db: b.db, watch: name}
	b.caches[name] = c
	return c, nil
}

// Purge deletes every stored snapshot.
func (b *SQLiteBackend) Purge() error {
	for _, c := range b.caches {
		if err := c.rollback(); err != nil {
			return err
		}
	}
	if _, err := b.db.Exec(`DELETE FROM entries`); err != nil {
		return queryFailed(err)
	}
	return nil
}

// Close commits pending writes and closes the database.
func (b *SQLiteBackend) Close() error {
	var errs []error
	for _, c := range b.caches {
		if err := c.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := b.db.Close(); err != nil {
		errs = append(errs, queryFailed(err))
	}
	return errors.Join(errs...)
}

// SQLite is the snapshot cache of one watch inside a SQLiteBackend.
// Writes are grouped in a transaction that is committed by Flush and rolled
// back when any write in it fails.
type SQLite struct {
	db    *sql.DB
	tx    *sql.Tx
	watch string
}

func (s *SQLite) reader() querier {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s *SQLite) writer() (querier, error) {
	if s.tx == nil {
		tx, err := s.db.Begin()
		if err != nil {
			return nil, queryFailed(err)
		}
		s.tx = tx
	}
	return s.tx, nil
}

// Get returns the entry for id.
func (s *SQLite) Get(id domain.ResourceID) (domain.CacheEntry, bool, error) {
	var (
		fp       string
		size     int64
		modified int64
	)
	err := s.reader().QueryRow(sqlGet, s.watch, string(id)).Scan(&fp, &size, &modified)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CacheEntry{}, false, nil
	}
	if err != nil {
		return domain.CacheEntry{}, false, queryFailed(err)
	}
	return domain.CacheEntry{
		Fingerprint: domain.Fingerprint(fp),
		Size:        size,
		ModTime:     fromUnixNano(modified),
	}, true, nil
}

// Set creates or overwrites the entry for id.
func (s *SQLite) Set(id domain.ResourceID, entry domain.CacheEntry) error {
	w, err := s.writer()
	if err != nil {
		return err
	}
	_, err = w.Exec(sqlUpsert, s.watch, string(id), s.watch, string(entry.Fingerprint), entry.Size, toUnixNano(entry.ModTime))
	if err != nil {
		return s.abort(err)
	}
	return nil
}

// Has reports whether id is cached.
func (s *SQLite) Has(id domain.ResourceID) (bool, error) {
	var one int
	err := s.reader().QueryRow(sqlHas, s.watch, string(id)).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, queryFailed(err)
	}
	return true, nil
}

// Remove deletes the entry for id.
func (s *SQLite) Remove(id domain.ResourceID) error {
	w, err := s.writer()
	if err != nil {
		return err
	}
	if _, err := w.Exec(sqlRemove, s.watch, string(id)); err != nil {
		return s.abort(err)
	}
	return nil
}

// AllIDs returns the cached ids in insertion order.
func (s *SQLite) AllIDs() ([]domain.ResourceID, error) {
	rows, err := s.reader().Query(sqlIDs, s.watch)
	if err != nil {
		return nil, queryFailed(err)
	}
	defer rows.Close() //nolint:errcheck // Best effort close in defer

	var ids []domain.ResourceID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, queryFailed(err)
		}
		ids = append(ids, domain.ResourceID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, queryFailed(err)
	}
	return ids, nil
}

// Rebuild replaces every entry of the watch with entries.
func (s *SQLite) Rebuild(entries []domain.SnapshotEntry) error {
	w, err := s.writer()
	if err != nil {
		return err
	}
	if _, err := w.Exec(sqlClear, s.watch); err != nil {
		return s.abort(err)
	}
	for _, e := range entries {
		if _, err := w.Exec(sqlUpsert, s.watch, string(e.ID), s.watch, string(e.Entry.Fingerprint), e.Entry.Size, toUnixNano(e.Entry.ModTime)); err != nil {
			return s.abort(err)
		}
	}
	return nil
}

// Flush commits buffered writes.
func (s *SQLite) Flush() error {
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	if err := tx.Commit(); err != nil {
		return queryFailed(err)
	}
	return nil
}

func (s *SQLite) rollback() error {
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	if err := tx.Rollback(); err != nil {
		return queryFailed(err)
	}
	return nil
}

// abort discards every write buffered since the last Flush, so a failed pass
// never reaches the database through a later Flush or Close.
func (s *SQLite) abort(err error) error {
	failed := queryFailed(err)
	if rbErr := s.rollback(); rbErr != nil {
		return errors.Join(failed, rbErr)
	}
	return failed
}

func queryFailed(err error) error {
	return errors.Join(domain.ErrCacheBackendFailed, zerr.Wrap(err, domain.ErrStoreQueryFailed.Error()))
}

func toUnixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromUnixNano(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}
