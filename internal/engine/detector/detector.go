// Package detector implements snapshot-based change detection.
package detector

import (
	"context"
	"errors"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultMemoSize bounds the stat memo used when modification times are trusted.
const DefaultMemoSize = 4096

// statKey identifies one observed version of a file by its metadata.
type statKey struct {
	id      domain.ResourceID
	size    int64
	modTime int64
}

// Detector reconciles a snapshot cache against a fresh enumeration.
// Detect and Rebuild are serialised; a Detector owns its cache exclusively.
type Detector struct {
	cache         ports.SnapshotCache
	enumerator    ports.Enumerator
	opener        ports.ContentOpener
	fingerprinter ports.Fingerprinter

	trustModTime bool
	memo         *lru.Cache[statKey, domain.Fingerprint]

	mu sync.Mutex
}

// Option configures a Detector.
type Option func(*Detector) error

// WithTrustModTime reuses fingerprints for files whose size and modification time
// are unchanged. Up to size verified tuples are kept in memory between passes.
func WithTrustModTime(size int) Option {
	return func(d *Detector) error {
		if size <= 0 {
			size = DefaultMemoSize
		}
		memo, err := lru.New[statKey, domain.Fingerprint](size)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create stat memo"), "size", size)
		}
		d.trustModTime = true
		d.memo = memo
		return nil
	}
}

// New creates a Detector.
func New(
	cache ports.SnapshotCache,
	enumerator ports.Enumerator,
	opener ports.ContentOpener,
	fingerprinter ports.Fingerprinter,
	opts ...Option,
) (*Detector, error) {
	d := &Detector{
		cache:         cache,
		enumerator:    enumerator,
		opener:        opener,
		fingerprinter: fingerprinter,
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Detect runs one detection pass.
//
// Every observed resource is classified against the cache as new, updated or
// unchanged and its entry is overwritten. Cached ids missing from the live set are
// reported deleted but stay cached. Resources whose content cannot be read are
// reported as failures and left untouched.
func (d *Detector) Detect(ctx context.Context) (domain.ChangeSet, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	records, err := d.enumerate(ctx)
	if err != nil {
		return domain.ChangeSet{}, err
	}

	prior, err := d.cache.AllIDs()
	if err != nil {
		return domain.ChangeSet{}, cacheFailed(err)
	}

	var (
		changes domain.ChangeSet
		writes  = make([]domain.SnapshotEntry, 0, len(records))
		live    = make(map[domain.ResourceID]struct{}, len(records))
	)

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return domain.ChangeSet{}, err
		}
		live[rec.ID] = struct{}{}

		cached, found, err := d.cache.Get(rec.ID)
		if err != nil {
			return domain.ChangeSet{}, cacheFailed(err)
		}

		var previous *domain.CacheEntry
		if found {
			previous = &cached
		}
		fp, err := d.fingerprint(rec, previous)
		if err != nil {
			changes.Failures = append(changes.Failures, domain.ResourceFailure{ID: rec.ID, Err: err})
			continue
		}

		switch {
		case !found:
			changes.New = append(changes.New, rec.ID)
		case cached.Fingerprint != fp:
			changes.Updated = append(changes.Updated, rec.ID)
		}
		writes = append(writes, snapshotEntry(rec, fp))
	}

	for _, id := range prior {
		if _, ok := live[id]; !ok {
			changes.Deleted = append(changes.Deleted, id)
		}
	}

	for _, w := range writes {
		if err := d.cache.Set(w.ID, w.Entry); err != nil {
			return domain.ChangeSet{}, cacheFailed(err)
		}
	}
	if err := d.flush(); err != nil {
		return domain.ChangeSet{}, err
	}

	return changes, nil
}

// Rebuild makes the current live set the new baseline, discarding all history.
// Resources that cannot be read are left out of the baseline and will be
// reported new once they become readable.
func (d *Detector) Rebuild(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	records, err := d.enumerate(ctx)
	if err != nil {
		return err
	}

	entries := make([]domain.SnapshotEntry, 0, len(records))
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		fp, err := d.fingerprint(rec, nil)
		if err != nil {
			continue
		}
		entries = append(entries, snapshotEntry(rec, fp))
	}

	if err := d.cache.Rebuild(entries); err != nil {
		return cacheFailed(err)
	}
	return d.flush()
}

func (d *Detector) enumerate(ctx context.Context) ([]domain.ResourceRecord, error) {
	records, err := d.enumerator.Enumerate(ctx)
	if err == nil {
		return records, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if errors.Is(err, domain.ErrEnumerationFailed) {
		return nil, err
	}
	return nil, errors.Join(domain.ErrEnumerationFailed, err)
}

// fingerprint returns the fingerprint of rec. Directories get the sentinel and are
// never opened. previous is the cached entry, or nil when the resource is unknown.
func (d *Detector) fingerprint(rec domain.ResourceRecord, previous *domain.CacheEntry) (domain.Fingerprint, error) {
	if rec.IsDir {
		return domain.DirectoryFingerprint, nil
	}

	key, trusted := d.statKey(rec)
	if trusted {
		if fp, ok := d.memo.Get(key); ok {
			return fp, nil
		}
		if previous != nil && previous.Size == rec.Size && previous.ModTime.Equal(rec.ModTime) {
			d.memo.Add(key, previous.Fingerprint)
			return previous.Fingerprint, nil
		}
	}

	fp, err := d.read(rec)
	if err != nil {
		return "", err
	}
	if trusted {
		d.memo.Add(key, fp)
	}
	return fp, nil
}

func (d *Detector) read(rec domain.ResourceRecord) (domain.Fingerprint, error) {
	rc, err := d.opener.Open(rec.Path)
	if err != nil {
		return "", errors.Join(domain.ErrResourceReadFailed, zerr.With(err, "path", rec.Path))
	}
	defer rc.Close() //nolint:errcheck // Best effort close in defer

	fp, err := d.fingerprinter.Fingerprint(rc)
	if err != nil {
		return "", errors.Join(domain.ErrResourceReadFailed, zerr.With(err, "path", rec.Path))
	}
	return fp, nil
}

// statKey reports whether rec carries metadata that can be trusted.
func (d *Detector) statKey(rec domain.ResourceRecord) (statKey, bool) {
	if !d.trustModTime || rec.Size < 0 || rec.ModTime.IsZero() {
		return statKey{}, false
	}
	return statKey{id: rec.ID, size: rec.Size, modTime: rec.ModTime.UnixNano()}, true
}

func (d *Detector) flush() error {
	f, ok := d.cache.(ports.Flusher)
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		return cacheFailed(err)
	}
	return nil
}

func snapshotEntry(rec domain.ResourceRecord, fp domain.Fingerprint) domain.SnapshotEntry {
	return domain.SnapshotEntry{
		ID: rec.ID,
		Entry: domain.CacheEntry{
			Fingerprint: fp,
			ModTime:     rec.ModTime.Round(0),
			Size:        max(rec.Size, 0),
		},
	}
}

func cacheFailed(err error) error {
	if errors.Is(err, domain.ErrCacheBackendFailed) {
		return err
	}
	return errors.Join(domain.ErrCacheBackendFailed, err)
}
