package domain

import (
	"slices"
	"time"

	"go.trai.ch/zerr"
)

const (
	// FingerprintCRC32 selects the CRC32 (IEEE) fingerprint strategy.
	FingerprintCRC32 = "crc32"
	// FingerprintXXHash selects the 64-bit xxHash fingerprint strategy.
	FingerprintXXHash = "xxhash"
	// FingerprintSHA256 selects the SHA-256 fingerprint strategy.
	FingerprintSHA256 = "sha256"

	// BackendMemory keeps snapshots for the lifetime of the process.
	BackendMemory = "memory"
	// BackendFile persists snapshots as JSON documents.
	BackendFile = "file"
	// BackendSQLite persists snapshots in an embedded SQLite database.
	BackendSQLite = "sqlite"

	// TriggerPoll runs watch passes on a fixed interval.
	TriggerPoll = "poll"
	// TriggerFSNotify runs watch passes on debounced file system events.
	TriggerFSNotify = "fsnotify"

	// DefaultInterval is the default watch loop interval.
	DefaultInterval = time.Second
)

// Watch describes one watched domain: a root plus filter rules.
type Watch struct {
	// Name identifies the watch and its snapshot.
	Name string
	// Root is the absolute directory being watched.
	Root string
	// Names are basename globs a resource must match. Empty matches everything.
	Names []string
	// Exclude are root-relative path globs pruned from the walk.
	Exclude []string
	// Directories enables directory records.
	Directories bool
	// Recursive enables descending into sub-directories.
	Recursive bool
	// RelativeIDs keys resources by their root-relative slash path.
	RelativeIDs bool
	// TrustModTime reuses cached fingerprints when size and mtime are unchanged.
	TrustModTime bool
	// StatePath is the rewatch state directory. It is never enumerated, even
	// when it lies below Root.
	StatePath string
}

// Config is the fully resolved rewatch configuration.
type Config struct {
	// Dir is the directory containing the configuration file.
	Dir string
	// Fingerprint is the name of the fingerprint strategy.
	Fingerprint string
	// Backend is the name of the cache backend.
	Backend string
	// StatePath is the absolute directory persistent backends write to.
	StatePath string
	// Interval is the watch loop poll interval.
	Interval time.Duration
	// Trigger is the name of the watch loop trigger.
	Trigger string
	// Watches maps watch names to their definitions.
	Watches map[string]*Watch
}

// WatchNames returns the configured watch names in sorted order.
func (c *Config) WatchNames() []string {
	names := make([]string, 0, len(c.Watches))
	for name := range c.Watches {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Select returns the named watches in the given order, or every watch sorted by
// name when names is empty.
func (c *Config) Select(names []string) ([]*Watch, error) {
	if len(names) == 0 {
		names = c.WatchNames()
	}
	watches := make([]*Watch, 0, len(names))
	for _, name := range names {
		w, ok := c.Watches[name]
		if !ok {
			return nil, zerr.With(ErrWatchNotFound, "watch", name)
		}
		watches = append(watches, w)
	}
	return watches, nil
}
