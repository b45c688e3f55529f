package domain

import "time"

// ResourceID uniquely identifies a watched resource within one watch.
// It is an absolute path unless relative ids are enabled for the watch.
type ResourceID string

// String returns the id as a plain string.
func (id ResourceID) String() string {
	return string(id)
}

// Fingerprint is an opaque, comparable summary of a resource's content.
type Fingerprint string

// DirectoryFingerprint is the sentinel fingerprint assigned to every directory.
// Directory content is defined by its children, which are enumerated separately.
const DirectoryFingerprint Fingerprint = "dir"

// ResourceRecord is one entry of an enumeration pass.
type ResourceRecord struct {
	// ID is the cache key of the resource.
	ID ResourceID
	// Path is the location the content is read from.
	Path string
	// IsDir reports whether the resource is a directory.
	IsDir bool
	// ModTime is the last modification time observed during enumeration.
	ModTime time.Time
	// Size is the size in bytes. It is -1 when unknown.
	Size int64
}

// CacheEntry is the state stored for a resource between passes.
type CacheEntry struct {
	Fingerprint Fingerprint `json:"fingerprint"`
	ModTime     time.Time   `json:"last_modified,omitzero"`
	Size        int64       `json:"size,omitzero"`
}

// SnapshotEntry pairs a resource id with its cache entry.
type SnapshotEntry struct {
	ID    ResourceID `json:"id"`
	Entry CacheEntry `json:"entry"`
}
