package domain

// ResourceFailure records a resource that could not be fingerprinted during a pass.
// The resource is skipped for that pass and re-evaluated on the next one.
type ResourceFailure struct {
	ID  ResourceID
	Err error
}

// ChangeSet is the outcome of one detection pass.
type ChangeSet struct {
	// New holds resources with no cache entry, in enumeration order.
	New []ResourceID
	// Deleted holds cached resources absent from the live set, in cache order.
	Deleted []ResourceID
	// Updated holds resources whose fingerprint changed, in enumeration order.
	Updated []ResourceID
	// Failures holds resources skipped because their content could not be read.
	Failures []ResourceFailure
}

// HasChanges reports whether any resource was created, deleted or updated.
// Failures do not count as changes.
func (c ChangeSet) HasChanges() bool {
	return len(c.New) > 0 || len(c.Deleted) > 0 || len(c.Updated) > 0
}

// Len returns the number of changed resources.
func (c ChangeSet) Len() int {
	return len(c.New) + len(c.Deleted) + len(c.Updated)
}
