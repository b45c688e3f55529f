package report

import (
	"encoding/json"
	"io"
	"sync"

	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Reporter = (*JSON)(nil)

// Document is the JSON representation of one watch's change set.
type Document struct {
	Watch    string              `json:"watch"`
	New      []domain.ResourceID `json:"new"`
	Deleted  []domain.ResourceID `json:"deleted"`
	Updated  []domain.ResourceID `json:"updated"`
	Failures []FailureDocument   `json:"failures"`
}

// FailureDocument describes a resource skipped during a pass.
type FailureDocument struct {
	ID    domain.ResourceID `json:"id"`
	Error string            `json:"error"`
}

// NewDocument converts a change set. Empty lists are rendered as [] rather than null.
func NewDocument(watch string, changes domain.ChangeSet) Document {
	doc := Document{
		Watch:    watch,
		New:      nonNil(changes.New),
		Deleted:  nonNil(changes.Deleted),
		Updated:  nonNil(changes.Updated),
		Failures: make([]FailureDocument, 0, len(changes.Failures)),
	}
	for _, f := range changes.Failures {
		doc.Failures = append(doc.Failures, FailureDocument{ID: f.ID, Error: oneLine(f.Err)})
	}
	return doc
}

func nonNil(ids []domain.ResourceID) []domain.ResourceID {
	if ids == nil {
		return []domain.ResourceID{}
	}
	return ids
}

// JSON writes one JSON document per line.
type JSON struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSON creates a JSON reporter writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w)}
}

// Report writes the document for the watch.
func (j *JSON) Report(watch string, changes domain.ChangeSet) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if err := j.enc.Encode(NewDocument(watch, changes)); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode report"), "watch", watch)
	}
	return nil
}
