package fs

import (
	"io"
	"os"

	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ContentOpener = (*Opener)(nil)

// Opener reads resource content from the local file system.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the file at path for reading.
func (o *Opener) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the enumerator
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	return f, nil
}
