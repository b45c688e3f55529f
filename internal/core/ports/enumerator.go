// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/rewatch/internal/core/domain"
)

// Enumerator lists the resources currently matching a watch.
//
//go:generate go run go.uber.org/mock/mockgen -source=enumerator.go -destination=mocks/mock_enumerator.go -package=mocks
type Enumerator interface {
	// Enumerate returns the complete live set in a stable order.
	// An error means no listing could be produced and the pass must fail.
	Enumerate(ctx context.Context) ([]domain.ResourceRecord, error)
}

// ContentOpener opens resource content for fingerprinting.
type ContentOpener interface {
	// Open returns a reader over the content at path.
	Open(path string) (io.ReadCloser, error)
}

// EnumeratorFactory builds enumerators for configured watches.
type EnumeratorFactory interface {
	// NewEnumerator compiles the watch's filter rules into an Enumerator.
	NewEnumerator(watch *domain.Watch) (Enumerator, error)
}
