package ports

import (
	"io"

	"go.trai.ch/rewatch/internal/core/domain"
)

// Fingerprinter computes deterministic content fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// Name returns the strategy name, e.g. "crc32".
	Name() string
	// Fingerprint consumes r and returns the fingerprint of its bytes.
	Fingerprint(r io.Reader) (domain.Fingerprint, error)
}

// FingerprintRegistry resolves strategy names to fingerprinters.
type FingerprintRegistry interface {
	// Get returns the strategy registered under name.
	Get(name string) (Fingerprinter, error)
}
