package fingerprint

import (
	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FingerprintRegistry = (*Registry)(nil)

// Registry resolves fingerprint strategies by name.
type Registry struct {
	strategies map[string]ports.Fingerprinter
}

// NewRegistry creates a Registry holding the built-in strategies.
func NewRegistry() *Registry {
	r := &Registry{strategies: make(map[string]ports.Fingerprinter)}
	r.Register(NewCRC32())
	r.Register(NewXXHash())
	r.Register(NewSHA256())
	return r
}

// Register adds or replaces a strategy under its own name.
func (r *Registry) Register(f ports.Fingerprinter) {
	r.strategies[f.Name()] = f
}

// Get returns the strategy registered under name.
// An empty name selects the CRC32 reference strategy.
func (r *Registry) Get(name string) (ports.Fingerprinter, error) {
	if name == "" {
		name = domain.FingerprintCRC32
	}
	f, ok := r.strategies[name]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownFingerprint, "fingerprint", name)
	}
	return f, nil
}
