package report

import (
	"io"

	"go.trai.ch/rewatch/internal/core/ports"
)

var _ ports.ReporterFactory = (*Factory)(nil)

// Factory creates text or JSON reporters.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewReporter returns a JSON reporter when jsonMode is set, a text reporter otherwise.
func (f *Factory) NewReporter(w io.Writer, jsonMode bool) ports.Reporter {
	if jsonMode {
		return NewJSON(w)
	}
	return NewText(w)
}
