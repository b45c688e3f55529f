package ports

import (
	"io"

	"go.trai.ch/rewatch/internal/core/domain"
)

// Reporter renders change sets.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Report writes the change set produced for the named watch.
	Report(watch string, changes domain.ChangeSet) error
}

// ReporterFactory creates reporters writing to w.
type ReporterFactory interface {
	// NewReporter returns a JSON reporter when jsonMode is set, a text reporter otherwise.
	NewReporter(w io.Writer, jsonMode bool) Reporter
}
