// Package report renders change sets for humans and machines.
package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
	"go.trai.ch/rewatch/internal/ui/output"
	"go.trai.ch/rewatch/internal/ui/style"
)

var _ ports.Reporter = (*Text)(nil)

// Text renders change sets as a styled list, one block per watch.
type Text struct {
	mu sync.Mutex
	w  io.Writer

	heading lipgloss.Style
	clean   lipgloss.Style
	added   lipgloss.Style
	removed lipgloss.Style
	changed lipgloss.Style
	skipped lipgloss.Style
	muted   lipgloss.Style
}

// NewText creates a text reporter writing to w.
func NewText(w io.Writer) *Text {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile(w))

	return &Text{
		w:       w,
		heading: r.NewStyle().Bold(true).Foreground(style.Iris),
		clean:   r.NewStyle().Foreground(style.Green),
		added:   r.NewStyle().Foreground(style.Green),
		removed: r.NewStyle().Foreground(style.Red),
		changed: r.NewStyle().Foreground(style.Yellow),
		skipped: r.NewStyle().Foreground(style.Red),
		muted:   r.NewStyle().Foreground(style.Slate),
	}
}

// Report writes one block for the watch.
func (t *Text) Report(watch string, changes domain.ChangeSet) error {
	var b strings.Builder

	if !changes.HasChanges() {
		b.WriteString(t.clean.Render(style.Check) + " " + t.heading.Render(watch) + t.muted.Render(": no changes") + "\n")
	} else {
		b.WriteString(t.heading.Render(style.Dot+" "+watch) + t.muted.Render(": "+summary(changes)) + "\n")
	}

	for _, id := range changes.New {
		b.WriteString("  " + t.added.Render(style.Added+" "+id.String()) + "\n")
	}
	for _, id := range changes.Updated {
		b.WriteString("  " + t.changed.Render(style.Changed+" "+id.String()) + "\n")
	}
	for _, id := range changes.Deleted {
		b.WriteString("  " + t.removed.Render(style.Removed+" "+id.String()) + "\n")
	}
	for _, f := range changes.Failures {
		b.WriteString("  " + t.skipped.Render(style.Skipped+" "+f.ID.String()) + t.muted.Render(" ("+oneLine(f.Err)+")") + "\n")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := io.WriteString(t.w, b.String())
	return err
}

func summary(changes domain.ChangeSet) string {
	parts := make([]string, 0, 4)
	for _, p := range []struct {
		n    int
		what string
	}{
		{len(changes.New), "new"},
		{len(changes.Updated), "updated"},
		{len(changes.Deleted), "deleted"},
		{len(changes.Failures), "skipped"},
	} {
		if p.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", p.n, p.what))
		}
	}
	return strings.Join(parts, ", ")
}

// oneLine flattens multi-line error messages, as produced by errors.Join.
func oneLine(err error) string {
	if err == nil {
		return ""
	}
	return strings.Join(strings.Fields(strings.ReplaceAll(err.Error(), "\n", ": ")), " ")
}
