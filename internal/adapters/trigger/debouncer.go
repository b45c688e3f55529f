// Package trigger decides when the watch loop runs its next detection pass.
// Triggers are scheduling hints only; every pass still diffs snapshots.
package trigger

import (
	"slices"
	"sync"
	"time"
	"unique"
)

// DefaultDebounceWindow is the default quiet period before a burst of file events triggers a pass.
const DefaultDebounceWindow = 100 * time.Millisecond

// Debouncer coalesces bursts of file system events into one batch.
type Debouncer struct {
	mu      sync.Mutex
	pending map[unique.Handle[string]]struct{}
	timer   *time.Timer
	window  time.Duration
	fn      func(paths []string)
	stopped bool
}

// NewDebouncer creates a debouncer that calls fn with the sorted, de-duplicated
// paths once no new path has been added for window.
func NewDebouncer(window time.Duration, fn func(paths []string)) *Debouncer {
	return &Debouncer{
		pending: make(map[unique.Handle[string]]struct{}),
		window:  window,
		fn:      fn,
	}
}

// Add records path and restarts the quiet period.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending[unique.Make(path)] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	d.timer = nil
	paths := d.drain()
	d.mu.Unlock()

	if len(paths) > 0 && d.fn != nil {
		d.fn(paths)
	}
}

// Flush delivers pending paths immediately and blocks until fn returns.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired, let it complete rather than processing twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	paths := d.drain()
	d.mu.Unlock()

	if len(paths) > 0 && d.fn != nil {
		d.fn(paths)
	}
}

// Stop discards pending paths and ignores later additions.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	clear(d.pending)
}

// drain must be called with mu held.
func (d *Debouncer) drain() []string {
	if len(d.pending) == 0 {
		return nil
	}
	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.Value())
	}
	clear(d.pending)
	slices.Sort(paths)
	return paths
}
