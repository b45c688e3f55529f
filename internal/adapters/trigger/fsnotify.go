package trigger

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Trigger = (*FSNotify)(nil)

// skippedDirectories are never subscribed to.
var skippedDirectories = map[string]bool{
	".git":                true,
	".jj":                 true,
	"node_modules":        true,
	domain.RewatchDirName: true,
}

// FSNotify signals a pass after a debounced burst of file system events.
// The poll interval still applies as a fallback for missed events.
type FSNotify struct {
	interval time.Duration
	window   time.Duration
	logger   ports.Logger

	watcher   *fsnotify.Watcher
	debouncer *Debouncer
	cancel    context.CancelFunc
}

// NewFSNotify creates an event-driven trigger.
func NewFSNotify(interval, window time.Duration, logger ports.Logger) *FSNotify {
	return &FSNotify{interval: interval, window: window, logger: logger}
}

// Start subscribes to every directory below roots.
func (f *FSNotify) Start(ctx context.Context, roots []string) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrTriggerStartFailed.Error())
	}

	for _, root := range roots {
		if err := addRecursive(watcher, root); err != nil {
			_ = watcher.Close()
			return nil, zerr.With(zerr.Wrap(err, domain.ErrTriggerStartFailed.Error()), "root", root)
		}
	}

	f.watcher = watcher
	ctx, f.cancel = context.WithCancel(ctx)

	sig := newSignal()
	f.debouncer = NewDebouncer(f.window, func([]string) { sig.notify() })

	go func() {
		defer sig.close()
		defer f.debouncer.Stop()
		f.processEvents(ctx)
	}()
	if f.interval > 0 {
		go tickLoop(ctx, f.interval, sig)
	}

	return sig.ch, nil
}

// Stop releases the file system subscriptions.
func (f *FSNotify) Stop() error {
	if f.cancel != nil {
		f.cancel()
	}
	if f.watcher == nil {
		return nil
	}
	return f.watcher.Close()
}

func (f *FSNotify) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-f.watcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}
			f.debouncer.Add(event.Name)

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !skippedDirectories[info.Name()] {
					if err := addRecursive(f.watcher, event.Name); err != nil {
						f.logger.Warn(fmt.Sprintf("could not watch new directory %s: %v", event.Name, err))
					}
				}
			}
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return
			}
			f.logger.Warn(fmt.Sprintf("file system events may have been missed: %v", err))
		}
	}
}

// addRecursive subscribes to root and every directory below it.
func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path != root && errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && skippedDirectories[d.Name()] {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
