// Package fs provides file system adapters for enumerating and reading resources.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/gobwas/glob"
	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Enumerator = (*Enumerator)(nil)

// Enumerator lists the resources below one watch root.
type Enumerator struct {
	root        string
	names       []glob.Glob
	exclude     []glob.Glob
	directories bool
	recursive   bool
	relativeIDs bool
	statePath   string
}

// NewEnumerator compiles the filters of watch into an Enumerator.
func NewEnumerator(watch *domain.Watch) (*Enumerator, error) {
	root, err := filepath.Abs(watch.Root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnumerationFailed.Error()), "root", watch.Root)
	}

	var statePath string
	if watch.StatePath != "" {
		if statePath, err = filepath.Abs(watch.StatePath); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrEnumerationFailed.Error()), "state_path", watch.StatePath)
		}
	}

	names, err := compileGlobs(watch.Names)
	if err != nil {
		return nil, err
	}
	exclude, err := compileGlobs(watch.Exclude)
	if err != nil {
		return nil, err
	}

	return &Enumerator{
		root:        root,
		names:       names,
		exclude:     exclude,
		directories: watch.Directories,
		recursive:   watch.Recursive,
		relativeIDs: watch.RelativeIDs,
		statePath:   statePath,
	}, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	matchers := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), "pattern", pattern)
		}
		matchers = append(matchers, g)
	}
	return matchers, nil
}

// Root returns the absolute root directory.
func (e *Enumerator) Root() string {
	return e.root
}

// Enumerate walks the root in lexical order and returns the live set.
// The root itself is never part of the result.
func (e *Enumerator) Enumerate(ctx context.Context) ([]domain.ResourceRecord, error) {
	info, err := os.Stat(e.root)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, errors.Join(domain.ErrEnumerationFailed, zerr.With(domain.ErrRootNotFound, "root", e.root))
		}
		return nil, errors.Join(domain.ErrEnumerationFailed, zerr.With(err, "root", e.root))
	}
	if !info.IsDir() {
		return nil, errors.Join(domain.ErrEnumerationFailed, zerr.With(domain.ErrRootNotDir, "root", e.root))
	}

	var records []domain.ResourceRecord
	err = filepath.WalkDir(e.root, func(path string, d iofs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if path != e.root && errors.Is(walkErr, iofs.ErrNotExist) {
				// Removed while walking.
				return nil
			}
			return zerr.With(walkErr, "path", path)
		}
		if path == e.root {
			return nil
		}

		rel, err := filepath.Rel(e.root, path)
		if err != nil {
			return zerr.With(err, "path", path)
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			return e.visitDir(path, rel, d, &records)
		}
		return e.visitFile(path, rel, d, &records)
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Join(domain.ErrEnumerationFailed, err)
	}

	return records, nil
}

func (e *Enumerator) visitDir(path, rel string, d iofs.DirEntry, records *[]domain.ResourceRecord) error {
	name := d.Name()
	if name == ".git" || name == ".jj" || name == domain.RewatchDirName {
		return filepath.SkipDir
	}
	// The state directory is never part of the live set.
	if path == e.statePath {
		return filepath.SkipDir
	}
	if e.excluded(rel) || e.excluded(rel+"/") {
		return filepath.SkipDir
	}

	if e.directories && e.included(name) {
		info, err := d.Info()
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				return filepath.SkipDir
			}
			return zerr.With(err, "path", path)
		}
		*records = append(*records, e.record(path, rel, true, info))
	}

	if !e.recursive {
		return filepath.SkipDir
	}
	return nil
}

func (e *Enumerator) visitFile(path, rel string, d iofs.DirEntry, records *[]domain.ResourceRecord) error {
	if e.excluded(rel) || !e.included(d.Name()) {
		return nil
	}

	info, err := d.Info()
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil
		}
		return zerr.With(err, "path", path)
	}

	// Symlinks are reported with the metadata of their target when it resolves.
	if info.Mode()&iofs.ModeSymlink != 0 {
		if target, statErr := os.Stat(path); statErr == nil {
			if target.IsDir() {
				return nil
			}
			info = target
		}
	}

	*records = append(*records, e.record(path, rel, false, info))
	return nil
}

func (e *Enumerator) record(path, rel string, isDir bool, info iofs.FileInfo) domain.ResourceRecord {
	id := domain.ResourceID(path)
	if e.relativeIDs {
		id = domain.ResourceID(rel)
	}
	size := info.Size()
	if isDir {
		size = -1
	}
	return domain.ResourceRecord{
		ID:      id,
		Path:    path,
		IsDir:   isDir,
		ModTime: info.ModTime(),
		Size:    size,
	}
}

// included reports whether a basename passes the name filters.
func (e *Enumerator) included(name string) bool {
	if len(e.names) == 0 {
		return true
	}
	for _, g := range e.names {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// excluded reports whether a root-relative slash path matches an exclude glob.
func (e *Enumerator) excluded(rel string) bool {
	for _, g := range e.exclude {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

// Factory builds enumerators for configured watches.
type Factory struct{}

var _ ports.EnumeratorFactory = (*Factory)(nil)

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewEnumerator returns a file system enumerator for watch.
func (f *Factory) NewEnumerator(watch *domain.Watch) (ports.Enumerator, error) {
	return NewEnumerator(watch)
}
