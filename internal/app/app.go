// Package app implements the application layer for rewatch.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/google/uuid"
	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
	"go.trai.ch/rewatch/internal/engine/detector"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	backends     ports.CacheBackendFactory
	fingerprints ports.FingerprintRegistry
	enumerators  ports.EnumeratorFactory
	opener       ports.ContentOpener
	reporters    ports.ReporterFactory
	triggers     ports.TriggerFactory

	out io.Writer
	cwd func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	backends ports.CacheBackendFactory,
	fingerprints ports.FingerprintRegistry,
	enumerators ports.EnumeratorFactory,
	opener ports.ContentOpener,
	reporters ports.ReporterFactory,
	triggers ports.TriggerFactory,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		backends:     backends,
		fingerprints: fingerprints,
		enumerators:  enumerators,
		opener:       opener,
		reporters:    reporters,
		triggers:     triggers,
		out:          os.Stdout,
		cwd:          os.Getwd,
	}
}

// WithOutput sets the writer reports are written to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithWorkingDir pins the directory configuration discovery starts from.
func (a *App) WithWorkingDir(dir string) *App {
	a.cwd = func() (string, error) { return dir, nil }
	return a
}

// SetLogJSON switches the logger to JSON output when it supports it.
func (a *App) SetLogJSON(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// Options selects the configuration and watches a command operates on.
type Options struct {
	// ConfigPath overrides configuration discovery when set.
	ConfigPath string
	// Watches restricts the command to the named watches. Empty selects all.
	Watches []string
}

// DetectOptions configuration for the Detect method.
type DetectOptions struct {
	Options
	JSON     bool
	ExitCode bool
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	Options
	JSON bool
}

// Detect runs one detection pass for every selected watch and reports the results.
func (a *App) Detect(ctx context.Context, opts DetectOptions) error {
	cfg, err := a.loadConfig(opts.Options)
	if err != nil {
		return err
	}

	s, err := a.openSession(cfg, opts.Watches)
	if err != nil {
		return err
	}

	results := s.detect(ctx)
	err = a.report(a.reporters.NewReporter(a.out, opts.JSON), results, false)
	if closeErr := s.close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	if err != nil {
		return err
	}

	if opts.ExitCode && results.hasChanges() {
		return domain.ErrChangesDetected
	}
	return nil
}

// Rebuild makes the current state of every selected watch its new baseline.
func (a *App) Rebuild(ctx context.Context, opts Options) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	s, err := a.openSession(cfg, opts.Watches)
	if err != nil {
		return err
	}

	errs := make([]error, len(s.watches))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, w := range s.watches {
		g.Go(func() error {
			if err := s.detectors[i].Rebuild(gctx); err != nil {
				errs[i] = zerr.With(err, "watch", w.Name)
				return nil
			}
			a.logger.Info(fmt.Sprintf("%s: baseline rebuilt", w.Name))
			return nil
		})
	}
	_ = g.Wait()

	err = errors.Join(errs...)
	if closeErr := s.close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	return err
}

// Watch runs detection passes whenever the configured trigger fires, reporting
// non-empty change sets, until ctx is done.
func (a *App) Watch(ctx context.Context, opts WatchOptions) (err error) {
	cfg, err := a.loadConfig(opts.Options)
	if err != nil {
		return err
	}

	s, err := a.openSession(cfg, opts.Watches)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := s.close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	trigger, err := a.triggers.NewTrigger(cfg)
	if err != nil {
		return err
	}
	ticks, err := trigger.Start(ctx, s.roots())
	if err != nil {
		return err
	}
	defer func() {
		_ = trigger.Stop()
	}()

	reporter := a.reporters.NewReporter(a.out, opts.JSON)
	a.logger.Info(fmt.Sprintf("watching %d location(s) with %s trigger", len(s.watches), cfg.Trigger))

	a.pass(ctx, s, reporter)
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			a.pass(ctx, s, reporter)
		}
	}
}

// pass runs one watch loop iteration. Failures are logged and the loop keeps going.
func (a *App) pass(ctx context.Context, s *session, reporter ports.Reporter) {
	results := s.detect(ctx)
	if ctx.Err() != nil {
		return
	}
	if err := a.report(reporter, results, true); err != nil {
		a.logger.Error(err)
	}
}

// Clean removes every stored snapshot.
func (a *App) Clean(_ context.Context, opts Options) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	backend, err := a.backends.Open(cfg)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("removing %s snapshots...", cfg.Backend))
	err = backend.Purge()
	if closeErr := backend.Close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	if err != nil {
		return zerr.Wrap(err, "failed to remove snapshots")
	}
	a.logger.Info(fmt.Sprintf("removed %s snapshots", cfg.Backend))
	return nil
}

func (a *App) loadConfig(opts Options) (*domain.Config, error) {
	cwd, err := a.cwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}
	cfg, err := a.configLoader.Load(cwd, opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// report writes each result in watch order. Pass errors are collected and
// returned after every successful result has been written.
func (a *App) report(reporter ports.Reporter, results passResults, onlyChanges bool) error {
	var errs []error
	for _, r := range results.items {
		if r.err != nil {
			errs = append(errs, zerr.With(r.err, "watch", r.watch))
			continue
		}

		if n := len(r.changes.Failures); n > 0 {
			a.logger.Warn(fmt.Sprintf("%s: skipped %d unreadable resource(s) in pass %s", r.watch, n, results.id))
		}
		if onlyChanges && !r.changes.HasChanges() {
			continue
		}
		if err := reporter.Report(r.watch, r.changes); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{domain.ErrDetectionFailed}, errs...)...)
	}
	return nil
}

// session holds one opened cache backend and a detector per selected watch.
type session struct {
	backend   ports.CacheBackend
	watches   []*domain.Watch
	detectors []*detector.Detector
}

func (a *App) openSession(cfg *domain.Config, names []string) (*session, error) {
	watches, err := cfg.Select(names)
	if err != nil {
		return nil, err
	}

	fingerprinter, err := a.fingerprints.Get(cfg.Fingerprint)
	if err != nil {
		return nil, err
	}

	backend, err := a.backends.Open(cfg)
	if err != nil {
		return nil, err
	}

	s := &session{backend: backend}
	for _, selected := range watches {
		w := *selected
		if w.StatePath == "" {
			w.StatePath = cfg.StatePath
		}
		s.watches = append(s.watches, &w)

		d, err := a.newDetector(backend, fingerprinter, &w)
		if err != nil {
			_ = backend.Close()
			return nil, zerr.With(err, "watch", w.Name)
		}
		s.detectors = append(s.detectors, d)
	}
	return s, nil
}

func (a *App) newDetector(backend ports.CacheBackend, fp ports.Fingerprinter, w *domain.Watch) (*detector.Detector, error) {
	cache, err := backend.Cache(w.Name)
	if err != nil {
		return nil, err
	}
	enumerator, err := a.enumerators.NewEnumerator(w)
	if err != nil {
		return nil, err
	}

	var opts []detector.Option
	if w.TrustModTime {
		opts = append(opts, detector.WithTrustModTime(detector.DefaultMemoSize))
	}
	return detector.New(cache, enumerator, a.opener, fp, opts...)
}

func (s *session) roots() []string {
	roots := make([]string, 0, len(s.watches))
	for _, w := range s.watches {
		roots = append(roots, w.Root)
	}
	return roots
}

func (s *session) close() error {
	return s.backend.Close()
}

type passResult struct {
	watch   string
	changes domain.ChangeSet
	err     error
}

type passResults struct {
	id    string
	items []passResult
}

func (r passResults) hasChanges() bool {
	for _, item := range r.items {
		if item.err == nil && item.changes.HasChanges() {
			return true
		}
	}
	return false
}

// detect runs every detector concurrently. Results keep the watch order.
func (s *session) detect(ctx context.Context) passResults {
	results := passResults{
		id:    uuid.NewString(),
		items: make([]passResult, len(s.watches)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, w := range s.watches {
		g.Go(func() error {
			changes, err := s.detectors[i].Detect(gctx)
			results.items[i] = passResult{watch: w.Name, changes: changes, err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
