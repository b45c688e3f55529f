package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rewatch/internal/adapters/cache"
	"go.trai.ch/rewatch/internal/adapters/fingerprint"
	"go.trai.ch/rewatch/internal/adapters/fs"
	"go.trai.ch/rewatch/internal/adapters/report"
	"go.trai.ch/rewatch/internal/app"
	"go.trai.ch/rewatch/internal/core/domain"
	"go.trai.ch/rewatch/internal/core/ports"
	"go.trai.ch/rewatch/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	root   string
	cfg    *domain.Config
	out    *bytes.Buffer
	loader *mocks.MockConfigLoader
	logger *mocks.MockLogger
	app    *app.App
}

func newFixture(t *testing.T, triggers ports.TriggerFactory) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "alpha")
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "beta")

	f := &fixture{
		root: root,
		cfg: &domain.Config{
			Dir:         root,
			Fingerprint: domain.FingerprintCRC32,
			Backend:     domain.BackendFile,
			StatePath:   t.TempDir(),
			Interval:    time.Second,
			Trigger:     domain.TriggerPoll,
			Watches: map[string]*domain.Watch{
				"src": {Name: "src", Root: root, Recursive: true, RelativeIDs: true},
			},
		},
		out:    &bytes.Buffer{},
		loader: mocks.NewMockConfigLoader(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}

	f.loader.EXPECT().Load(root, "").Return(f.cfg, nil).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	f.app = app.New(
		f.loader,
		f.logger,
		cache.NewFactory(),
		fingerprint.NewRegistry(),
		fs.NewFactory(),
		fs.NewOpener(),
		report.NewFactory(),
		triggers,
	).WithOutput(f.out).WithWorkingDir(root)

	return f
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func TestApp_Detect_ReportsThenSettles(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.app.Detect(context.Background(), app.DetectOptions{}))
	assert.Contains(t, f.out.String(), "src: 2 new")
	assert.Contains(t, f.out.String(), "+ a.txt")
	assert.Contains(t, f.out.String(), "+ sub/b.txt")

	f.out.Reset()
	require.NoError(t, f.app.Detect(context.Background(), app.DetectOptions{}))
	assert.Equal(t, "✓ src: no changes\n", f.out.String())

	writeFile(t, filepath.Join(f.root, "a.txt"), "ALPHA")
	require.NoError(t, os.Remove(filepath.Join(f.root, "sub", "b.txt")))

	f.out.Reset()
	require.NoError(t, f.app.Detect(context.Background(), app.DetectOptions{}))
	assert.Contains(t, f.out.String(), "~ a.txt")
	assert.Contains(t, f.out.String(), "- sub/b.txt")
}

func TestApp_Detect_StateInsideRootSettles(t *testing.T) {
	tests := []struct {
		backend string
		state   string
	}{
		{backend: domain.BackendFile, state: domain.RewatchDirName},
		{backend: domain.BackendSQLite, state: domain.RewatchDirName},
		{backend: domain.BackendFile, state: "snapshots"},
	}

	for _, tt := range tests {
		t.Run(tt.backend+"/"+tt.state, func(t *testing.T) {
			f := newFixture(t, nil)
			f.cfg.Backend = tt.backend
			f.cfg.StatePath = filepath.Join(f.root, tt.state)

			require.NoError(t, f.app.Detect(context.Background(), app.DetectOptions{}))
			assert.Contains(t, f.out.String(), "src: 2 new")
			assert.NotContains(t, f.out.String(), tt.state)

			for range 2 {
				f.out.Reset()
				require.NoError(t, f.app.Detect(context.Background(), app.DetectOptions{ExitCode: true}))
				assert.Equal(t, "✓ src: no changes\n", f.out.String())
			}
		})
	}
}

func TestApp_Detect_JSON(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.app.Detect(context.Background(), app.DetectOptions{JSON: true}))

	var doc report.Document
	require.NoError(t, json.Unmarshal(f.out.Bytes(), &doc))
	assert.Equal(t, "src", doc.Watch)
	assert.Equal(t, []domain.ResourceID{"a.txt", "sub/b.txt"}, doc.New)
	assert.Empty(t, doc.Updated)
	assert.Empty(t, doc.Deleted)
}

func TestApp_Detect_ExitCode(t *testing.T) {
	f := newFixture(t, nil)
	opts := app.DetectOptions{ExitCode: true}

	err := f.app.Detect(context.Background(), opts)
	require.ErrorIs(t, err, domain.ErrChangesDetected)

	require.NoError(t, f.app.Detect(context.Background(), opts))
}

func TestApp_Detect_UnknownWatch(t *testing.T) {
	f := newFixture(t, nil)

	err := f.app.Detect(context.Background(), app.DetectOptions{Options: app.Options{Watches: []string{"docs"}}})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrWatchNotFound.Error())
	assert.Empty(t, f.out.String())
}

func TestApp_Detect_FailedWatchStillReportsOthers(t *testing.T) {
	f := newFixture(t, nil)
	f.cfg.Watches["gone"] = &domain.Watch{Name: "gone", Root: filepath.Join(f.root, "missing"), Recursive: true}

	err := f.app.Detect(context.Background(), app.DetectOptions{})
	require.ErrorIs(t, err, domain.ErrDetectionFailed)
	assert.ErrorContains(t, err, domain.ErrEnumerationFailed.Error())
	assert.Contains(t, f.out.String(), "src: 2 new")
}

func TestApp_Detect_LoaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load("/work", "custom.yaml").Return(nil, domain.ErrConfigNotFound)

	a := app.New(loader, mocks.NewMockLogger(ctrl), nil, nil, nil, nil, nil, nil).WithWorkingDir("/work")

	err := a.Detect(context.Background(), app.DetectOptions{Options: app.Options{ConfigPath: "custom.yaml"}})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load configuration")
}

func TestApp_Rebuild_SetsBaseline(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.app.Rebuild(context.Background(), app.Options{}))
	assert.Empty(t, f.out.String())

	require.NoError(t, f.app.Detect(context.Background(), app.DetectOptions{ExitCode: true}))
	assert.Equal(t, "✓ src: no changes\n", f.out.String())
}

func TestApp_Clean_ForgetsSnapshots(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.app.Rebuild(context.Background(), app.Options{}))
	require.NoError(t, f.app.Clean(context.Background(), app.Options{}))

	err := f.app.Detect(context.Background(), app.DetectOptions{ExitCode: true})
	require.ErrorIs(t, err, domain.ErrChangesDetected)
	assert.Contains(t, f.out.String(), "src: 2 new")
}

func TestApp_Watch_ReportsOnTrigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	triggers := mocks.NewMockTriggerFactory(ctrl)
	trigger := mocks.NewMockTrigger(ctrl)

	f := newFixture(t, triggers)
	ticks := make(chan struct{}, 1)

	triggers.EXPECT().NewTrigger(f.cfg).Return(trigger, nil)
	trigger.EXPECT().Start(gomock.Any(), []string{f.root}).Return(ticks, nil)
	trigger.EXPECT().Stop().Return(nil)

	reporters := mocks.NewMockReporterFactory(ctrl)
	reporter := mocks.NewMockReporter(ctrl)
	reporters.EXPECT().NewReporter(gomock.Any(), false).Return(reporter)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		reporter.EXPECT().Report("src", gomock.Any()).DoAndReturn(func(_ string, changes domain.ChangeSet) error {
			assert.Len(t, changes.New, 2)
			writeFile(t, filepath.Join(f.root, "a.txt"), "ALPHA")
			ticks <- struct{}{}
			return nil
		}),
		reporter.EXPECT().Report("src", gomock.Any()).DoAndReturn(func(_ string, changes domain.ChangeSet) error {
			assert.Equal(t, []domain.ResourceID{"a.txt"}, changes.Updated)
			cancel()
			return nil
		}),
	)

	a := app.New(
		f.loader,
		f.logger,
		cache.NewFactory(),
		fingerprint.NewRegistry(),
		fs.NewFactory(),
		fs.NewOpener(),
		reporters,
		triggers,
	).WithOutput(f.out).WithWorkingDir(f.root)

	require.NoError(t, a.Watch(ctx, app.WatchOptions{}))
}

func TestApp_Watch_TriggerStartFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	triggers := mocks.NewMockTriggerFactory(ctrl)
	trigger := mocks.NewMockTrigger(ctrl)

	f := newFixture(t, triggers)
	startErr := errors.Join(domain.ErrTriggerStartFailed, errors.New("too many open files"))

	triggers.EXPECT().NewTrigger(f.cfg).Return(trigger, nil)
	trigger.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil, startErr)

	err := f.app.Watch(context.Background(), app.WatchOptions{})
	require.ErrorIs(t, err, domain.ErrTriggerStartFailed)
}

func TestApp_SetLogJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := &jsonLogger{MockLogger: mocks.NewMockLogger(ctrl)}

	a := app.New(nil, log, nil, nil, nil, nil, nil, nil)
	a.SetLogJSON(true)

	assert.True(t, log.json)
}

type jsonLogger struct {
	*mocks.MockLogger
	json bool
}

func (l *jsonLogger) SetJSON(enable bool) {
	l.json = enable
}
