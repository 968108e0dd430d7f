package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/noxy/internal/adapters/telemetry"
	"go.trai.ch/noxy/internal/app"
	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/core/ports"
	"go.trai.ch/noxy/internal/core/ports/mocks"
	"go.trai.ch/noxy/internal/engine/runner"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader    *mocks.MockConfigLoader
	executor  *mocks.MockExecutor
	hasher    *mocks.MockHasher
	store     *mocks.MockRunStore
	marker    *mocks.MockCacheMarker
	fetcher   *mocks.MockFetcher
	editor    *mocks.MockRequirementsEditor
	telemetry *mocks.MockTelemetry
	logger    *mocks.MockLogger
	conda     *mocks.MockEnvironmentBackend
	venv      *mocks.MockEnvironmentBackend
	out       *bytes.Buffer
	app       *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:    mocks.NewMockConfigLoader(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		hasher:    mocks.NewMockHasher(ctrl),
		store:     mocks.NewMockRunStore(ctrl),
		marker:    mocks.NewMockCacheMarker(ctrl),
		fetcher:   mocks.NewMockFetcher(ctrl),
		editor:    mocks.NewMockRequirementsEditor(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		conda:     mocks.NewMockEnvironmentBackend(ctrl),
		venv:      mocks.NewMockEnvironmentBackend(ctrl),
		out:       &bytes.Buffer{},
	}
	f.conda.EXPECT().Kind().Return(domain.BackendConda).AnyTimes()
	f.venv.EXPECT().Kind().Return(domain.BackendVenv).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.hasher.EXPECT().ComputeInputHash(gomock.Any(), gomock.Any()).Return("hash", nil).AnyTimes()
	f.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, telemetry.NoOpVertex{}
		}).AnyTimes()

	r := runner.New(f.executor, f.hasher, f.store, f.telemetry, f.logger, f.conda, f.venv)
	f.app = app.New(f.loader, r, f.store, f.marker, f.fetcher, f.editor, f.telemetry, f.logger).
		WithOutput(f.out)
	return f
}

func TestApp_Run_Flake8(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("noxy.yaml").Return(domain.DefaultOptions(), nil)
	f.venv.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, env *domain.Environment) error {
			assert.Equal(t, "build/envs/flake8", env.Location)
			assert.False(t, env.ReuseExisting)
			return nil
		})
	f.venv.EXPECT().Environ(gomock.Any()).Return(nil).AnyTimes()
	f.venv.EXPECT().Install(gomock.Any(), gomock.Any(), "flake8", "flake8-docstrings", "flake8-import-order").
		Return(nil)
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd *domain.Command) error {
			assert.Equal(t, []string{"flake8", "esmf_regrid"}, cmd.Args)
			return nil
		})
	f.store.EXPECT().Put(gomock.Any()).Return(nil)
	f.telemetry.EXPECT().Close().Return(nil)

	err := f.app.Run(context.Background(), []string{"flake8"}, app.RunOptions{
		Options:         app.Options{EnvDir: "build/envs"},
		NoReuseExisting: true,
	})
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "✓ flake8 was successful")
}

func TestApp_Run_InstallOnly(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("custom.yaml").Return(domain.DefaultOptions(), nil)
	f.venv.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.venv.EXPECT().Install(gomock.Any(), gomock.Any(), "black==20.8b1").Return(nil)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)
	f.telemetry.EXPECT().Close().Return(nil)

	err := f.app.Run(context.Background(), []string{"black"}, app.RunOptions{
		Options:     app.Options{ConfigPath: "custom.yaml"},
		InstallOnly: true,
	})
	require.NoError(t, err)
}

func TestApp_Run_SessionFailure(t *testing.T) {
	f := newFixture(t)
	opts := domain.DefaultOptions()
	opts.PythonVersions = []string{"3.8"}

	f.loader.EXPECT().Load(gomock.Any()).Return(opts, nil)
	f.conda.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("conda not found"))
	f.logger.EXPECT().Error(gomock.Any())
	f.store.EXPECT().Put(gomock.Any()).Return(nil)
	f.telemetry.EXPECT().Close().Return(nil)

	err := f.app.Run(context.Background(), []string{"tests"}, app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrSessionFailed)
	assert.Contains(t, f.out.String(), "✗ tests-3.8 failed")
}

func TestApp_Run_UnknownSession(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(domain.DefaultOptions(), nil)

	err := f.app.Run(context.Background(), []string{"docs"}, app.RunOptions{})
	require.ErrorContains(t, err, domain.ErrSessionNotFound.Error())
}

func TestApp_Run_ConfigError(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(nil, errors.New("config load error"))

	err := f.app.Run(context.Background(), nil, app.RunOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestApp_Run_Debug(t *testing.T) {
	f := newFixture(t)
	f.logger.EXPECT().SetLevel(domain.LogLevelDebug)
	f.loader.EXPECT().Load(gomock.Any()).Return(nil, errors.New("stop here"))

	err := f.app.Run(context.Background(), nil, app.RunOptions{Options: app.Options{Debug: true}})
	require.Error(t, err)
}

func TestApp_List(t *testing.T) {
	f := newFixture(t)
	opts := domain.DefaultOptions()
	opts.PythonVersions = []string{"3.9"}
	f.loader.EXPECT().Load("noxy.yaml").Return(opts, nil)

	require.NoError(t, f.app.List(context.Background(), app.Options{}))

	out := f.out.String()
	for _, name := range []string{"update_lockfiles", "flake8", "black", "tests-3.9"} {
		assert.Contains(t, out, name)
	}
}

func TestApp_Status(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().List().Return([]domain.RunRecord{{
		Session:   "tests-3.8",
		Status:    domain.RunStatusFailed,
		StartedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Duration:  time.Second,
	}}, nil)

	require.NoError(t, f.app.Status(context.Background(), app.Options{}))
	assert.Contains(t, f.out.String(), "tests-3.8")
	assert.Contains(t, f.out.String(), "failed")
}

func TestApp_Status_StoreError(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().List().Return(nil, errors.New("corrupt"))

	err := f.app.Status(context.Background(), app.Options{})
	require.ErrorContains(t, err, "failed to read run records")
}
