package session_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/core/ports/mocks"
	"go.trai.ch/noxy/internal/engine/session"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	backend  *mocks.MockEnvironmentBackend
	executor *mocks.MockExecutor
	logger   *mocks.MockLogger
	env      *domain.Environment
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		backend:  mocks.NewMockEnvironmentBackend(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		env:      domain.NewEnvironment(t.TempDir(), "tests-3.8", "3.8", domain.BackendConda, true),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.backend.EXPECT().Environ(gomock.Any()).Return([]string{"PATH=/env/bin"}).AnyTimes()
	return f
}

func (f *fixture) session(posargs []string, installOnly bool) *session.Session {
	return session.New(session.Config{
		Env:         f.env,
		Backend:     f.backend,
		Executor:    f.executor,
		Logger:      f.logger,
		PosArgs:     posargs,
		InstallOnly: installOnly,
	})
}

func TestSession_Run(t *testing.T) {
	f := newFixture(t)
	s := f.session(nil, false)

	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd *domain.Command) error {
			assert.Equal(t, []string{"pytest", "-x"}, cmd.Args)
			assert.Equal(t, []string{"PATH=/env/bin"}, cmd.Env)
			assert.False(t, cmd.Silent)
			return nil
		})

	require.NoError(t, s.Run(context.Background(), "pytest", "-x"))
}

func TestSession_RunSilent(t *testing.T) {
	f := newFixture(t)
	s := f.session(nil, false)

	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd *domain.Command) error {
			assert.True(t, cmd.Silent)
			return nil
		})

	require.NoError(t, s.RunSilent(context.Background(), "conda-lock", "lock"))
}

func TestSession_InstallOnly(t *testing.T) {
	f := newFixture(t)
	s := f.session(nil, true)

	// Run and RunSilent are skipped, RunAlways is not.
	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd *domain.Command) error {
			assert.Equal(t, []string{"conda", "info"}, cmd.Args)
			return nil
		}).Times(1)

	ctx := context.Background()
	require.NoError(t, s.Run(ctx, "pytest"))
	require.NoError(t, s.RunSilent(ctx, "codecov"))
	require.NoError(t, s.RunAlways(ctx, "conda", "info"))
}

func TestSession_EmptyCommand(t *testing.T) {
	f := newFixture(t)
	s := f.session(nil, false)
	ctx := context.Background()

	require.ErrorIs(t, s.Run(ctx), domain.ErrEmptyCommand)
	require.ErrorIs(t, s.Install(ctx), domain.ErrEmptyCommand)
	require.ErrorIs(t, s.CondaInstall(ctx), domain.ErrEmptyCommand)
}

func TestSession_Cd(t *testing.T) {
	f := newFixture(t)
	s := f.session(nil, false)

	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd *domain.Command) error {
			assert.Equal(t, "checkout", cmd.Dir)
			return nil
		})

	restore := s.Cd("checkout")
	require.NoError(t, s.RunAlways(context.Background(), "git", "fetch", "origin"))
	restore()
	assert.Empty(t, s.Dir())
}

func TestSession_Verbose(t *testing.T) {
	f := newFixture(t)

	assert.False(t, f.session(nil, false).Verbose())
	assert.False(t, f.session([]string{"--iris=github:main"}, false).Verbose())
	assert.True(t, f.session([]string{"-v"}, false).Verbose())
	assert.True(t, f.session([]string{"-k", "regrid", "--verbose"}, false).Verbose())
}

func TestSession_PosArgsIsCopy(t *testing.T) {
	f := newFixture(t)
	args := []string{"-x"}
	s := f.session(args, false)

	got := s.PosArgs()
	got[0] = "changed"
	assert.Equal(t, []string{"-x"}, s.PosArgs())
	args[0] = "changed"
	assert.Equal(t, []string{"-x"}, s.PosArgs())
}

func TestSession_CreateTmp(t *testing.T) {
	f := newFixture(t)
	s := f.session(nil, false)

	tmp, err := s.CreateTmp()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.env.Location, "tmp"), tmp)
	assert.DirExists(t, tmp)

	again, err := s.CreateTmp()
	require.NoError(t, err)
	assert.Equal(t, tmp, again)
}

func TestSession_Recreate(t *testing.T) {
	f := newFixture(t)
	s := f.session(nil, false)

	f.backend.EXPECT().Create(gomock.Any(), f.env).DoAndReturn(
		func(_ context.Context, env *domain.Environment) error {
			assert.False(t, env.ReuseExisting)
			return nil
		})

	require.NoError(t, s.Recreate(context.Background()))
	assert.True(t, f.env.ReuseExisting)
}

func TestSession_InstallDelegatesToBackend(t *testing.T) {
	f := newFixture(t)
	s := f.session(nil, true)
	ctx := context.Background()

	f.backend.EXPECT().Install(gomock.Any(), f.env, "--no-deps", "--editable", ".").Return(nil)
	f.backend.EXPECT().CondaInstall(gomock.Any(), f.env, "--file=py38.lock").Return(nil)

	require.NoError(t, s.Install(ctx, "--no-deps", "--editable", "."))
	require.NoError(t, s.CondaInstall(ctx, "--file=py38.lock"))
}
