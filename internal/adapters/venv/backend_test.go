package venv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/noxy/internal/adapters/venv"
	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*venv.Backend, *mocks.MockExecutor) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	return venv.NewBackend(mockExecutor, mockLogger), mockExecutor
}

func TestBackend_Create_HostInterpreter(t *testing.T) {
	backend, mockExecutor := setup(t)
	env := domain.NewEnvironment(t.TempDir(), "flake8", "", domain.BackendVenv, true)

	mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd *domain.Command) error {
			assert.Equal(t, []string{"python3", "-m", "venv", env.Location}, cmd.Args)
			return nil
		})

	require.NoError(t, backend.Create(context.Background(), env))
}

func TestBackend_Create_VersionedInterpreter(t *testing.T) {
	backend, mockExecutor := setup(t)
	env := domain.NewEnvironment(t.TempDir(), "black", "3.8", domain.BackendVenv, true)

	mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd *domain.Command) error {
			assert.Equal(t, "python3.8", cmd.Args[0])
			return nil
		})

	require.NoError(t, backend.Create(context.Background(), env))
}

func TestBackend_Create_ReuseAndRecreate(t *testing.T) {
	backend, mockExecutor := setup(t)
	env := domain.NewEnvironment(t.TempDir(), "flake8", "", domain.BackendVenv, true)
	stale := filepath.Join(env.Location, "stale")
	require.NoError(t, os.MkdirAll(env.Location, 0o750))
	require.NoError(t, os.WriteFile(stale, nil, 0o600))

	require.NoError(t, backend.Create(context.Background(), env))
	assert.FileExists(t, stale)

	env.ReuseExisting = false
	mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil)
	require.NoError(t, backend.Create(context.Background(), env))
	assert.NoFileExists(t, stale)
}

func TestBackend_Install(t *testing.T) {
	backend, mockExecutor := setup(t)
	env := domain.NewEnvironment(t.TempDir(), "flake8", "", domain.BackendVenv, true)

	mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd *domain.Command) error {
			assert.Equal(t, []string{"python", "-m", "pip", "install", "flake8", "flake8-docstrings"}, cmd.Args)
			assert.Equal(t, []string{"PATH=" + env.BinDir(), "VIRTUAL_ENV=" + env.Location}, cmd.Env)
			return nil
		})

	require.NoError(t, backend.Install(context.Background(), env, "flake8", "flake8-docstrings"))
}

func TestBackend_CondaInstallUnsupported(t *testing.T) {
	backend, _ := setup(t)
	env := domain.NewEnvironment(t.TempDir(), "flake8", "", domain.BackendVenv, true)

	err := backend.CondaInstall(context.Background(), env, "codecov")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCondaUnsupported.Error())
}
