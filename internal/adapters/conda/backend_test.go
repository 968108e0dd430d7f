package conda_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/noxy/internal/adapters/conda"
	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*conda.Backend, *mocks.MockExecutor, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	return conda.NewBackend(mockExecutor, mockLogger), mockExecutor, t.TempDir()
}


func TestBackend_Create_New(t *testing.T) {
	backend, mockExecutor, root := setup(t)
	env := domain.NewEnvironment(root, "tests-3.8", "3.8", domain.BackendConda, true)

	var got []string
	mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd *domain.Command) error {
			got = cmd.Args
			return nil
		})

	require.NoError(t, backend.Create(context.Background(), env))
	assert.Equal(t, []string{"conda", "create", "--yes", "--prefix", env.Location, "python=3.8"}, got)
}

func TestBackend_Create_ReusesExisting(t *testing.T) {
	backend, _, root := setup(t)
	env := domain.NewEnvironment(root, "tests-3.8", "3.8", domain.BackendConda, true)
	require.NoError(t, os.MkdirAll(env.Location, 0o750))

	// No executor calls expected.
	require.NoError(t, backend.Create(context.Background(), env))
}

func TestBackend_Create_Recreates(t *testing.T) {
	backend, mockExecutor, root := setup(t)
	env := domain.NewEnvironment(root, "tests-3.8", "3.8", domain.BackendConda, false)
	require.NoError(t, os.MkdirAll(env.TmpDir(), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(env.TmpDir(), "py38-linux-64.lock"), []byte("old"), 0o600))

	var calls [][]string
	mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd *domain.Command) error {
			calls = append(calls, cmd.Args)
			return nil
		}).Times(2)

	require.NoError(t, backend.Create(context.Background(), env))
	require.Len(t, calls, 2)
	assert.Equal(t, []string{"conda", "remove", "--yes", "--prefix", env.Location, "--all"}, calls[0])
	assert.Equal(t, "create", calls[1][1])

	_, err := os.Stat(env.TmpDir())
	assert.True(t, os.IsNotExist(err), "recreating drops the stale cache marker")
}

func TestBackend_Create_Failure(t *testing.T) {
	backend, mockExecutor, root := setup(t)
	env := domain.NewEnvironment(root, "tests-3.8", "3.8", domain.BackendConda, true)

	mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(errors.New("solver failed"))

	err := backend.Create(context.Background(), env)
	require.Error(t, err)
}

func TestBackend_CondaInstall(t *testing.T) {
	backend, mockExecutor, root := setup(t)
	env := domain.NewEnvironment(root, "tests-3.8", "3.8", domain.BackendConda, true)

	mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd *domain.Command) error {
			assert.Equal(t, []string{
				"conda", "install", "--yes", "--prefix", env.Location, "--file=requirements/nox.lock/py38-linux-64.lock",
			}, cmd.Args)
			return nil
		})

	require.NoError(t, backend.CondaInstall(context.Background(), env, "--file=requirements/nox.lock/py38-linux-64.lock"))
}

func TestBackend_Install(t *testing.T) {
	backend, mockExecutor, root := setup(t)
	env := domain.NewEnvironment(root, "tests-3.8", "3.8", domain.BackendConda, true)

	mockExecutor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd *domain.Command) error {
			assert.Equal(t, []string{"python", "-m", "pip", "install", "--no-deps", "--editable", "."}, cmd.Args)
			assert.Contains(t, cmd.Env, "PATH="+env.BinDir())
			assert.Contains(t, cmd.Env, "CONDA_PREFIX="+env.Location)
			return nil
		})

	require.NoError(t, backend.Install(context.Background(), env, "--no-deps", "--editable", "."))
}

func TestBackend_Kind(t *testing.T) {
	backend, _, _ := setup(t)
	assert.Equal(t, domain.BackendConda, backend.Kind())
}
