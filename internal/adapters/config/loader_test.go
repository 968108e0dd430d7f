package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/noxy/internal/adapters/config"
	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T, env map[string]string) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoaderWithEnv(mockLogger, func(key string) string { return env[key] })
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), domain.DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	loader := newLoader(t, nil)

	opts, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultOptions(), opts)
	assert.Equal(t, []string{"3.6", "3.7", "3.8"}, opts.PythonVersions)
	assert.False(t, opts.Coverage)
	assert.True(t, opts.ReuseExisting)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
package: regrid_tools
python_versions: ["3.9", "3.10"]
lock:
  platform: osx-64
iris:
  repository: https://example.com/iris.git
reuse_existing: false
black_version: "21.5b1"
`)
	opts, err := newLoader(t, nil).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "regrid_tools", opts.Package)
	assert.Equal(t, []string{"regrid_tools"}, opts.LintPaths, "lint paths follow the package")
	assert.Equal(t, []string{"3.9", "3.10"}, opts.PythonVersions)
	assert.Equal(t, "osx-64", opts.Lock.Platform)
	assert.Equal(t, domain.DefaultLockDir, opts.Lock.Dir)
	assert.Equal(t, "https://example.com/iris.git", opts.IrisRepository)
	assert.Equal(t, domain.DefaultIrisRequirementsURL, opts.IrisRequirementsURL)
	assert.Equal(t, "21.5b1", opts.BlackVersion)
	assert.False(t, opts.ReuseExisting)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, "python_versions: [\"3.9\"]\n")
	loader := newLoader(t, map[string]string{
		config.EnvPythonVersions: "3.7, 3.8",
		config.EnvCoverage:       "true",
		config.EnvIrisSource:     "github:main",
	})

	opts, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"3.7", "3.8"}, opts.PythonVersions)
	assert.True(t, opts.Coverage)
	assert.Equal(t, "github:main", opts.IrisSource)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "python_versions: [unterminated\n")

	_, err := newLoader(t, nil).Load(path)
	require.Error(t, err)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, path, zErr.Metadata()["path"])
}

func TestParseVersions(t *testing.T) {
	assert.Equal(t, []string{"3.8"}, config.ParseVersions("3.8"))
	assert.Equal(t, []string{"3.6", "3.7", "3.8"}, config.ParseVersions("3.6,3.7 3.8"))
	assert.Empty(t, config.ParseVersions(" , "))
}

func TestParseFlag(t *testing.T) {
	for _, on := range []string{"1", "true", "TRUE", "yes", "on", "anything"} {
		assert.True(t, config.ParseFlag(on), on)
	}
	for _, off := range []string{"", "0", "false", "False", "no", "off", "  "} {
		assert.False(t, config.ParseFlag(off), off)
	}
}
