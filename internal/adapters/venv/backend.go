// Package venv implements plain Python virtual environments populated with pip.
package venv

import (
	"context"
	"os"

	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EnvironmentBackend = (*Backend)(nil)

// Backend implements ports.EnvironmentBackend with "python -m venv".
type Backend struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewBackend creates a venv Backend running commands through executor.
func NewBackend(executor ports.Executor, logger ports.Logger) *Backend {
	return &Backend{executor: executor, logger: logger}
}

// Kind reports the venv backend.
func (b *Backend) Kind() domain.Backend {
	return domain.BackendVenv
}

// Create creates the virtual environment, reusing or replacing an existing one.
func (b *Backend) Create(ctx context.Context, env *domain.Environment) error {
	if _, err := os.Stat(env.Location); err == nil {
		if env.ReuseExisting {
			b.logger.Info("Re-using existing virtual environment at " + env.Location)
			return nil
		}
		if err := os.RemoveAll(env.Location); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove virtual environment"), "environment", env.Name)
		}
	}

	b.logger.Info("Creating virtual environment in " + env.Location)
	err := b.executor.Execute(ctx, &domain.Command{
		Args: []string{interpreter(env.Python), "-m", "venv", env.Location},
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create virtual environment"), "environment", env.Name)
	}
	return nil
}

// Install pip-installs args into the environment.
func (b *Backend) Install(ctx context.Context, env *domain.Environment, args ...string) error {
	return b.executor.Execute(ctx, &domain.Command{
		Args: append([]string{"python", "-m", "pip", "install"}, args...),
		Env:  b.Environ(env),
	})
}

// CondaInstall is not supported by virtual environments.
func (b *Backend) CondaInstall(_ context.Context, env *domain.Environment, _ ...string) error {
	return zerr.With(domain.ErrCondaUnsupported, "environment", env.Name)
}

// Environ returns the variables that activate the environment.
func (b *Backend) Environ(env *domain.Environment) []string {
	return []string{
		"PATH=" + env.BinDir(),
		"VIRTUAL_ENV=" + env.Location,
	}
}

// interpreter returns the host interpreter for a version, e.g. "python3.8".
func interpreter(version string) string {
	if version == "" {
		return "python3"
	}
	return "python" + version
}
