// Package conda implements conda-managed session environments.
package conda

import (
	"context"
	"os"

	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EnvironmentBackend = (*Backend)(nil)

// Backend implements ports.EnvironmentBackend with the conda CLI.
type Backend struct {
	executor ports.Executor
	logger   ports.Logger
	program  string
}

// NewBackend creates a conda Backend running commands through executor.
func NewBackend(executor ports.Executor, logger ports.Logger) *Backend {
	return &Backend{executor: executor, logger: logger, program: "conda"}
}

// Kind reports the conda backend.
func (b *Backend) Kind() domain.Backend {
	return domain.BackendConda
}

// Create creates the conda environment at env.Location.
// An existing environment is reused or removed depending on env.ReuseExisting.
func (b *Backend) Create(ctx context.Context, env *domain.Environment) error {
	if exists(env.Location) {
		if env.ReuseExisting {
			b.logger.Info("Re-using existing conda env at " + env.Location)
			return nil
		}
		if err := b.run(ctx, "remove", "--yes", "--prefix", env.Location, "--all"); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove conda env"), "environment", env.Name)
		}
		// conda leaves the prefix directory behind.
		if err := os.RemoveAll(env.Location); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove conda env directory"), "environment", env.Name)
		}
	}

	args := []string{"create", "--yes", "--prefix", env.Location}
	if env.Python != "" {
		args = append(args, "python="+env.Python)
	}
	b.logger.Info("Creating conda env in " + env.Location)
	if err := b.run(ctx, args...); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create conda env"), "environment", env.Name)
	}
	return nil
}

// Install pip-installs args with the environment's interpreter.
func (b *Backend) Install(ctx context.Context, env *domain.Environment, args ...string) error {
	return b.executor.Execute(ctx, &domain.Command{
		Args: append([]string{"python", "-m", "pip", "install"}, args...),
		Env:  b.Environ(env),
	})
}

// CondaInstall conda-installs args into the environment.
func (b *Backend) CondaInstall(ctx context.Context, env *domain.Environment, args ...string) error {
	return b.run(ctx, append([]string{"install", "--yes", "--prefix", env.Location}, args...)...)
}

// Environ returns the variables that activate the environment.
func (b *Backend) Environ(env *domain.Environment) []string {
	return []string{
		"PATH=" + env.BinDir(),
		"CONDA_PREFIX=" + env.Location,
	}
}

func (b *Backend) run(ctx context.Context, args ...string) error {
	return b.executor.Execute(ctx, &domain.Command{
		Args: append([]string{b.program}, args...),
	})
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
