package ports

import (
	"context"

	"go.trai.ch/noxy/internal/core/domain"
)

// EnvironmentBackend creates and populates isolated interpreter environments.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentBackend interface {
	// Kind reports which backend this is.
	Kind() domain.Backend

	// Create makes sure the environment exists.
	//
	// An existing environment is kept when env.ReuseExisting is set and
	// destroyed and created afresh otherwise.
	Create(ctx context.Context, env *domain.Environment) error

	// Install pip-installs the given arguments into the environment.
	Install(ctx context.Context, env *domain.Environment, args ...string) error

	// CondaInstall conda-installs the given arguments into the environment.
	// Backends other than conda return domain.ErrCondaUnsupported.
	CondaInstall(ctx context.Context, env *domain.Environment, args ...string) error

	// Environ returns the "KEY=VALUE" entries that activate the environment.
	Environ(env *domain.Environment) []string
}
