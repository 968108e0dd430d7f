package ports

import "go.trai.ch/noxy/internal/core/domain"

// CacheMarker records which lock file an environment was populated from.
//
//go:generate go run go.uber.org/mock/mockgen -source=marker.go -destination=mocks/mock_marker.go -package=mocks
type CacheMarker interface {
	// Populated reports whether the environment has been populated from a lock file.
	Populated(env *domain.Environment, lockfile string) bool

	// Changed reports whether the lock file differs from the one the environment
	// was populated from. It is false for an environment that was never populated.
	Changed(env *domain.Environment, lockfile string) (bool, error)

	// Save stores the digest of the current lock file for the environment.
	Save(env *domain.Environment, lockfile string) error
}
