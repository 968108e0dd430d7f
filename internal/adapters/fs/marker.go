package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

var _ ports.CacheMarker = (*Marker)(nil)

// Marker stores the SHA-256 digest of the lock file an environment was
// populated from, next to the environment in its tmp directory.
type Marker struct{}

// NewMarker creates a new Marker.
func NewMarker() *Marker {
	return &Marker{}
}

// Path returns the marker file of env for lockfile.
func (m *Marker) Path(env *domain.Environment, lockfile string) string {
	return filepath.Join(env.TmpDir(), filepath.Base(lockfile))
}

// Populated reports whether a marker file exists for the environment.
func (m *Marker) Populated(env *domain.Environment, lockfile string) bool {
	info, err := os.Stat(m.Path(env, lockfile))
	return err == nil && info.Mode().IsRegular()
}

// Changed reports whether the stored digest differs from the digest of the
// lock file currently on disk.
func (m *Marker) Changed(env *domain.Environment, lockfile string) (bool, error) {
	if !m.Populated(env, lockfile) {
		return false, nil
	}

	expected, err := lockDigest(lockfile)
	if err != nil {
		return false, err
	}

	//nolint:gosec // Path is derived from the environment location
	actual, err := os.ReadFile(m.Path(env, lockfile))
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to read cache marker"), "environment", env.Name)
	}

	return string(actual) != expected, nil
}

// Save writes the digest of the current lock file to the marker.
func (m *Marker) Save(env *domain.Environment, lockfile string) error {
	digest, err := lockDigest(lockfile)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(env.TmpDir(), dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create environment tmp dir"), "environment", env.Name)
	}

	path := m.Path(env, lockfile)
	if err := os.WriteFile(path, []byte(digest), filePerm); err != nil { //nolint:gosec // marker is not secret
		return zerr.With(zerr.Wrap(err, "failed to write cache marker"), "path", path)
	}
	return nil
}

func lockDigest(lockfile string) (string, error) {
	data, err := os.ReadFile(lockfile) //nolint:gosec // lock file path comes from the lock layout
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read lock file"), "lockfile", lockfile)
	}
	return domain.Digest(data), nil
}
