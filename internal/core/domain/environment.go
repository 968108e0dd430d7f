package domain

import "path/filepath"

// Backend identifies the tool that creates and populates an environment.
type Backend string

const (
	// BackendConda creates environments with conda and can install from lock files.
	BackendConda Backend = "conda"
	// BackendVenv creates plain Python virtual environments populated with pip.
	BackendVenv Backend = "venv"
)

// Environment is an isolated interpreter environment owned by one session.
// It lives outside the process; only its location and settings are modelled here.
type Environment struct {
	// Name is the session name the environment belongs to (e.g. "tests-3.8").
	Name string

	// Location is the directory holding the environment.
	Location string

	// Python is the interpreter version, empty for the host interpreter.
	Python string

	// Backend selects how the environment is created.
	Backend Backend

	// ReuseExisting keeps an existing environment instead of recreating it.
	ReuseExisting bool
}

// NewEnvironment returns the environment for a session rooted under envDir.
func NewEnvironment(envDir, name, python string, backend Backend, reuse bool) *Environment {
	return &Environment{
		Name:          name,
		Location:      filepath.Join(envDir, name),
		Python:        python,
		Backend:       backend,
		ReuseExisting: reuse,
	}
}

// TmpDir returns the scratch directory of the environment.
// Cache markers and source checkouts are stored here.
func (e *Environment) TmpDir() string {
	return filepath.Join(e.Location, "tmp")
}

// BinDir returns the directory holding the environment's executables.
func (e *Environment) BinDir() string {
	return filepath.Join(e.Location, "bin")
}
