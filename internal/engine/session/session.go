// Package session implements the per-session command API that session
// definitions are written against.
package session

import (
	"context"
	"os"
	"slices"
	"strings"

	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/core/ports"
	"go.trai.ch/zerr"
)

const tmpDirPerm = 0o750

// Func is the body of a session.
type Func func(ctx context.Context, s *Session) error

// Definition describes a runnable session.
type Definition struct {
	// Name is the unique session name (e.g. "tests-3.8").
	Name string

	// Description is shown by the list command.
	Description string

	// Python is the interpreter version, empty for the host interpreter.
	Python string

	// Backend selects the environment backend.
	Backend domain.Backend

	// Tags group sessions so that they can be selected together.
	Tags []string

	// Files are the inputs fingerprinted for the run record.
	Files []string

	Func Func
}

// Config holds everything a Session needs to run commands.
type Config struct {
	Env         *domain.Environment
	Backend     ports.EnvironmentBackend
	Executor    ports.Executor
	Logger      ports.Logger
	Vertex      ports.Vertex
	PosArgs     []string
	InstallOnly bool
}

// Session runs the commands of one session inside its environment.
type Session struct {
	env         *domain.Environment
	backend     ports.EnvironmentBackend
	executor    ports.Executor
	logger      ports.Logger
	vertex      ports.Vertex
	posargs     []string
	installOnly bool
	dir         string
}

// New creates a Session from cfg.
func New(cfg Config) *Session {
	return &Session{
		env:         cfg.Env,
		backend:     cfg.Backend,
		executor:    cfg.Executor,
		logger:      cfg.Logger,
		vertex:      cfg.Vertex,
		posargs:     slices.Clone(cfg.PosArgs),
		installOnly: cfg.InstallOnly,
	}
}

// Name returns the session name.
func (s *Session) Name() string { return s.env.Name }

// Python returns the interpreter version of the session.
func (s *Session) Python() string { return s.env.Python }

// Env returns the session environment.
func (s *Session) Env() *domain.Environment { return s.env }

// PosArgs returns a copy of the positional arguments given after "--".
func (s *Session) PosArgs() []string { return slices.Clone(s.posargs) }

// Logger returns the session logger.
func (s *Session) Logger() ports.Logger { return s.logger }

// Verbose reports whether -v or --verbose was passed as a positional argument.
func (s *Session) Verbose() bool {
	return slices.Contains(s.posargs, "-v") || slices.Contains(s.posargs, "--verbose")
}

// Dir returns the working directory of subsequent commands, "" for the current directory.
func (s *Session) Dir() string { return s.dir }

// Cd changes the working directory of subsequent commands.
// It returns a function restoring the previous directory.
func (s *Session) Cd(dir string) (restore func()) {
	prev := s.dir
	s.logger.Info("cd " + dir)
	s.dir = dir
	return func() { s.dir = prev }
}

// CreateTmp creates the session's scratch directory and returns its path.
func (s *Session) CreateTmp() (string, error) {
	tmp := s.env.TmpDir()
	if err := os.MkdirAll(tmp, tmpDirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to create tmp directory"), "path", tmp)
	}
	return tmp, nil
}

// Run runs a command in the environment.
// It is skipped when only installation was requested.
func (s *Session) Run(ctx context.Context, args ...string) error {
	if s.installOnly {
		s.logger.Info("Skipping " + strings.Join(args, " ") + " run, as --install-only is set.")
		return nil
	}
	return s.execute(ctx, args, false)
}

// RunSilent runs a command like Run but only shows its output when it fails.
func (s *Session) RunSilent(ctx context.Context, args ...string) error {
	if s.installOnly {
		s.logger.Info("Skipping " + strings.Join(args, " ") + " run, as --install-only is set.")
		return nil
	}
	return s.execute(ctx, args, true)
}

// RunAlways runs a command even when only installation was requested.
func (s *Session) RunAlways(ctx context.Context, args ...string) error {
	return s.execute(ctx, args, false)
}

// Install pip-installs args into the environment.
func (s *Session) Install(ctx context.Context, args ...string) error {
	if len(args) == 0 {
		return zerr.Wrap(domain.ErrEmptyCommand, "install requires at least one argument")
	}
	return s.backend.Install(ctx, s.env, args...)
}

// CondaInstall conda-installs args into the environment.
func (s *Session) CondaInstall(ctx context.Context, args ...string) error {
	if len(args) == 0 {
		return zerr.Wrap(domain.ErrEmptyCommand, "conda install requires at least one argument")
	}
	return s.backend.CondaInstall(ctx, s.env, args...)
}

// Debug logs msg at debug level and records it on the session vertex.
func (s *Session) Debug(msg string) {
	s.logger.Debug(msg)
	if s.vertex != nil {
		s.vertex.Log(domain.LogLevelDebug, msg)
	}
}

// Recreate destroys and recreates the environment regardless of the reuse setting.
func (s *Session) Recreate(ctx context.Context) error {
	reuse := s.env.ReuseExisting
	s.env.ReuseExisting = false
	defer func() { s.env.ReuseExisting = reuse }()
	return s.backend.Create(ctx, s.env)
}

func (s *Session) execute(ctx context.Context, args []string, silent bool) error {
	if len(args) == 0 {
		return domain.ErrEmptyCommand
	}
	cmd := &domain.Command{
		Args:   slices.Clone(args),
		Dir:    s.dir,
		Env:    s.backend.Environ(s.env),
		Silent: silent,
	}
	if s.vertex != nil {
		cmd.Stdout = s.vertex.Stdout()
		cmd.Stderr = s.vertex.Stderr()
	}
	return s.executor.Execute(ctx, cmd)
}
