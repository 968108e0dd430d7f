package sessions

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/core/ports"
	"go.trai.ch/noxy/internal/engine/session"
)

// TestsTag selects every tests-<python> session.
const TestsTag = "tests"

// Catalog builds the project's session definitions from the resolved options.
type Catalog struct {
	opts    *domain.Options
	marker  ports.CacheMarker
	fetcher ports.Fetcher
	editor  ports.RequirementsEditor
	out     io.Writer
}

// NewCatalog creates a Catalog. Messages meant for the user are written to os.Stdout.
func NewCatalog(
	opts *domain.Options,
	marker ports.CacheMarker,
	fetcher ports.Fetcher,
	editor ports.RequirementsEditor,
) *Catalog {
	return &Catalog{
		opts:    opts,
		marker:  marker,
		fetcher: fetcher,
		editor:  editor,
		out:     os.Stdout,
	}
}

// SetOutput changes where user-facing messages are written.
func (c *Catalog) SetOutput(w io.Writer) {
	c.out = w
}

// Registry returns a registry with every session: update_lockfiles, flake8,
// black and one tests session per configured Python version.
func (c *Catalog) Registry() (*Registry, error) {
	reg := NewRegistry()
	defs := []session.Definition{
		{
			Name:        "update_lockfiles",
			Description: "Re-resolve env specs and store them as lock files.",
			Backend:     domain.BackendVenv,
			Files:       []string{filepath.Join(c.opts.RequirementsDir, "py[0-9]*.yml")},
			Func:        c.UpdateLockfiles,
		},
		{
			Name:        "flake8",
			Description: "Perform flake8 linting of the code-base.",
			Backend:     domain.BackendVenv,
			Files:       c.opts.LintPaths,
			Func:        c.Flake8,
		},
		{
			Name:        "black",
			Description: "Perform black format checking of the code-base.",
			Backend:     domain.BackendVenv,
			Files:       c.opts.LintPaths,
			Func:        c.Black,
		},
	}
	for _, python := range c.opts.PythonVersions {
		defs = append(defs, session.Definition{
			Name:        TestsTag + "-" + python,
			Description: "Perform integration and unit tests.",
			Python:      python,
			Backend:     domain.BackendConda,
			Tags:        []string{TestsTag},
			Files:       []string{c.opts.Lock.SessionLockfile(python), c.opts.Package},
			Func:        c.Tests,
		})
	}

	for _, def := range defs {
		if err := reg.Add(def); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Flake8 lints the configured paths.
func (c *Catalog) Flake8(ctx context.Context, s *session.Session) error {
	if err := s.Install(ctx, "flake8", "flake8-docstrings", "flake8-import-order"); err != nil {
		return err
	}
	for _, path := range c.opts.LintPaths {
		if err := s.Run(ctx, "flake8", path); err != nil {
			return err
		}
	}
	return nil
}

// Black checks the formatting of the configured paths.
func (c *Catalog) Black(ctx context.Context, s *session.Session) error {
	if err := s.Install(ctx, "black=="+c.opts.BlackVersion); err != nil {
		return err
	}
	for _, path := range c.opts.LintPaths {
		if err := s.Run(ctx, "black", "--check", path); err != nil {
			return err
		}
	}
	return nil
}

// Tests runs the test suite, with coverage when enabled.
func (c *Catalog) Tests(ctx context.Context, s *session.Session) error {
	if err := c.PrepareEnv(ctx, s); err != nil {
		return err
	}
	if err := s.Install(ctx, "--no-deps", "--editable", "."); err != nil {
		return err
	}

	if !c.opts.Coverage {
		return s.Run(ctx, "pytest")
	}

	args := append([]string{"--channel=conda-forge"}, c.opts.CoveragePackages...)
	if err := s.CondaInstall(ctx, args...); err != nil {
		return err
	}
	if err := s.Run(ctx, "pytest", "--cov-report=xml", "--cov"); err != nil {
		return err
	}
	return s.Run(ctx, "codecov")
}
