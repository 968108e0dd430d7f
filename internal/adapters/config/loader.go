// Package config provides the configuration loader for noxy.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode"

	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables read on every load. They override the config file.
const (
	EnvPythonVersions = "PY_VER"
	EnvCoverage       = "COVERAGE"
	EnvIrisSource     = "IRIS_SOURCE"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file and environment variables.
type Loader struct {
	logger ports.Logger
	getenv func(string) string
}

// NewLoader creates a new Loader reading the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithEnv(logger, os.Getenv)
}

// NewLoaderWithEnv creates a new Loader using getenv to read environment variables.
func NewLoaderWithEnv(logger ports.Logger, getenv func(string) string) *Loader {
	return &Loader{logger: logger, getenv: getenv}
}

// Load reads the configuration file at path, if any, and applies environment overrides.
func (l *Loader) Load(path string) (*domain.Options, error) {
	opts := domain.DefaultOptions()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.logger.Debug("no configuration file at " + path + ", using defaults")
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	default:
		var file Noxyfile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
		}
		apply(opts, &file)
	}

	l.applyEnv(opts)
	return opts, nil
}

func apply(opts *domain.Options, file *Noxyfile) {
	setString(&opts.Package, file.Package)
	setString(&opts.RequirementsDir, file.RequirementsDir)
	setString(&opts.BlackVersion, file.BlackVersion)
	setString(&opts.EnvDir, file.EnvDir)
	setString(&opts.Lock.Dir, file.Lock.Dir)
	setString(&opts.Lock.Platform, file.Lock.Platform)
	setString(&opts.IrisRepository, file.Iris.Repository)
	setString(&opts.IrisRequirementsURL, file.Iris.RequirementsURL)

	if len(file.PythonVersions) > 0 {
		opts.PythonVersions = file.PythonVersions
	}
	if len(file.CoveragePackages) > 0 {
		opts.CoveragePackages = file.CoveragePackages
	}
	if len(file.LintPaths) > 0 {
		opts.LintPaths = file.LintPaths
	} else if file.Package != "" {
		opts.LintPaths = []string{file.Package}
	}
	if file.ReuseExisting != nil {
		opts.ReuseExisting = *file.ReuseExisting
	}
}

func (l *Loader) applyEnv(opts *domain.Options) {
	if versions := ParseVersions(l.getenv(EnvPythonVersions)); len(versions) > 0 {
		opts.PythonVersions = versions
	}
	opts.Coverage = ParseFlag(l.getenv(EnvCoverage))
	opts.IrisSource = l.getenv(EnvIrisSource)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// ParseVersions splits a comma or whitespace separated list of interpreter versions.
func ParseVersions(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// ParseFlag reports whether an environment flag is switched on.
// Any non-empty value other than 0, false, no or off enables it.
func ParseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
