package domain

import "strings"

// Defaults mirroring the project's historic automation settings.
const (
	DefaultPackage             = "esmf_regrid"
	DefaultEnvDir              = ".nox"
	DefaultRequirementsDir     = "requirements"
	DefaultIrisRepository      = "https://github.com/scitools/iris.git"
	DefaultIrisRequirementsURL = "https://raw.githubusercontent.com/SciTools/iris/{ref}/requirements/ci/{file}"
	DefaultBlackVersion        = "20.8b1"
	DefaultConfigFile          = "noxy.yaml"
)

// DefaultPythonVersions are tested when PY_VER is unset.
var DefaultPythonVersions = []string{"3.6", "3.7", "3.8"}

// DefaultCoveragePackages are conda-installed when coverage is enabled.
var DefaultCoveragePackages = []string{"pytest-cov", "codecov"}

// Options holds the resolved configuration for one invocation.
type Options struct {
	Package             string
	PythonVersions      []string
	Coverage            bool
	CoveragePackages    []string
	IrisSource          string
	IrisRepository      string
	IrisRequirementsURL string
	RequirementsDir     string
	Lock                LockLayout
	BlackVersion        string
	LintPaths           []string
	EnvDir              string
	ReuseExisting       bool
	InstallOnly         bool
}

// DefaultOptions returns the options used when neither a config file nor
// environment variables override them.
func DefaultOptions() *Options {
	return &Options{
		Package:             DefaultPackage,
		PythonVersions:      append([]string(nil), DefaultPythonVersions...),
		CoveragePackages:    append([]string(nil), DefaultCoveragePackages...),
		IrisRepository:      DefaultIrisRepository,
		IrisRequirementsURL: DefaultIrisRequirementsURL,
		RequirementsDir:     DefaultRequirementsDir,
		Lock:                DefaultLockLayout(),
		BlackVersion:        DefaultBlackVersion,
		LintPaths:           []string{DefaultPackage},
		EnvDir:              DefaultEnvDir,
		ReuseExisting:       true,
	}
}

// IrisRequirementsFor expands the requirements URL template for a ref and spec file name.
func (o *Options) IrisRequirementsFor(ref, file string) string {
	return strings.NewReplacer("{ref}", ref, "{file}", file).Replace(o.IrisRequirementsURL)
}
