package config

// Noxyfile represents the structure of the noxy.yaml configuration file.
// Every key is optional; unset keys keep their defaults.
type Noxyfile struct {
	Package          string   `yaml:"package"`
	PythonVersions   []string `yaml:"python_versions"`
	RequirementsDir  string   `yaml:"requirements_dir"`
	CoveragePackages []string `yaml:"coverage_packages"`
	BlackVersion     string   `yaml:"black_version"`
	LintPaths        []string `yaml:"lint_paths"`
	EnvDir           string   `yaml:"env_dir"`
	ReuseExisting    *bool    `yaml:"reuse_existing"`
	Lock             LockDTO  `yaml:"lock"`
	Iris             IrisDTO  `yaml:"iris"`
}

// LockDTO configures where lock files are written and which platform they target.
type LockDTO struct {
	Dir      string `yaml:"dir"`
	Platform string `yaml:"platform"`
}

// IrisDTO configures the upstream Iris checkout.
type IrisDTO struct {
	Repository      string `yaml:"repository"`
	RequirementsURL string `yaml:"requirements_url"`
}
