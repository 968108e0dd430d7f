package ports

// RequirementsEditor rewrites YAML environment specification files.
//
//go:generate go run go.uber.org/mock/mockgen -source=requirements.go -destination=mocks/mock_requirements.go -package=mocks
type RequirementsEditor interface {
	// StripDependencies removes every dependency starting with prefix from the file at path.
	StripDependencies(path, prefix string) error
}
