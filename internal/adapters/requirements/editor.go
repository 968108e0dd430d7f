// Package requirements rewrites conda environment specification files.
package requirements

import (
	"bytes"
	"os"
	"strings"

	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const dependenciesKey = "dependencies"

var _ ports.RequirementsEditor = (*Editor)(nil)

// Editor implements ports.RequirementsEditor on YAML documents.
// Key order and nested entries such as pip sections are preserved.
type Editor struct{}

// NewEditor creates a new Editor.
func NewEditor() *Editor {
	return &Editor{}
}

// StripDependencies removes every string dependency starting with prefix.
func (e *Editor) StripDependencies(path, prefix string) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is a session tmp copy
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read requirements"), "path", path)
	}

	out, err := Strip(data, prefix)
	if err != nil {
		return zerr.With(err, "path", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat requirements"), "path", path)
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write requirements"), "path", path)
	}
	return nil
}

// Strip returns the YAML document with dependencies starting with prefix removed.
func Strip(data []byte, prefix string) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, domain.ErrInvalidRequirements.Error())
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, domain.ErrInvalidRequirements
	}

	root := doc.Content[0]
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != dependenciesKey {
			continue
		}
		deps := root.Content[i+1]
		if deps.Kind != yaml.SequenceNode {
			return nil, zerr.With(domain.ErrInvalidRequirements, "reason", "dependencies is not a list")
		}
		kept := deps.Content[:0]
		for _, spec := range deps.Content {
			if spec.Kind == yaml.ScalarNode && strings.HasPrefix(spec.Value, prefix) {
				continue
			}
			kept = append(kept, spec)
		}
		deps.Content = kept
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, zerr.Wrap(err, "failed to encode requirements")
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, "failed to encode requirements")
	}
	return buf.Bytes(), nil
}
