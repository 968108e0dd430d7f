// Package sessions defines the project's sessions and selects them by name.
package sessions

import (
	"slices"

	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/engine/session"
	"go.trai.ch/zerr"
)

// Registry holds session definitions in registration order.
type Registry struct {
	defs  []session.Definition
	index map[string]int
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Add registers a definition. Names must be unique.
func (r *Registry) Add(def session.Definition) error {
	if _, ok := r.index[def.Name]; ok {
		return zerr.With(domain.ErrDuplicateSession, "session", def.Name)
	}
	r.index[def.Name] = len(r.defs)
	r.defs = append(r.defs, def)
	return nil
}

// All returns every definition in registration order.
func (r *Registry) All() []session.Definition {
	return slices.Clone(r.defs)
}

// Get returns the definition with the given name.
func (r *Registry) Get(name string) (session.Definition, bool) {
	i, ok := r.index[name]
	if !ok {
		return session.Definition{}, false
	}
	return r.defs[i], true
}

// Select resolves names to definitions.
//
// A name matches a session name or a tag; a tag selects every session carrying
// it. No names selects every session. Duplicates are dropped and the
// registration order is kept.
func (r *Registry) Select(names []string) ([]session.Definition, error) {
	if len(names) == 0 {
		return r.All(), nil
	}

	selected := make(map[string]bool)
	for _, name := range names {
		if _, ok := r.index[name]; ok {
			selected[name] = true
			continue
		}
		found := false
		for _, def := range r.defs {
			if slices.Contains(def.Tags, name) {
				selected[def.Name] = true
				found = true
			}
		}
		if !found {
			return nil, zerr.With(domain.ErrSessionNotFound, "session", name)
		}
	}

	out := make([]session.Definition, 0, len(selected))
	for _, def := range r.defs {
		if selected[def.Name] {
			out = append(out, def)
		}
	}
	return out, nil
}
