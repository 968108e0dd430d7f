package sessions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/noxy/internal/core/domain"
	"go.trai.ch/noxy/internal/engine/session"
	"go.trai.ch/noxy/internal/sessions"
)

func names(defs []session.Definition) []string {
	out := make([]string, 0, len(defs))
	for _, def := range defs {
		out = append(out, def.Name)
	}
	return out
}

func testRegistry(t *testing.T) *sessions.Registry {
	t.Helper()
	reg := sessions.NewRegistry()
	for _, def := range []session.Definition{
		{Name: "flake8"},
		{Name: "tests-3.7", Tags: []string{"tests"}},
		{Name: "black"},
		{Name: "tests-3.8", Tags: []string{"tests"}},
	} {
		require.NoError(t, reg.Add(def))
	}
	return reg
}

func TestRegistry_Add_Duplicate(t *testing.T) {
	reg := testRegistry(t)
	err := reg.Add(session.Definition{Name: "flake8"})
	require.ErrorContains(t, err, domain.ErrDuplicateSession.Error())
}

func TestRegistry_Get(t *testing.T) {
	reg := testRegistry(t)

	def, ok := reg.Get("black")
	require.True(t, ok)
	assert.Equal(t, "black", def.Name)

	_, ok = reg.Get("docs")
	assert.False(t, ok)
}

func TestRegistry_Select(t *testing.T) {
	reg := testRegistry(t)

	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"all when empty", nil, []string{"flake8", "tests-3.7", "black", "tests-3.8"}},
		{"by name", []string{"black"}, []string{"black"}},
		{"by tag", []string{"tests"}, []string{"tests-3.7", "tests-3.8"}},
		{"registration order", []string{"tests-3.8", "flake8"}, []string{"flake8", "tests-3.8"}},
		{"deduplicated", []string{"tests", "tests-3.7"}, []string{"tests-3.7", "tests-3.8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.Select(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestRegistry_Select_Unknown(t *testing.T) {
	reg := testRegistry(t)
	_, err := reg.Select([]string{"flake8", "docs"})
	require.ErrorContains(t, err, domain.ErrSessionNotFound.Error())
}
