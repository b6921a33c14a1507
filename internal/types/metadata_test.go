package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(value string) *string {
	return &value
}

func TestPackageSource(t *testing.T) {
	tests := []struct {
		name     string
		source   *string
		kind     SourceKind
		url      string
		revision string
	}{
		{name: "path", kind: SourceKindPath},
		{
			name:   "registry",
			source: strPtr("registry+https://github.com/rust-lang/crates.io-index"),
			kind:   SourceKindRegistry,
			url:    "https://github.com/rust-lang/crates.io-index",
		},
		{
			name:   "sparse registry",
			source: strPtr("sparse+https://index.crates.io/"),
			kind:   SourceKindRegistry,
			url:    "https://index.crates.io/",
		},
		{
			name:     "git",
			source:   strPtr("git+https://github.com/example/dep?branch=main#0123abcd"),
			kind:     SourceKindGit,
			url:      "https://github.com/example/dep?branch=main",
			revision: "0123abcd",
		},
		{
			name:   "other",
			source: strPtr("directory+/vendor"),
			kind:   SourceKindOther,
			url:    "directory+/vendor",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg := Package{Source: tt.source}
			assert.Equal(t, tt.kind, pkg.SourceKind())
			assert.Equal(t, tt.url, pkg.SourceURL())
			revision, ok := pkg.Revision()
			assert.Equal(t, tt.revision != "", ok)
			assert.Equal(t, tt.revision, revision)
		})
	}
}

func TestDependencyDerivedViews(t *testing.T) {
	dep := Dependency{Name: "winapi"}
	assert.Equal(t, DependencyKindNormal, dep.DependencyKind())
	assert.Equal(t, "winapi", dep.ExternName())

	dep.Kind = strPtr("dev")
	dep.Rename = strPtr("win")
	assert.Equal(t, DependencyKindDev, dep.DependencyKind())
	assert.Equal(t, "win", dep.ExternName())
}

func TestMetadataLookups(t *testing.T) {
	metadata := Metadata{
		Packages: []Package{
			{ID: "b 1.0.0", Name: "b"},
			{ID: "a 1.0.0", Name: "a"},
			{ID: "dep 0.1.0", Name: "dep"},
		},
		WorkspaceMembers: []string{"a 1.0.0", "b 1.0.0", "gone 0.0.0"},
	}

	pkg, ok := metadata.Package("dep 0.1.0")
	assert.True(t, ok)
	assert.Equal(t, "dep", pkg.Name)
	_, ok = metadata.Package("missing")
	assert.False(t, ok)

	members := metadata.WorkspacePackages()
	if assert.Len(t, members, 2) {
		assert.Equal(t, "a", members[0].Name)
		assert.Equal(t, "b", members[1].Name)
	}
}

func TestUnitGraphRootUnits(t *testing.T) {
	graph := UnitGraph{
		Units: []Unit{{PkgID: "first"}, {PkgID: "second"}},
		Roots: []uint{1, 2, 7, 0},
	}
	roots := graph.RootUnits()
	if assert.Len(t, roots, 2) {
		assert.Equal(t, "second", roots[0].PkgID)
		assert.Equal(t, "first", roots[1].PkgID)
	}
}
