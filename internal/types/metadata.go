package types

import (
	"encoding/json"
	"strings"
)

// Metadata is the parsed output of "cargo metadata --format-version 1".
type Metadata struct {
	// Packages includes every feature-enabled dependency unless --no-deps
	// was passed.
	Packages []Package `json:"packages"`
	// WorkspaceMembers holds the package ids of the workspace members.
	WorkspaceMembers []string `json:"workspace_members"`
	// Resolve is nil when --no-deps was passed.
	Resolve         *Resolve `json:"resolve"`
	TargetDirectory string   `json:"target_directory"`
	Version         uint     `json:"version"`
	WorkspaceRoot   string   `json:"workspace_root"`
	// WorkspaceMetadata is the free-form [workspace.metadata] table.
	WorkspaceMetadata any `json:"metadata"`
}

var metadataFields = fieldSpec{
	entity:   "metadata",
	required: []string{"packages", "workspace_members", "target_directory", "version", "workspace_root"},
}

func (m *Metadata) UnmarshalJSON(data []byte) error {
	if err := metadataFields.check(data); err != nil {
		return err
	}
	type plain Metadata
	return json.Unmarshal(data, (*plain)(m))
}

// Package looks a package up by id.
func (m Metadata) Package(id string) (Package, bool) {
	for _, pkg := range m.Packages {
		if pkg.ID == id {
			return pkg, true
		}
	}
	return Package{}, false
}

// WorkspacePackages returns the packages listed in WorkspaceMembers, in
// member order. Ids without a matching package are skipped.
func (m Metadata) WorkspacePackages() []Package {
	byID := make(map[string]Package, len(m.Packages))
	for _, pkg := range m.Packages {
		byID[pkg.ID] = pkg
	}
	var out []Package
	for _, id := range m.WorkspaceMembers {
		if pkg, ok := byID[id]; ok {
			out = append(out, pkg)
		}
	}
	return out
}

type Package struct {
	Name        string  `json:"name"`
	Version     string  `json:"version"`
	ID          string  `json:"id"`
	License     *string `json:"license"`
	LicenseFile *string `json:"license_file"`
	Description *string `json:"description"`
	// Source is nil for path dependencies and workspace members, otherwise
	// "registry+URL" or "git+URL#revision".
	Source          *string             `json:"source"`
	Dependencies    []Dependency        `json:"dependencies"`
	Targets         []Target            `json:"targets"`
	Features        map[string][]string `json:"features"`
	ManifestPath    string              `json:"manifest_path"`
	PackageMetadata any                 `json:"metadata"`
	Publish         Publish             `json:"publish"`
	Authors         []string            `json:"authors"`
	Categories      []string            `json:"categories"`
	Keywords        []string            `json:"keywords"`
	DefaultRun      *string             `json:"default_run"`
	RustVersion     *string             `json:"rust_version"`
	Readme          *string             `json:"readme"`
	Repository      *string             `json:"repository"`
	Homepage        *string             `json:"homepage"`
	Documentation   *string             `json:"documentation"`
	// Edition is the package default; targets may override it.
	Edition Edition `json:"edition"`
	Links   *string `json:"links"`
}

var packageFields = fieldSpec{
	entity: "package",
	required: []string{
		"name", "version", "id", "dependencies", "targets", "features",
		"manifest_path", "authors", "categories", "keywords", "edition",
	},
}

func (p *Package) UnmarshalJSON(data []byte) error {
	if err := packageFields.check(data); err != nil {
		return err
	}
	type plain Package
	return json.Unmarshal(data, (*plain)(p))
}

// SourceKind classifies the package source locator.
func (p Package) SourceKind() SourceKind {
	if p.Source == nil {
		return SourceKindPath
	}
	switch {
	case strings.HasPrefix(*p.Source, "registry+"), strings.HasPrefix(*p.Source, "sparse+"):
		return SourceKindRegistry
	case strings.HasPrefix(*p.Source, "git+"):
		return SourceKindGit
	default:
		return SourceKindOther
	}
}

// SourceURL returns the locator without its scheme prefix and git revision
// fragment. It is empty for path packages.
func (p Package) SourceURL() string {
	if p.Source == nil {
		return ""
	}
	source := *p.Source
	switch p.SourceKind() {
	case SourceKindRegistry:
		return strings.TrimPrefix(strings.TrimPrefix(source, "registry+"), "sparse+")
	case SourceKindGit:
		url := strings.TrimPrefix(source, "git+")
		if idx := strings.LastIndex(url, "#"); idx >= 0 {
			url = url[:idx]
		}
		return url
	default:
		return source
	}
}

// Revision returns the commit a git source is locked to.
func (p Package) Revision() (string, bool) {
	if p.SourceKind() != SourceKindGit {
		return "", false
	}
	idx := strings.LastIndex(*p.Source, "#")
	if idx < 0 {
		return "", false
	}
	return (*p.Source)[idx+1:], true
}

// Dependency is a dependency as declared in a package manifest.
type Dependency struct {
	Name   string  `json:"name"`
	Source *string `json:"source"`
	Req    string  `json:"req"`
	// Kind is null for normal dependencies, otherwise "dev" or "build".
	Kind                *string  `json:"kind"`
	Rename              *string  `json:"rename"`
	Optional            bool     `json:"optional"`
	UsesDefaultFeatures bool     `json:"uses_default_features"`
	Features            []string `json:"features"`
	// Target is the platform filter, e.g. "cfg(windows)".
	Target   *string `json:"target"`
	Path     *string `json:"path"`
	Registry *string `json:"registry"`
}

var dependencyFields = fieldSpec{
	entity:   "dependency",
	required: []string{"name", "req", "optional", "uses_default_features", "features"},
}

func (d *Dependency) UnmarshalJSON(data []byte) error {
	if err := dependencyFields.check(data); err != nil {
		return err
	}
	type plain Dependency
	return json.Unmarshal(data, (*plain)(d))
}

func (d Dependency) DependencyKind() DependencyKind {
	if d.Kind == nil {
		return DependencyKindNormal
	}
	return DependencyKind(*d.Kind)
}

// ExternName is the name the dependency is imported under.
func (d Dependency) ExternName() string {
	if d.Rename != nil {
		return *d.Rename
	}
	return d.Name
}

type Target struct {
	Kind             []TargetKind `json:"kind"`
	CrateTypes       []string     `json:"crate_types"`
	Name             string       `json:"name"`
	SrcPath          string       `json:"src_path"`
	Edition          Edition      `json:"edition"`
	RequiredFeatures []string     `json:"required-features"`
	Doc              bool         `json:"doc"`
	Doctest          bool         `json:"doctest"`
	// Test reports whether the target is built and run with --test.
	Test bool `json:"test"`
}

var targetFields = fieldSpec{
	entity:   "target",
	required: []string{"kind", "crate_types", "name", "src_path", "edition", "doc", "doctest", "test"},
}

func (t *Target) UnmarshalJSON(data []byte) error {
	if err := targetFields.check(data); err != nil {
		return err
	}
	type plain Target
	return json.Unmarshal(data, (*plain)(t))
}

// HasKind reports whether kind is among the target's kinds.
func (t Target) HasKind(kind TargetKind) bool {
	for _, k := range t.Kind {
		if k == kind {
			return true
		}
	}
	return false
}

// Resolve is the resolved dependency graph of the workspace.
type Resolve struct {
	Nodes []ResolveNode `json:"nodes"`
	// Root is the current package, nil for a virtual workspace.
	Root *string `json:"root"`
}

var resolveFields = fieldSpec{
	entity:   "resolve",
	required: []string{"nodes"},
}

func (r *Resolve) UnmarshalJSON(data []byte) error {
	if err := resolveFields.check(data); err != nil {
		return err
	}
	type plain Resolve
	return json.Unmarshal(data, (*plain)(r))
}

type ResolveNode struct {
	ID           string    `json:"id"`
	Dependencies []string  `json:"dependencies"`
	Deps         []NodeDep `json:"deps"`
	Features     []string  `json:"features"`
}

var resolveNodeFields = fieldSpec{
	entity:   "resolve node",
	required: []string{"id", "dependencies", "deps"},
}

func (n *ResolveNode) UnmarshalJSON(data []byte) error {
	if err := resolveNodeFields.check(data); err != nil {
		return err
	}
	type plain ResolveNode
	return json.Unmarshal(data, (*plain)(n))
}

type NodeDep struct {
	Name     string        `json:"name"`
	Pkg      string        `json:"pkg"`
	DepKinds []DepKindInfo `json:"dep_kinds"`
}

var nodeDepFields = fieldSpec{
	entity:   "resolve dependency",
	required: []string{"name", "pkg"},
}

func (d *NodeDep) UnmarshalJSON(data []byte) error {
	if err := nodeDepFields.check(data); err != nil {
		return err
	}
	type plain NodeDep
	return json.Unmarshal(data, (*plain)(d))
}

type DepKindInfo struct {
	Kind   *string `json:"kind"`
	Target *string `json:"target"`
}
