package types

import "encoding/json"

// UnitGraph is the parsed output of "cargo build --unit-graph".
type UnitGraph struct {
	// Version is bumped on backwards incompatible changes to the format.
	Version uint   `json:"version"`
	Units   []Unit `json:"units"`
	// Roots are indices into Units. Negative values are rejected but the
	// upper bound is not checked.
	Roots []uint `json:"roots"`
}

var unitGraphFields = fieldSpec{
	entity:   "unit graph",
	required: []string{"version", "units", "roots"},
}

func (g *UnitGraph) UnmarshalJSON(data []byte) error {
	if err := unitGraphFields.check(data); err != nil {
		return err
	}
	type plain UnitGraph
	return json.Unmarshal(data, (*plain)(g))
}

// RootUnits returns the units referenced by Roots, skipping indices that
// fall outside Units.
func (g UnitGraph) RootUnits() []Unit {
	var out []Unit
	for _, idx := range g.Roots {
		if idx < uint(len(g.Units)) {
			out = append(out, g.Units[idx])
		}
	}
	return out
}

// Unit is one compilation action: a target built with one profile, for one
// platform, in one mode.
type Unit struct {
	// PkgID is an opaque package identifier.
	PkgID  string     `json:"pkg_id"`
	Target UnitTarget `json:"target"`
	// Profile may differ from the manifest profile; tests force
	// panic=unwind for instance.
	Profile Profile `json:"profile"`
	// Platform is nil when the unit is built for the host.
	Platform     *Triple          `json:"platform"`
	Mode         Mode             `json:"mode"`
	Features     []string         `json:"features"`
	IsStd        bool             `json:"is_std"`
	Dependencies []UnitDependency `json:"dependencies"`
}

var unitFields = fieldSpec{
	entity:   "unit",
	required: []string{"pkg_id", "target", "profile", "mode", "features", "dependencies"},
}

func (u *Unit) UnmarshalJSON(data []byte) error {
	if err := unitFields.check(data); err != nil {
		return err
	}
	type plain Unit
	return json.Unmarshal(data, (*plain)(u))
}

// UnitTarget is the unit-graph flavour of Target; required-features is
// always present.
type UnitTarget struct {
	Kind             []TargetKind `json:"kind"`
	CrateTypes       []string     `json:"crate_types"`
	Name             string       `json:"name"`
	SrcPath          string       `json:"src_path"`
	Edition          Edition      `json:"edition"`
	RequiredFeatures []string     `json:"required-features"`
	Doc              bool         `json:"doc"`
	Doctest          bool         `json:"doctest"`
	Test             bool         `json:"test"`
}

var unitTargetFields = fieldSpec{
	entity: "unit target",
	required: []string{
		"kind", "crate_types", "name", "src_path", "edition",
		"required-features", "doc", "doctest", "test",
	},
}

func (t *UnitTarget) UnmarshalJSON(data []byte) error {
	if err := unitTargetFields.check(data); err != nil {
		return err
	}
	type plain UnitTarget
	return json.Unmarshal(data, (*plain)(t))
}

type Profile struct {
	Name     string `json:"name"`
	OptLevel string `json:"opt_level"`
	Lto      string `json:"lto"`
	// CodegenUnits and Debuginfo are nil when the compiler default applies.
	CodegenUnits    *uint32       `json:"codegen_units"`
	Debuginfo       *uint32       `json:"debuginfo"`
	DebugAssertions bool          `json:"debug_assertions"`
	OverflowChecks  bool          `json:"overflow_checks"`
	Rpath           bool          `json:"rpath"`
	Incremental     bool          `json:"incremental"`
	Panic           PanicStrategy `json:"panic"`
}

var profileFields = fieldSpec{
	entity: "profile",
	required: []string{
		"name", "opt_level", "lto", "debug_assertions", "overflow_checks",
		"rpath", "incremental", "panic",
	},
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	if err := profileFields.check(data); err != nil {
		return err
	}
	type plain Profile
	return json.Unmarshal(data, (*plain)(p))
}

type UnitDependency struct {
	// Index points into UnitGraph.Units.
	Index           uint   `json:"index"`
	ExternCrateName string `json:"extern_crate_name"`
	// Public is nil unless the public-dependency feature is enabled.
	Public    *bool `json:"public"`
	Noprelude bool  `json:"noprelude"`
}

var unitDependencyFields = fieldSpec{
	entity:   "unit dependency",
	required: []string{"index", "extern_crate_name"},
}

func (d *UnitDependency) UnmarshalJSON(data []byte) error {
	if err := unitDependencyFields.check(data); err != nil {
		return err
	}
	type plain UnitDependency
	return json.Unmarshal(data, (*plain)(d))
}
