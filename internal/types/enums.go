package types

type TargetKind string

const (
	TargetKindBin         TargetKind = "bin"
	TargetKindLib         TargetKind = "lib"
	TargetKindRlib        TargetKind = "rlib"
	TargetKindDylib       TargetKind = "dylib"
	TargetKindCdylib      TargetKind = "cdylib"
	TargetKindStaticlib   TargetKind = "staticlib"
	TargetKindProcMacro   TargetKind = "proc-macro"
	TargetKindExample     TargetKind = "example"
	TargetKindTest        TargetKind = "test"
	TargetKindBench       TargetKind = "bench"
	TargetKindCustomBuild TargetKind = "custom-build"
)

var targetKinds = []TargetKind{
	TargetKindBin, TargetKindLib, TargetKindRlib, TargetKindDylib,
	TargetKindCdylib, TargetKindStaticlib, TargetKindProcMacro,
	TargetKindExample, TargetKindTest, TargetKindBench, TargetKindCustomBuild,
}

func (k *TargetKind) UnmarshalJSON(data []byte) error {
	value, err := decodeEnum(data, "target kind", targetKinds)
	if err != nil {
		return err
	}
	*k = value
	return nil
}

type Edition string

const (
	Edition2015 Edition = "2015"
	Edition2018 Edition = "2018"
	Edition2021 Edition = "2021"
)

var editions = []Edition{Edition2015, Edition2018, Edition2021}

func (e *Edition) UnmarshalJSON(data []byte) error {
	value, err := decodeEnum(data, "edition", editions)
	if err != nil {
		return err
	}
	*e = value
	return nil
}

// Mode is what a unit-graph unit does with its target.
type Mode string

const (
	ModeTest           Mode = "test"
	ModeBuild          Mode = "build"
	ModeCheck          Mode = "check"
	ModeDoc            Mode = "doc"
	ModeDoctest        Mode = "doctest"
	ModeRunCustomBuild Mode = "run-custom-build"
)

var modes = []Mode{ModeTest, ModeBuild, ModeCheck, ModeDoc, ModeDoctest, ModeRunCustomBuild}

func (m *Mode) UnmarshalJSON(data []byte) error {
	value, err := decodeEnum(data, "mode", modes)
	if err != nil {
		return err
	}
	*m = value
	return nil
}

type PanicStrategy string

const (
	PanicUnwind PanicStrategy = "unwind"
	PanicAbort  PanicStrategy = "abort"
)

var panicStrategies = []PanicStrategy{PanicUnwind, PanicAbort}

func (p *PanicStrategy) UnmarshalJSON(data []byte) error {
	value, err := decodeEnum(data, "panic strategy", panicStrategies)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// DependencyKind is the derived view of a manifest dependency's kind field.
type DependencyKind string

const (
	DependencyKindNormal DependencyKind = "normal"
	DependencyKindDev    DependencyKind = "dev"
	DependencyKindBuild  DependencyKind = "build"
)

// SourceKind is the derived view of a package source locator.
type SourceKind string

const (
	SourceKindPath     SourceKind = "path"
	SourceKindRegistry SourceKind = "registry"
	SourceKindGit      SourceKind = "git"
	SourceKindOther    SourceKind = "other"
)
