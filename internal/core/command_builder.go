package core

import (
	"strings"

	"cargo-probe/internal/types"
)

// FeatureMode selects how features are activated for a query.
type FeatureMode string

const (
	FeaturesDefault   FeatureMode = ""
	FeaturesAll       FeatureMode = "all"
	FeaturesNoDefault FeatureMode = "no-default"
	FeaturesSome      FeatureMode = "some"
)

type FeatureSelection struct {
	Mode FeatureMode
	// Names is used with FeaturesSome.
	Names []string
}

func (f FeatureSelection) args() []string {
	switch f.Mode {
	case FeaturesAll:
		return []string{"--all-features"}
	case FeaturesNoDefault:
		return []string{"--no-default-features"}
	case FeaturesSome:
		if len(f.Names) == 0 {
			return nil
		}
		return []string{"--features", strings.Join(f.Names, ",")}
	default:
		return nil
	}
}

type MetadataOptions struct {
	Features       FeatureSelection
	FilterPlatform *types.Triple
	ManifestPath   string
	NoDeps         bool
}

type UnitGraphOptions struct {
	// Toolchain is passed as "+<toolchain>"; the unit graph is still
	// unstable, so it defaults to nightly.
	Toolchain    string
	Features     FeatureSelection
	Target       *types.Triple
	ManifestPath string
	Packages     []string
	Release      bool
}

const DefaultUnitGraphToolchain = "nightly"

func VersionCommand(program string) types.Command {
	return types.Command{Program: program, Args: []string{"-Vv"}}
}

func MetadataCommand(program string, opts MetadataOptions) types.Command {
	args := []string{"metadata", "--format-version", "1"}
	args = append(args, opts.Features.args()...)
	if opts.FilterPlatform != nil {
		args = append(args, "--filter-platform", opts.FilterPlatform.String())
	}
	if opts.ManifestPath != "" {
		args = append(args, "--manifest-path", opts.ManifestPath)
	}
	if opts.NoDeps {
		args = append(args, "--no-deps")
	}
	return types.Command{Program: program, Args: args}
}

func UnitGraphCommand(program string, opts UnitGraphOptions) types.Command {
	toolchain := strings.TrimPrefix(strings.TrimSpace(opts.Toolchain), "+")
	if toolchain == "" {
		toolchain = DefaultUnitGraphToolchain
	}
	args := []string{"+" + toolchain, "build", "-Z", "unstable-options", "--unit-graph"}
	args = append(args, opts.Features.args()...)
	if opts.Target != nil {
		args = append(args, "--target", opts.Target.String())
	}
	if opts.ManifestPath != "" {
		args = append(args, "--manifest-path", opts.ManifestPath)
	}
	for _, pkg := range opts.Packages {
		args = append(args, "--package", pkg)
	}
	if opts.Release {
		args = append(args, "--release")
	}
	return types.Command{Program: program, Args: args}
}
