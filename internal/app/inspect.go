package app

import (
	"fmt"
	"sort"

	"cargo-probe/internal/types"
)

type PackageSummary struct {
	Name    string
	Version string
	Source  types.SourceKind
	Targets int
	Member  bool
}

type MetadataSummary struct {
	WorkspaceRoot   string
	TargetDirectory string
	Packages        []PackageSummary
	BySource        map[types.SourceKind]int
	ResolvedNodes   int
}

type UnitGraphSummary struct {
	Units    int
	Roots    []string
	ByMode   map[types.Mode]int
	StdUnits int
	// CrossUnits counts units built for a platform other than the host.
	CrossUnits int
}

// InspectMetadata condenses metadata into per-package counts. Workspace
// members are listed first, then dependencies by name.
func InspectMetadata(metadata types.Metadata) MetadataSummary {
	members := map[string]struct{}{}
	for _, id := range metadata.WorkspaceMembers {
		members[id] = struct{}{}
	}
	summary := MetadataSummary{
		WorkspaceRoot:   metadata.WorkspaceRoot,
		TargetDirectory: metadata.TargetDirectory,
		BySource:        map[types.SourceKind]int{},
	}
	for _, pkg := range metadata.Packages {
		_, member := members[pkg.ID]
		kind := pkg.SourceKind()
		summary.BySource[kind]++
		summary.Packages = append(summary.Packages, PackageSummary{
			Name:    pkg.Name,
			Version: pkg.Version,
			Source:  kind,
			Targets: len(pkg.Targets),
			Member:  member,
		})
	}
	sort.SliceStable(summary.Packages, func(i, j int) bool {
		a, b := summary.Packages[i], summary.Packages[j]
		if a.Member != b.Member {
			return a.Member
		}
		return a.Name < b.Name
	})
	if metadata.Resolve != nil {
		summary.ResolvedNodes = len(metadata.Resolve.Nodes)
	}
	return summary
}

// InspectUnitGraph counts units per mode. Roots that point outside the
// unit list are reported rather than skipped.
func InspectUnitGraph(graph types.UnitGraph) UnitGraphSummary {
	summary := UnitGraphSummary{
		Units:  len(graph.Units),
		ByMode: map[types.Mode]int{},
	}
	for _, unit := range graph.Units {
		summary.ByMode[unit.Mode]++
		if unit.IsStd {
			summary.StdUnits++
		}
		if unit.Platform != nil {
			summary.CrossUnits++
		}
	}
	for _, idx := range graph.Roots {
		if idx >= uint(len(graph.Units)) {
			summary.Roots = append(summary.Roots, fmt.Sprintf("<invalid index %d>", idx))
			continue
		}
		unit := graph.Units[idx]
		summary.Roots = append(summary.Roots, fmt.Sprintf("%s (%s)", unit.Target.Name, unit.Mode))
	}
	return summary
}

func sortedKeys[K comparable, V any](input map[K]V) []K {
	keys := make([]K, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	return keys
}

// SortedSources returns the source kinds of a summary in stable order.
func (s MetadataSummary) SortedSources() []types.SourceKind {
	return sortedKeys(s.BySource)
}

// SortedModes returns the modes of a summary in stable order.
func (s UnitGraphSummary) SortedModes() []types.Mode {
	return sortedKeys(s.ByMode)
}
