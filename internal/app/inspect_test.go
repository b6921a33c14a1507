package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"cargo-probe/internal/core"
	"cargo-probe/internal/types"
)

func TestInspectMetadata(t *testing.T) {
	metadata, err := core.DecodeMetadata(readCoreFixture(t, "metadata.json"))
	require.NoError(t, err)

	summary := InspectMetadata(metadata)
	if diff := cmp.Diff("/work/probe-app", summary.WorkspaceRoot); diff != "" {
		t.Fatalf("unexpected workspace root (-want +got):\n%s", diff)
	}
	want := []PackageSummary{
		{Name: "probe-app", Version: "0.1.0", Source: types.SourceKindPath, Targets: 2, Member: true},
		{Name: "gitdep", Version: "0.2.0", Source: types.SourceKindGit, Targets: 1},
		{Name: "serde", Version: "1.0.137", Source: types.SourceKindRegistry, Targets: 1},
	}
	if diff := cmp.Diff(want, summary.Packages); diff != "" {
		t.Fatalf("unexpected packages (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]types.SourceKind{types.SourceKindGit, types.SourceKindPath, types.SourceKindRegistry}, summary.SortedSources()); diff != "" {
		t.Fatalf("unexpected source order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(2, summary.ResolvedNodes); diff != "" {
		t.Fatalf("unexpected resolved node count (-want +got):\n%s", diff)
	}
}

func TestInspectUnitGraph(t *testing.T) {
	graph, err := core.DecodeUnitGraph(readCoreFixture(t, "unit_graph.json"))
	require.NoError(t, err)
	graph.Roots = append(graph.Roots, uint(len(graph.Units)))

	summary := InspectUnitGraph(graph)
	want := UnitGraphSummary{
		Units:      2,
		Roots:      []string{"probe-app (build)", "<invalid index 2>"},
		ByMode:     map[types.Mode]int{types.ModeBuild: 1, types.ModeCheck: 1},
		CrossUnits: 1,
	}
	if diff := cmp.Diff(want, summary); diff != "" {
		t.Fatalf("unexpected summary (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]types.Mode{types.ModeBuild, types.ModeCheck}, summary.SortedModes()); diff != "" {
		t.Fatalf("unexpected mode order (-want +got):\n%s", diff)
	}
}
