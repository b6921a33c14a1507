package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"cargo-probe/internal/app"
	"cargo-probe/internal/types"
)

const formatSummary = "summary"

var (
	headingColor = color.New(color.Bold)
	memberColor  = color.New(color.FgGreen)
	dimColor     = color.New(color.Faint)
)

func renderVersion(out io.Writer, v types.Version) {
	release := ""
	if v.Release != nil {
		release = v.Release.String()
	}
	headingColor.Fprintf(out, "cargo %s\n", release)
	if v.CommitHash != nil {
		fmt.Fprintf(out, "commit:  %s\n", *v.CommitHash)
	}
	if v.CommitDate != nil {
		fmt.Fprintf(out, "date:    %s\n", v.CommitDate.Format(types.CommitDateLayout))
	}
	fmt.Fprintf(out, "host:    %s\n", v.Host)
	fmt.Fprintf(out, "libgit2: %s\n", v.Libgit2)
	fmt.Fprintf(out, "libcurl: %s\n", v.Libcurl)
	fmt.Fprintf(out, "os:      %s\n", v.OS)
}

func renderMetadata(out io.Writer, summary app.MetadataSummary) {
	headingColor.Fprintf(out, "workspace %s\n", summary.WorkspaceRoot)
	fmt.Fprintf(out, "target directory: %s\n", summary.TargetDirectory)
	fmt.Fprintf(out, "packages: %d", len(summary.Packages))
	for _, kind := range summary.SortedSources() {
		fmt.Fprintf(out, " %s=%d", kind, summary.BySource[kind])
	}
	fmt.Fprintln(out)
	if summary.ResolvedNodes > 0 {
		fmt.Fprintf(out, "resolved nodes: %d\n", summary.ResolvedNodes)
	}
	for _, pkg := range summary.Packages {
		line := fmt.Sprintf("- %s %s (%s, %d targets)", pkg.Name, pkg.Version, pkg.Source, pkg.Targets)
		if pkg.Member {
			memberColor.Fprintln(out, line)
			continue
		}
		dimColor.Fprintln(out, line)
	}
}

func renderUnitGraph(out io.Writer, summary app.UnitGraphSummary) {
	headingColor.Fprintf(out, "units: %d\n", summary.Units)
	for _, mode := range summary.SortedModes() {
		fmt.Fprintf(out, "- %s: %d\n", mode, summary.ByMode[mode])
	}
	if summary.StdUnits > 0 {
		fmt.Fprintf(out, "std units: %d\n", summary.StdUnits)
	}
	if summary.CrossUnits > 0 {
		fmt.Fprintf(out, "cross-compiled units: %d\n", summary.CrossUnits)
	}
	fmt.Fprintln(out, "roots:")
	for _, root := range summary.Roots {
		fmt.Fprintf(out, "- %s\n", root)
	}
}
