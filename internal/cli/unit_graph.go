package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cargo-probe/internal/app"
	"cargo-probe/internal/core"
)

type unitGraphOptions struct {
	featureOptions
	Toolchain    string
	Target       string
	ManifestPath string
	Packages     []string
	Release      bool
	Input        string
	Dir          string
}

func newUnitGraphCommand() *cobra.Command {
	opts := unitGraphOptions{}
	cmd := &cobra.Command{
		Use:   "unit-graph",
		Short: "Parse the build unit graph (cargo +nightly build --unit-graph)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUnitGraph(cmd.Context(), cmd, opts)
		},
	}
	addFeatureFlags(cmd, &opts.featureOptions)
	cmd.Flags().StringVar(&opts.Toolchain, "toolchain", core.DefaultUnitGraphToolchain, "Toolchain passed as +<toolchain>")
	cmd.Flags().StringVar(&opts.Target, "target", "", "Build for this target triple")
	cmd.Flags().StringVar(&opts.ManifestPath, "manifest-path", "", "Path to Cargo.toml")
	cmd.Flags().StringSliceVarP(&opts.Packages, "package", "p", nil, "Packages to build")
	cmd.Flags().BoolVar(&opts.Release, "release", false, "Use the release profile")
	cmd.Flags().StringVar(&opts.Input, "input", "", "Parse captured output from this file ('-' for stdin) instead of running cargo")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Working directory for cargo")
	_ = viper.BindPFlag("toolchain", cmd.Flags().Lookup("toolchain"))
	return cmd
}

func runUnitGraph(ctx context.Context, cmd *cobra.Command, opts unitGraphOptions) error {
	features, err := featureSelection(cmd, opts.featureOptions)
	if err != nil {
		return err
	}
	target, err := optionalTriple(opts.Target, "target")
	if err != nil {
		return err
	}
	ctx, cancel := queryContext(ctx)
	defer cancel()
	service := newAppService()
	result, err := service.UnitGraph(ctx, app.UnitGraphRequest{
		Options: core.UnitGraphOptions{
			Toolchain:    resolveString(cmd, opts.Toolchain, "toolchain", "toolchain"),
			Features:     features,
			Target:       target,
			ManifestPath: resolveString(cmd, opts.ManifestPath, "manifest_path", "manifest-path"),
			Packages:     opts.Packages,
			Release:      opts.Release,
		},
		Input: opts.Input,
		Dir:   opts.Dir,
	})
	if err != nil {
		return err
	}
	format := outputFormat()
	if format == formatSummary {
		renderUnitGraph(cmd.OutOrStdout(), app.InspectUnitGraph(result))
		return nil
	}
	return service.Writer.Write(cmd.OutOrStdout(), format, result)
}
