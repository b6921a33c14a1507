package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cargo-probe/internal/app"
	"cargo-probe/internal/core"
)

type metadataOptions struct {
	featureOptions
	ManifestPath   string
	FilterPlatform string
	NoDeps         bool
	Input          string
	Dir            string
}

func newMetadataCommand() *cobra.Command {
	opts := metadataOptions{}
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Parse workspace metadata (cargo metadata --format-version 1)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMetadata(cmd.Context(), cmd, opts)
		},
	}
	addFeatureFlags(cmd, &opts.featureOptions)
	cmd.Flags().StringVar(&opts.ManifestPath, "manifest-path", "", "Path to Cargo.toml")
	cmd.Flags().StringVar(&opts.FilterPlatform, "filter-platform", "", "Only include dependencies for this target triple")
	cmd.Flags().BoolVar(&opts.NoDeps, "no-deps", false, "Only list workspace members, skip the resolve graph")
	cmd.Flags().StringVar(&opts.Input, "input", "", "Parse captured output from this file ('-' for stdin) instead of running cargo")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Working directory for cargo")
	_ = viper.BindPFlag("manifest_path", cmd.Flags().Lookup("manifest-path"))
	_ = viper.BindPFlag("filter_platform", cmd.Flags().Lookup("filter-platform"))
	_ = viper.BindPFlag("no_deps", cmd.Flags().Lookup("no-deps"))
	return cmd
}

func runMetadata(ctx context.Context, cmd *cobra.Command, opts metadataOptions) error {
	features, err := featureSelection(cmd, opts.featureOptions)
	if err != nil {
		return err
	}
	platform, err := optionalTriple(resolveString(cmd, opts.FilterPlatform, "filter_platform", "filter-platform"), "filter-platform")
	if err != nil {
		return err
	}
	ctx, cancel := queryContext(ctx)
	defer cancel()
	service := newAppService()
	result, err := service.Metadata(ctx, app.MetadataRequest{
		Options: core.MetadataOptions{
			Features:       features,
			FilterPlatform: platform,
			ManifestPath:   resolveString(cmd, opts.ManifestPath, "manifest_path", "manifest-path"),
			NoDeps:         resolveBool(cmd, opts.NoDeps, "no_deps", "no-deps"),
		},
		Input: opts.Input,
		Dir:   opts.Dir,
	})
	if err != nil {
		return err
	}
	format := outputFormat()
	if format == formatSummary {
		renderMetadata(cmd.OutOrStdout(), app.InspectMetadata(result))
		return nil
	}
	return service.Writer.Write(cmd.OutOrStdout(), format, result)
}
