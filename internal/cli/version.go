package cli

import (
	"context"

	"github.com/spf13/cobra"

	"cargo-probe/internal/app"
)

type versionOptions struct {
	Input string
	Dir   string
}

func newVersionCommand() *cobra.Command {
	opts := versionOptions{}
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Parse the verbose version of cargo (cargo -Vv)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersion(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Input, "input", "", "Parse captured output from this file ('-' for stdin) instead of running cargo")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Working directory for cargo")
	return cmd
}

func runVersion(ctx context.Context, cmd *cobra.Command, opts versionOptions) error {
	ctx, cancel := queryContext(ctx)
	defer cancel()
	service := newAppService()
	result, err := service.Version(ctx, app.VersionRequest{
		Input: opts.Input,
		Dir:   opts.Dir,
	})
	if err != nil {
		return err
	}
	format := outputFormat()
	if format == formatSummary {
		renderVersion(cmd.OutOrStdout(), result)
		return nil
	}
	return service.Writer.Write(cmd.OutOrStdout(), format, result)
}
