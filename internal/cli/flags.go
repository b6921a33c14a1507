package cli

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cargo-probe/internal/core"
	"cargo-probe/internal/types"
)

// featureOptions are the feature flags shared by metadata and unit-graph.
type featureOptions struct {
	Features          []string
	AllFeatures       bool
	NoDefaultFeatures bool
}

func addFeatureFlags(cmd *cobra.Command, opts *featureOptions) {
	cmd.Flags().StringSliceVar(&opts.Features, "features", nil, "Features to activate")
	cmd.Flags().BoolVar(&opts.AllFeatures, "all-features", false, "Activate all available features")
	cmd.Flags().BoolVar(&opts.NoDefaultFeatures, "no-default-features", false, "Do not activate the default feature")
	_ = viper.BindPFlag("features", cmd.Flags().Lookup("features"))
	_ = viper.BindPFlag("all_features", cmd.Flags().Lookup("all-features"))
	_ = viper.BindPFlag("no_default_features", cmd.Flags().Lookup("no-default-features"))
}

// featureSelection accepts at most one of the three feature flags.
func featureSelection(cmd *cobra.Command, opts featureOptions) (core.FeatureSelection, error) {
	names := resolveStrings(cmd, opts.Features, "features", "features")
	all := resolveBool(cmd, opts.AllFeatures, "all_features", "all-features")
	noDefault := resolveBool(cmd, opts.NoDefaultFeatures, "no_default_features", "no-default-features")

	selected := 0
	selection := core.FeatureSelection{}
	if all {
		selected++
		selection.Mode = core.FeaturesAll
	}
	if noDefault {
		selected++
		selection.Mode = core.FeaturesNoDefault
	}
	if len(names) > 0 {
		selected++
		selection = core.FeatureSelection{Mode: core.FeaturesSome, Names: names}
	}
	if selected > 1 {
		return core.FeatureSelection{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("--features, --all-features and --no-default-features are mutually exclusive")
	}
	return selection, nil
}

// optionalTriple parses a platform flag; empty means not set.
func optionalTriple(value string, flagName string) (*types.Triple, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	triple, err := types.ParseTriple(value)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid --%s value", flagName)).
			WithCause(err)
	}
	return &triple, nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
