package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cargo-probe/internal/app"
	"cargo-probe/internal/types"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "CARGO_PROBE"

type RootConfig struct {
	ConfigFile   string
	LogLevel     string
	Cargo        string
	Format       string
	StrictSchema bool
	Timeout      time.Duration
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorMessage(err))
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:           "cargo-probe",
		Short:         "Query cargo for version, workspace metadata and unit graphs",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	flags.StringVar(&cfg.Cargo, "cargo", "", "Path to the cargo executable (default: $CARGO, then PATH)")
	flags.StringVar(&cfg.Format, "format", "json", "Output format: json, yaml or summary")
	flags.BoolVar(&cfg.StrictSchema, "strict-schema", false, "Reject JSON output with an unsupported schema version")
	flags.DurationVar(&cfg.Timeout, "timeout", 0, "Abort the cargo invocation after this long (0 waits forever)")
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("cargo", flags.Lookup("cargo"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("strict_schema", flags.Lookup("strict-schema"))
	_ = viper.BindPFlag("timeout", flags.Lookup("timeout"))

	cmd.AddCommand(newVersionCommand())
	cmd.AddCommand(newMetadataCommand())
	cmd.AddCommand(newUnitGraphCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("cargo-probe")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/cargo-probe")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

// setupLogging sends logs to stderr; stdout carries the query result.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func newAppService() app.Service {
	return app.NewService(app.ServiceOptions{
		CargoPath:    viper.GetString("cargo"),
		StrictSchema: viper.GetBool("strict_schema"),
	})
}

// outputFormat reads --format case-insensitively.
func outputFormat() string {
	return strings.ToLower(strings.TrimSpace(viper.GetString("format")))
}

// queryContext applies the configured timeout, if any.
func queryContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		return context.WithTimeout(parent, timeout)
	}
	return context.WithCancel(parent)
}

// exitCodeForError maps failures to exit statuses: 2 bad invocation,
// 3 cargo itself failed, 4 cargo output could not be parsed, 5 cargo could
// not be run, 1 anything else.
func exitCodeForError(err error) int {
	var parseErr *types.ParseError
	if errors.As(err, &parseErr) {
		switch parseErr.Kind {
		case types.KindExec:
			return 3
		case types.KindIo:
			return 5
		default:
			return 4
		}
	}
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeFailedPrecondition, errbuilder.CodePermissionDenied:
		return 3
	case errbuilder.CodeNotFound, errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
