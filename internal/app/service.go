package app

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"cargo-probe/internal/adapters"
	"cargo-probe/internal/core"
	"cargo-probe/internal/ports"
	"cargo-probe/internal/types"
)

type Service struct {
	Runner  ports.CommandRunnerPort
	Locator ports.ToolLocatorPort
	Mapper  core.SchemaMapper
	Writer  ports.EntityWriterPort
	// Replay builds the runner used when a request names a captured
	// output file instead of running cargo.
	Replay func(path string) ports.CommandRunnerPort
}

type ServiceOptions struct {
	CargoPath    string
	StrictSchema bool
}

func NewService(opts ServiceOptions) Service {
	return Service{
		Runner:  adapters.NewCommandExecAdapter(),
		Locator: adapters.NewToolLocatorAdapter(opts.CargoPath),
		Mapper:  core.NewSchemaMapper(opts.StrictSchema),
		Writer:  adapters.NewEntityWriterAdapter(),
		Replay: func(path string) ports.CommandRunnerPort {
			return adapters.NewCapturedOutputAdapter(path)
		},
	}
}

// run executes command, or replays input when it is set.
func (s Service) run(ctx context.Context, command types.Command, input string) ([]byte, error) {
	assert.NotEmpty(ctx, command.Program, "cargo program must be resolved")
	runner := s.Runner
	if input = strings.TrimSpace(input); input != "" && s.Replay != nil {
		runner = s.Replay(input)
	}
	log.Debug().Str("command", command.String()).Str("input", input).Msg("running query")
	return runner.Run(ctx, command)
}

func (s Service) program() string {
	if s.Locator == nil {
		return adapters.DefaultToolName
	}
	return s.Locator.Locate()
}
