package ports

import (
	"context"

	"cargo-probe/internal/types"
)

// CommandRunnerPort runs one prepared command to completion and returns its
// stdout. Failures are reported as *types.ParseError: KindExec for a
// non-zero exit, KindIo when the process could not be started.
type CommandRunnerPort interface {
	Run(ctx context.Context, cmd types.Command) ([]byte, error)
}

// ToolLocatorPort decides which executable a query runs.
type ToolLocatorPort interface {
	Locate() string
}
