package adapters

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/rs/zerolog/log"

	"cargo-probe/internal/ports"
	"cargo-probe/internal/types"
)

// CommandExecAdapter runs the build tool as a child process and captures
// stdout and stderr separately. It blocks until the process exits; the
// context is the only way to bound that wait.
type CommandExecAdapter struct{}

func NewCommandExecAdapter() CommandExecAdapter {
	return CommandExecAdapter{}
}

func (a CommandExecAdapter) Run(ctx context.Context, command types.Command) ([]byte, error) {
	cmd := exec.CommandContext(ctx, command.Program, command.Args...)
	cmd.Dir = command.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	started := time.Now()
	err := cmd.Run()
	event := log.Debug().
		Str("command", command.String()).
		Dur("elapsed", time.Since(started)).
		Int("stdout_bytes", stdout.Len()).
		Int("stderr_bytes", stderr.Len())
	if err == nil {
		event.Int("exit_code", 0).Msg("command finished")
		return stdout.Bytes(), nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		event.Err(ctxErr).Msg("command interrupted")
		return nil, types.WrapError(types.KindIo, ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		event.Int("exit_code", exitErr.ExitCode()).Msg("command failed")
		return nil, types.ExecError(stderr.Bytes())
	}
	event.Err(err).Msg("command could not be started")
	return nil, types.WrapError(types.KindIo, err)
}

var _ ports.CommandRunnerPort = CommandExecAdapter{}
