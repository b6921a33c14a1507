package adapters

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"cargo-probe/internal/ports"
	"cargo-probe/internal/types"
)

// CapturedOutputAdapter replays output saved from an earlier run instead of
// starting a process. The command is ignored apart from logging.
type CapturedOutputAdapter struct {
	Path string
}

func NewCapturedOutputAdapter(path string) CapturedOutputAdapter {
	return CapturedOutputAdapter{Path: path}
}

func (a CapturedOutputAdapter) Run(ctx context.Context, command types.Command) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, types.WrapError(types.KindIo, err)
	}
	var (
		data []byte
		err  error
	)
	if a.Path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(a.Path)
	}
	if err != nil {
		return nil, types.WrapError(types.KindIo, err)
	}
	log.Debug().
		Str("command", command.String()).
		Str("input", a.Path).
		Int("bytes", len(data)).
		Msg("replaying captured output")
	return data, nil
}

var _ ports.CommandRunnerPort = CapturedOutputAdapter{}
