package app

import (
	"context"

	"cargo-probe/internal/core"
	"cargo-probe/internal/types"
)

// Version runs "cargo -Vv" and parses the verbose version text.
func (s Service) Version(ctx context.Context, req VersionRequest) (types.Version, error) {
	command := core.VersionCommand(s.program())
	command.Dir = req.Dir
	stdout, err := s.run(ctx, command, req.Input)
	if err != nil {
		return types.Version{}, err
	}
	return core.ParseVersionOutput(stdout)
}
