package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"cargo-probe/internal/core"
	"cargo-probe/internal/types"
)

// Metadata runs "cargo metadata --format-version 1" and maps the JSON.
func (s Service) Metadata(ctx context.Context, req MetadataRequest) (types.Metadata, error) {
	command := core.MetadataCommand(s.program(), req.Options)
	command.Dir = req.Dir
	stdout, err := s.run(ctx, command, req.Input)
	if err != nil {
		return types.Metadata{}, err
	}
	metadata, err := s.Mapper.Metadata(stdout)
	if err != nil {
		return types.Metadata{}, err
	}
	log.Debug().
		Uint("version", metadata.Version).
		Int("packages", len(metadata.Packages)).
		Int("members", len(metadata.WorkspaceMembers)).
		Msg("metadata decoded")
	return metadata, nil
}
