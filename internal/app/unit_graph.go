package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"cargo-probe/internal/core"
	"cargo-probe/internal/types"
)

// UnitGraph runs a nightly "cargo build --unit-graph" and maps the JSON.
// Nothing is compiled; cargo only prints the plan.
func (s Service) UnitGraph(ctx context.Context, req UnitGraphRequest) (types.UnitGraph, error) {
	command := core.UnitGraphCommand(s.program(), req.Options)
	command.Dir = req.Dir
	stdout, err := s.run(ctx, command, req.Input)
	if err != nil {
		return types.UnitGraph{}, err
	}
	graph, err := s.Mapper.UnitGraph(stdout)
	if err != nil {
		return types.UnitGraph{}, err
	}
	log.Debug().
		Uint("version", graph.Version).
		Int("units", len(graph.Units)).
		Int("roots", len(graph.Roots)).
		Msg("unit graph decoded")
	return graph, nil
}
