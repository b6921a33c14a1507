package app

import "cargo-probe/internal/core"

type VersionRequest struct {
	// Input replays a captured "cargo -Vv" output instead of running cargo.
	Input string
	Dir   string
}

type MetadataRequest struct {
	Options core.MetadataOptions
	Input   string
	Dir     string
}

type UnitGraphRequest struct {
	Options core.UnitGraphOptions
	Input   string
	Dir     string
}
