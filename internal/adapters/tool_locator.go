package adapters

import (
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"

	"cargo-probe/internal/ports"
)

const (
	DefaultToolName = "cargo"
	ToolEnvVar      = "CARGO"
)

// ToolLocatorAdapter picks the cargo executable: an explicitly configured
// path first, then $CARGO, then a PATH lookup, then the bare name.
type ToolLocatorAdapter struct {
	Explicit string
	Getenv   func(string) string
	LookPath func(string) (string, error)
}

func NewToolLocatorAdapter(explicit string) ToolLocatorAdapter {
	return ToolLocatorAdapter{
		Explicit: explicit,
		Getenv:   os.Getenv,
		LookPath: exec.LookPath,
	}
}

func (a ToolLocatorAdapter) Locate() string {
	if path := strings.TrimSpace(a.Explicit); path != "" {
		log.Debug().Str("path", path).Str("source", "config").Msg("using configured cargo")
		return path
	}
	if a.Getenv != nil {
		if path := strings.TrimSpace(a.Getenv(ToolEnvVar)); path != "" {
			log.Debug().Str("path", path).Str("source", "env").Msg("using cargo from environment")
			return path
		}
	}
	if a.LookPath != nil {
		if path, err := a.LookPath(DefaultToolName); err == nil {
			log.Debug().Str("path", path).Str("source", "path").Msg("using cargo from PATH")
			return path
		}
	}
	return DefaultToolName
}

var _ ports.ToolLocatorPort = ToolLocatorAdapter{}
