package adapters

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cargo-probe/internal/types"
)

func TestCapturedOutputAdapterReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "version.txt")
	require.NoError(t, os.WriteFile(path, []byte("release: 1.62.0\n"), 0o644))

	out, err := NewCapturedOutputAdapter(path).Run(context.Background(), types.Command{Program: "cargo", Args: []string{"-Vv"}})
	require.NoError(t, err)
	assert.Equal(t, "release: 1.62.0\n", string(out))
}

func TestCapturedOutputAdapterErrors(t *testing.T) {
	missing := NewCapturedOutputAdapter(filepath.Join(t.TempDir(), "missing.json"))
	_, err := missing.Run(context.Background(), types.Command{Program: "cargo"})
	var parseErr *types.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, types.KindIo, parseErr.Kind)
	assert.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewCapturedOutputAdapter("unused").Run(ctx, types.Command{Program: "cargo"})
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, types.KindIo, parseErr.Kind)
	assert.ErrorIs(t, err, context.Canceled)
}
