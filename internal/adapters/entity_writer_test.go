package adapters

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"cargo-probe/internal/types"
)

type writerFixture struct {
	Name     string        `json:"name"`
	Version  string        `json:"version"`
	Features []string      `json:"features"`
	Empty    []string      `json:"empty"`
	Publish  types.Publish `json:"publish"`
	Source   *string       `json:"source"`
}

func newWriterFixture() writerFixture {
	return writerFixture{
		Name:     "probe-app",
		Version:  "1.0",
		Features: []string{"derive", "true"},
		Empty:    []string{},
		Publish:  types.AllowRegistries("internal"),
	}
}

func TestEntityWriterAdapterJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEntityWriterAdapter().Write(&buf, FormatJSON, newWriterFixture()))

	want := `{
  "name": "probe-app",
  "version": "1.0",
  "features": [
    "derive",
    "true"
  ],
  "empty": [],
  "publish": [
    "internal"
  ],
  "source": null
}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("unexpected json output (-want +got):\n%s", diff)
	}
}

func TestEntityWriterAdapterYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewEntityWriterAdapter().Write(&buf, "YAML", newWriterFixture()))
	out := buf.String()

	assert.Contains(t, out, "name: probe-app\n")
	assert.Contains(t, out, "empty: []\n")
	assert.NotContains(t, out, "{")

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	jsonData, err := json.Marshal(newWriterFixture())
	require.NoError(t, err)
	var want map[string]any
	require.NoError(t, json.Unmarshal(jsonData, &want))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("yaml output does not decode to the json document (-want +got):\n%s", diff)
	}
}

func TestEntityWriterAdapterUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewEntityWriterAdapter().Write(&buf, "toml", newWriterFixture())
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Empty(t, buf.String())
}
