package adapters

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"cargo-probe/internal/ports"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// EntityWriterAdapter writes entities as indented JSON or as block-style
// YAML. YAML goes through the JSON encoding first so both formats share
// the wire field names and key order.
type EntityWriterAdapter struct{}

func NewEntityWriterAdapter() EntityWriterAdapter {
	return EntityWriterAdapter{}
}

func (a EntityWriterAdapter) Write(out io.Writer, format string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode output").
			WithCause(err)
	}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		_, err = fmt.Fprintf(out, "%s\n", data)
	case FormatYAML:
		err = writeYAML(out, data)
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported output format: %s", format))
	}
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write output").
			WithCause(err)
	}
	return nil
}

func writeYAML(out io.Writer, jsonData []byte) error {
	var node yaml.Node
	if err := yaml.Unmarshal(jsonData, &node); err != nil {
		return err
	}
	clearFlowStyle(&node)
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(&node); err != nil {
		return err
	}
	return encoder.Close()
}

// clearFlowStyle switches the JSON-shaped tree to block style. Empty
// collections keep flow style so they still render as [] and {}.
func clearFlowStyle(node *yaml.Node) {
	if len(node.Content) > 0 {
		node.Style &^= yaml.FlowStyle
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!str" {
		node.Style &^= yaml.DoubleQuotedStyle
	}
	for _, child := range node.Content {
		clearFlowStyle(child)
	}
}

var _ ports.EntityWriterPort = EntityWriterAdapter{}
