package core

import (
	"encoding/json"
	"errors"
	"fmt"

	"cargo-probe/internal/types"
)

// MetadataFormatVersion is the "cargo metadata --format-version" this
// mapper is written against.
const MetadataFormatVersion uint = 1

// UnitGraphFormatVersion is the unit-graph "version" this mapper is
// written against.
const UnitGraphFormatVersion uint = 1

// SchemaMapper turns JSON output into typed entities. The zero value
// accepts any declared schema version; StrictVersion rejects versions
// other than the ones above before decoding any field.
type SchemaMapper struct {
	StrictVersion bool
}

func NewSchemaMapper(strict bool) SchemaMapper {
	return SchemaMapper{StrictVersion: strict}
}

// DecodeMetadata maps "cargo metadata" output without a version check.
func DecodeMetadata(data []byte) (types.Metadata, error) {
	return SchemaMapper{}.Metadata(data)
}

// DecodeUnitGraph maps "--unit-graph" output without a version check.
func DecodeUnitGraph(data []byte) (types.UnitGraph, error) {
	return SchemaMapper{}.UnitGraph(data)
}

func (m SchemaMapper) Metadata(data []byte) (types.Metadata, error) {
	if err := m.precheck(data, MetadataFormatVersion); err != nil {
		return types.Metadata{}, err
	}
	var metadata types.Metadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		return types.Metadata{}, classifyDecodeError(err)
	}
	return metadata, nil
}

func (m SchemaMapper) UnitGraph(data []byte) (types.UnitGraph, error) {
	if err := m.precheck(data, UnitGraphFormatVersion); err != nil {
		return types.UnitGraph{}, err
	}
	var graph types.UnitGraph
	if err := json.Unmarshal(data, &graph); err != nil {
		return types.UnitGraph{}, classifyDecodeError(err)
	}
	return graph, nil
}

func (m SchemaMapper) precheck(data []byte, accepted uint) error {
	if _, err := decodeUTF8(data); err != nil {
		return err
	}
	if !m.StrictVersion {
		return nil
	}
	var header struct {
		Version *uint `json:"version"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return classifyDecodeError(err)
	}
	if header.Version == nil {
		return types.WrapError(types.KindSerde, &types.FieldError{Entity: "document", Field: "version"})
	}
	if *header.Version != accepted {
		return types.WrapError(types.KindSchemaVersion,
			fmt.Errorf("document declares version %d, supported version is %d", *header.Version, accepted))
	}
	return nil
}

// classifyDecodeError keeps triple failures distinct from other structural
// failures; everything else is a serde error.
func classifyDecodeError(err error) error {
	var tripleErr *types.TripleError
	if errors.As(err, &tripleErr) {
		return types.WrapError(types.KindTriple, err)
	}
	return types.WrapError(types.KindSerde, err)
}
