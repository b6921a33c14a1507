package types

import (
	"bytes"
	"encoding/json"
)

// fieldSpec lists the wire keys an entity cannot do without. Keys in
// required must be present and non-null.
type fieldSpec struct {
	entity   string
	required []string
}

// check verifies key presence before the entity is decoded field by field.
// encoding/json silently zero-fills absent keys, which would let a missing
// target_directory decode as "".
func (s fieldSpec) check(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return &FieldError{Entity: s.entity, Field: s.firstKey()}
	}
	for _, key := range s.required {
		raw, ok := fields[key]
		if !ok || isNull(raw) {
			return &FieldError{Entity: s.entity, Field: key}
		}
	}
	return nil
}

func (s fieldSpec) firstKey() string {
	if len(s.required) > 0 {
		return s.required[0]
	}
	return ""
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// decodeEnum reads a JSON string and accepts it only if it is one of allowed.
func decodeEnum[T ~string](data []byte, name string, allowed []T) (T, error) {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return "", err
	}
	for _, candidate := range allowed {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	expected := make([]string, 0, len(allowed))
	for _, candidate := range allowed {
		expected = append(expected, string(candidate))
	}
	return "", &EnumError{Enum: name, Value: value, Expected: expected}
}
