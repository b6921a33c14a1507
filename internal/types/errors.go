package types

import (
	"fmt"
	"strings"
)

// ErrorKind identifies which stage of an invocation failed.
type ErrorKind string

const (
	KindVersion       ErrorKind = "version"
	KindExec          ErrorKind = "exec"
	KindIo            ErrorKind = "io"
	KindUtf8          ErrorKind = "utf8"
	KindSemver        ErrorKind = "semver"
	KindTriple        ErrorKind = "triple"
	KindDate          ErrorKind = "date"
	KindSerde         ErrorKind = "serde"
	KindSchemaVersion ErrorKind = "schema-version"
)

// ParseError is the single failure type returned by every query. Only the
// payload fields relevant to Kind are set: Key for KindVersion, Stderr for
// KindExec, Err for everything else.
type ParseError struct {
	Kind   ErrorKind
	Key    string
	Stderr []byte
	Err    error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindVersion:
		return fmt.Sprintf("missing %q key when parsing version", e.Key)
	case KindExec:
		return "error when executing command, stderr output:\n" + strings.ToValidUTF8(string(e.Stderr), "�")
	case KindIo:
		return fmt.Sprintf("failed to run command: %v", e.Err)
	case KindUtf8:
		return fmt.Sprintf("output is not valid utf-8: %v", e.Err)
	case KindSemver:
		return fmt.Sprintf("invalid release version: %v", e.Err)
	case KindTriple:
		return fmt.Sprintf("invalid platform triple: %v", e.Err)
	case KindDate:
		return fmt.Sprintf("invalid commit date: %v", e.Err)
	case KindSerde:
		return fmt.Sprintf("invalid json: %v", e.Err)
	case KindSchemaVersion:
		return fmt.Sprintf("unsupported schema version: %v", e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func MissingKeyError(key string) *ParseError {
	return &ParseError{Kind: KindVersion, Key: key}
}

func ExecError(stderr []byte) *ParseError {
	return &ParseError{Kind: KindExec, Stderr: stderr}
}

func WrapError(kind ErrorKind, err error) *ParseError {
	return &ParseError{Kind: kind, Err: err}
}

// FieldError reports a required JSON field that was absent or null.
type FieldError struct {
	Entity string
	Field  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: missing field `%s`", e.Entity, e.Field)
}

// EnumError reports a value outside a closed string enumeration.
type EnumError struct {
	Enum     string
	Value    string
	Expected []string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("%s: unknown variant `%s`, expected one of %s", e.Enum, e.Value, strings.Join(e.Expected, ", "))
}

// Utf8Error reports the first byte offset at which decoding failed.
type Utf8Error struct {
	Offset int
}

func (e *Utf8Error) Error() string {
	return fmt.Sprintf("invalid utf-8 sequence at byte %d", e.Offset)
}
