package types

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "missing key",
			err:  MissingKeyError("libgit2"),
			want: `missing "libgit2" key when parsing version`,
		},
		{
			name: "exec keeps stderr",
			err:  ExecError([]byte("error: no such subcommand\n")),
			want: "error when executing command, stderr output:\nerror: no such subcommand\n",
		},
		{
			name: "exec with invalid utf-8",
			err:  ExecError([]byte{'o', 'k', 0xff}),
			want: "error when executing command, stderr output:\nok�",
		},
		{
			name: "io",
			err:  WrapError(KindIo, io.ErrUnexpectedEOF),
			want: "failed to run command: unexpected EOF",
		},
		{
			name: "serde wraps field error",
			err:  WrapError(KindSerde, &FieldError{Entity: "metadata", Field: "target_directory"}),
			want: "invalid json: metadata: missing field `target_directory`",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestParseErrorUnwrap(t *testing.T) {
	err := WrapError(KindIo, io.ErrClosedPipe)
	assert.True(t, errors.Is(err, io.ErrClosedPipe))

	var enumErr *EnumError
	wrapped := WrapError(KindSerde, &EnumError{Enum: "mode", Value: "bench", Expected: []string{"test", "build"}})
	assert.ErrorAs(t, wrapped, &enumErr)
	assert.Equal(t, "mode: unknown variant `bench`, expected one of test, build", enumErr.Error())
}
