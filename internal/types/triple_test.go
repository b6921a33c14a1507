package types

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTriple(t *testing.T) {
	tests := []struct {
		input string
		want  Triple
	}{
		{
			input: "x86_64-unknown-linux-gnu",
			want:  Triple{Architecture: "x86_64", Vendor: "unknown", OperatingSystem: "linux", Environment: "gnu"},
		},
		{
			input: "aarch64-apple-darwin",
			want:  Triple{Architecture: "aarch64", Vendor: "apple", OperatingSystem: "darwin"},
		},
		{
			input: "x86_64-pc-windows-msvc",
			want:  Triple{Architecture: "x86_64", Vendor: "pc", OperatingSystem: "windows", Environment: "msvc"},
		},
		{
			input: "aarch64-linux-android",
			want:  Triple{Architecture: "aarch64", OperatingSystem: "linux", Environment: "android"},
		},
		{
			input: "wasm32-unknown-unknown",
			want:  Triple{Architecture: "wasm32", Vendor: "unknown", OperatingSystem: "unknown"},
		},
		{
			input: "armv7-unknown-linux-gnueabihf",
			want:  Triple{Architecture: "armv7", Vendor: "unknown", OperatingSystem: "linux", Environment: "gnueabihf"},
		},
		{
			input: "thumbv7em-none-eabihf",
			want:  Triple{Architecture: "thumbv7em", OperatingSystem: "none", Environment: "eabihf"},
		},
		{
			input: "aarch64-unknown-none",
			want:  Triple{Architecture: "aarch64", Vendor: "unknown", OperatingSystem: "none"},
		},
		{
			input: "riscv32imac-unknown-none-elf",
			want:  Triple{Architecture: "riscv32imac", Vendor: "unknown", OperatingSystem: "none", Environment: "elf"},
		},
		{
			input: "asmjs-unknown-emscripten",
			want:  Triple{Architecture: "asmjs", Vendor: "unknown", OperatingSystem: "emscripten"},
		},
		{
			input: "spirv-unknown-unknown",
			want:  Triple{Architecture: "spirv", Vendor: "unknown", OperatingSystem: "unknown"},
		},
		{
			input: "loongarch64-unknown-linux-gnu",
			want:  Triple{Architecture: "loongarch64", Vendor: "unknown", OperatingSystem: "linux", Environment: "gnu"},
		},
		{
			input: "i486-unknown-linux-gnu",
			want:  Triple{Architecture: "i486", Vendor: "unknown", OperatingSystem: "linux", Environment: "gnu"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTriple(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected triple (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestParseTripleRejects(t *testing.T) {
	for _, input := range []string{"", "  ", "toaster", "x86_64", "x86_64--linux", "banana-unknown-linux-gnu"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTriple(input)
			var tripleErr *TripleError
			require.ErrorAs(t, err, &tripleErr)
			assert.Equal(t, input, tripleErr.Input)
		})
	}
}

func TestTripleJSON(t *testing.T) {
	var decoded struct {
		Platform *Triple `json:"platform"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"platform":"riscv64gc-unknown-linux-gnu"}`), &decoded))
	require.NotNil(t, decoded.Platform)
	assert.Equal(t, "riscv64gc", decoded.Platform.Architecture)

	encoded, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"platform":"riscv64gc-unknown-linux-gnu"}`, string(encoded))

	err = json.Unmarshal([]byte(`{"platform":"nope"}`), &decoded)
	var tripleErr *TripleError
	assert.ErrorAs(t, err, &tripleErr)
}
