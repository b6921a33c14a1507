package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Triple is a parsed platform triple such as "x86_64-unknown-linux-gnu".
// Vendor is empty when the input omits it ("aarch64-linux-android") and
// Environment is empty for three-part triples ("aarch64-apple-darwin").
type Triple struct {
	Architecture    string
	Vendor          string
	OperatingSystem string
	Environment     string
}

// TripleError describes why a platform string was rejected.
type TripleError struct {
	Input  string
	Reason string
}

func (e *TripleError) Error() string {
	return fmt.Sprintf("%q: %s", e.Input, e.Reason)
}

// architecturePrefixes are matched against the first component, so "arm"
// also covers armv7 and armebv7r, "mips" covers mipsel and mips64.
var architecturePrefixes = []string{
	"x86_64", "i386", "i486", "i586", "i686", "aarch64", "arm64", "arm",
	"thumb", "riscv", "wasm32", "wasm64", "asmjs", "mips", "powerpc", "s390x",
	"sparc", "loongarch", "nvptx", "avr", "msp430", "hexagon", "bpf", "m68k",
	"csky", "xtensa", "amdgcn", "amdil", "r600", "spir", "hsail", "le32",
	"le64", "kalimba", "shave", "lanai", "renderscript", "xcore", "tce",
}

var knownVendors = map[string]struct{}{
	"unknown": {}, "pc": {}, "apple": {}, "nvidia": {}, "fortanix": {},
	"uwp": {}, "wrs": {}, "sun": {}, "sony": {}, "nintendo": {},
	"espressif": {}, "kmc": {}, "esp": {}, "win7": {}, "openwrt": {},
	"ibm": {}, "unikraft": {}, "risc0": {}, "amd": {},
}

// ParseTriple splits a platform string into its components. The
// architecture must be recognised; the vendor segment is optional. A
// second component of "none" is the operating system, as in
// thumbv7em-none-eabihf.
func ParseTriple(value string) (Triple, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Triple{}, &TripleError{Input: value, Reason: "empty triple"}
	}
	parts := strings.Split(trimmed, "-")
	for _, part := range parts {
		if part == "" {
			return Triple{}, &TripleError{Input: value, Reason: "empty component"}
		}
	}
	if len(parts) < 2 {
		return Triple{}, &TripleError{Input: value, Reason: "expected at least architecture and operating system"}
	}
	if !knownArchitecture(parts[0]) {
		return Triple{}, &TripleError{Input: value, Reason: fmt.Sprintf("unrecognized architecture %q", parts[0])}
	}
	triple := Triple{Architecture: parts[0]}
	rest := parts[1:]
	if _, ok := knownVendors[rest[0]]; ok && len(rest) > 1 {
		triple.Vendor = rest[0]
		rest = rest[1:]
	}
	triple.OperatingSystem = rest[0]
	if len(rest) > 1 {
		triple.Environment = strings.Join(rest[1:], "-")
	}
	return triple, nil
}

func knownArchitecture(arch string) bool {
	for _, prefix := range architecturePrefixes {
		if strings.HasPrefix(arch, prefix) {
			return true
		}
	}
	return false
}

// String reassembles the triple; it matches the parsed input.
func (t Triple) String() string {
	parts := []string{t.Architecture}
	for _, part := range []string{t.Vendor, t.OperatingSystem, t.Environment} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "-")
}

func (t Triple) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Triple) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	parsed, err := ParseTriple(value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
