package core

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Masterminds/semver/v3"

	"cargo-probe/internal/types"
)

// Keys of the verbose version output, in the order cargo prints them.
const (
	VersionKeyRelease    = "release"
	VersionKeyCommitHash = "commit-hash"
	VersionKeyCommitDate = "commit-date"
	VersionKeyHost       = "host"
	VersionKeyLibgit2    = "libgit2"
	VersionKeyLibcurl    = "libcurl"
	VersionKeyOS         = "os"
)

// ParseVersionOutput decodes the raw stdout of "cargo -Vv" and parses it.
func ParseVersionOutput(stdout []byte) (types.Version, error) {
	text, err := decodeUTF8(stdout)
	if err != nil {
		return types.Version{}, err
	}
	return ParseVersion(text)
}

// ParseVersion parses verbose version text. Keys are searched for in the
// fixed order above with a cursor that only moves forward, so a key
// printed before one that precedes it in that order is not found.
func ParseVersion(text string) (types.Version, error) {
	scanner := newLineScanner(text)

	release, ok := scanner.find(VersionKeyRelease)
	if !ok {
		return types.Version{}, types.MissingKeyError(VersionKeyRelease)
	}
	parsedRelease, err := semver.StrictNewVersion(release)
	if err != nil {
		return types.Version{}, types.WrapError(types.KindSemver, err)
	}

	var commitHash *string
	if hash, ok := scanner.find(VersionKeyCommitHash); ok {
		commitHash = &hash
	}

	var commitDate *time.Time
	if date, ok := scanner.find(VersionKeyCommitDate); ok {
		parsed, err := time.Parse(types.CommitDateLayout, date)
		if err != nil {
			return types.Version{}, types.WrapError(types.KindDate, err)
		}
		commitDate = &parsed
	}

	host, ok := scanner.find(VersionKeyHost)
	if !ok {
		return types.Version{}, types.MissingKeyError(VersionKeyHost)
	}
	parsedHost, err := types.ParseTriple(host)
	if err != nil {
		return types.Version{}, types.WrapError(types.KindTriple, err)
	}

	libgit2, ok := scanner.find(VersionKeyLibgit2)
	if !ok {
		return types.Version{}, types.MissingKeyError(VersionKeyLibgit2)
	}
	libcurl, ok := scanner.find(VersionKeyLibcurl)
	if !ok {
		return types.Version{}, types.MissingKeyError(VersionKeyLibcurl)
	}
	osName, ok := scanner.find(VersionKeyOS)
	if !ok {
		return types.Version{}, types.MissingKeyError(VersionKeyOS)
	}

	return types.Version{
		Release:    parsedRelease,
		CommitHash: commitHash,
		CommitDate: commitDate,
		Host:       parsedHost,
		Libgit2:    libgit2,
		Libcurl:    libcurl,
		OS:         osName,
	}, nil
}

// lineScanner walks the lines of a text exactly once.
type lineScanner struct {
	lines []string
	pos   int
}

func newLineScanner(text string) *lineScanner {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return &lineScanner{lines: lines}
}

// find returns the value of the first line at or after the cursor that
// starts with "<key>: ". A hit moves the cursor past that line; a miss
// leaves it where it was.
func (s *lineScanner) find(key string) (string, bool) {
	prefix := key + ": "
	for i := s.pos; i < len(s.lines); i++ {
		if value, ok := strings.CutPrefix(s.lines[i], prefix); ok {
			s.pos = i + 1
			return value, true
		}
	}
	return "", false
}

func decodeUTF8(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	offset := 0
	for offset < len(data) {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		offset += size
	}
	return "", types.WrapError(types.KindUtf8, &types.Utf8Error{Offset: offset})
}
