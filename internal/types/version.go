package types

import (
	"encoding/json"
	"time"

	"github.com/Masterminds/semver/v3"
)

// CommitDateLayout is the ISO-8601 calendar date format used by the
// commit-date line.
const CommitDateLayout = "2006-01-02"

// Version is the parsed output of "cargo --version --verbose".
type Version struct {
	// Release is the semantic version of this cargo release, e.g. "1.62.0".
	Release *semver.Version
	// CommitHash and CommitDate are only present for builds made from git.
	CommitHash *string
	CommitDate *time.Time
	// Host is the platform cargo runs on, e.g. "x86_64-unknown-linux-gnu".
	Host    Triple
	Libgit2 string
	Libcurl string
	// OS is free text, e.g. "Arch Linux Rolling Release [64-bit]".
	OS string
}

type versionWire struct {
	Release    string  `json:"release"`
	CommitHash *string `json:"commit_hash"`
	CommitDate *string `json:"commit_date"`
	Host       string  `json:"host"`
	Libgit2    string  `json:"libgit2"`
	Libcurl    string  `json:"libcurl"`
	OS         string  `json:"os"`
}

func (v Version) wire() versionWire {
	out := versionWire{
		CommitHash: v.CommitHash,
		Host:       v.Host.String(),
		Libgit2:    v.Libgit2,
		Libcurl:    v.Libcurl,
		OS:         v.OS,
	}
	if v.Release != nil {
		out.Release = v.Release.Original()
	}
	if v.CommitDate != nil {
		date := v.CommitDate.Format(CommitDateLayout)
		out.CommitDate = &date
	}
	return out
}

func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.wire())
}
