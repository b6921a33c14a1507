package types

import (
	"encoding/json"
	"fmt"
)

type PublishKind int

const (
	PublishUnrestricted PublishKind = iota
	PublishForbidden
	PublishRegistries
)

func (k PublishKind) String() string {
	switch k {
	case PublishUnrestricted:
		return "unrestricted"
	case PublishForbidden:
		return "forbidden"
	case PublishRegistries:
		return "registries"
	default:
		return fmt.Sprintf("PublishKind(%d)", int(k))
	}
}

// Publish is a package's publishing restriction. On the wire it is a single
// optional list: absent or null means unrestricted, [] forbids publishing,
// and a non-empty list names the allowed registries. The zero value is
// unrestricted.
type Publish struct {
	Kind       PublishKind
	Registries []string
}

func Unrestricted() Publish {
	return Publish{Kind: PublishUnrestricted}
}

func Forbidden() Publish {
	return Publish{Kind: PublishForbidden}
}

func AllowRegistries(names ...string) Publish {
	if len(names) == 0 {
		return Forbidden()
	}
	return Publish{Kind: PublishRegistries, Registries: names}
}

// Allows reports whether publishing to the named registry is permitted.
func (p Publish) Allows(registry string) bool {
	switch p.Kind {
	case PublishUnrestricted:
		return true
	case PublishRegistries:
		for _, name := range p.Registries {
			if name == registry {
				return true
			}
		}
	}
	return false
}

func (p Publish) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PublishForbidden:
		return []byte("[]"), nil
	case PublishRegistries:
		return json.Marshal(p.Registries)
	default:
		return []byte("null"), nil
	}
}

func (p *Publish) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		*p = Unrestricted()
		return nil
	}
	var registries []string
	if err := json.Unmarshal(data, &registries); err != nil {
		return err
	}
	*p = AllowRegistries(registries...)
	return nil
}
