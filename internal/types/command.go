package types

import "strings"

// Command is a fully prepared invocation of the build tool.
type Command struct {
	Program string
	Args    []string
	// Dir is the working directory; empty means the current one.
	Dir string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Program + " " + strings.Join(c.Args, " "))
}
