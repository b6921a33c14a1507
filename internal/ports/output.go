package ports

import "io"

// EntityWriterPort renders a parsed entity in a machine-readable format.
type EntityWriterPort interface {
	Write(out io.Writer, format string, value any) error
}
