package dbal

import "io"

// Dialect describes the identifier conventions of a database platform.
// It carries no connection and holds no state; implementations live in
// the dialect subpackages.
type Dialect interface {
	// WriteQuoted writes the given string to the writer surrounded by the
	// appropriate identifier quotes for the dialect
	WriteQuoted(w io.Writer, s string)

	// IsReservedKeyword reports whether the given word is a reserved
	// keyword on this platform and therefore needs quoting even when the
	// caller did not quote it. The check is case-insensitive.
	IsReservedKeyword(s string) bool
}
