package schema

import (
	"errors"
	"fmt"
)

// Each strict accessor on [ForeignKey] fails with its own sentinel when
// the underlying field did not parse or resolve at construction time.
// The wrapped error names the constraint; match with [errors.Is].
var (
	ErrInvalidReferencingColumns = errors.New("referencing column names did not parse")
	ErrInvalidReferencedTable    = errors.New("referenced table name did not parse")
	ErrInvalidReferencedColumns  = errors.New("referenced column names did not parse")
	ErrInvalidMatchType          = errors.New("match type option did not resolve")
	ErrInvalidOnUpdate           = errors.New("onUpdate option did not resolve")
	ErrInvalidOnDelete           = errors.New("onDelete option did not resolve")
	ErrInvalidDeferrability      = errors.New("deferrability options did not resolve")
)

func (f *ForeignKey) invalid(sentinel error) error {
	return fmt.Errorf("foreign key constraint %s: %w", f.displayName(), sentinel)
}

func (f *ForeignKey) displayName() string {
	if f.name == "" {
		return "(anonymous)"
	}
	return fmt.Sprintf("%q", f.name)
}
