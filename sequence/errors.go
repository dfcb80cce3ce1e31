package sequence

import "errors"

var (
	// ErrArity is returned when a table push does not provide exactly one
	// value per column.
	ErrArity = errors.New("argument count must match column count")

	// ErrType is returned when a value pushed to a table does not match the
	// element type of its column.
	ErrType = errors.New("value type does not match column type")

	// ErrNoColumns is returned when a table is created without columns.
	ErrNoColumns = errors.New("table must have at least one column")

	// ErrLengthMismatch is returned when a table is created from columns of
	// different lengths.
	ErrLengthMismatch = errors.New("columns must have the same length")
)
