package table

import "errors"

var (
	// ErrMissingColumn is returned when a required column is absent.
	ErrMissingColumn = errors.New("table: missing required column")
	// ErrLengthMismatch is returned when the columns differ in length.
	ErrLengthMismatch = errors.New("table: columns must have equal length")
	// ErrEmpty is returned for a nil table or zero-length columns.
	ErrEmpty = errors.New("table: table must contain at least one sample")
	// ErrBadCell is returned when a CSV cell cannot be parsed as a number.
	ErrBadCell = errors.New("table: cell is not numeric")
)
