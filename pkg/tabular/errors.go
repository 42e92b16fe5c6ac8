package tabular

import "errors"

var (
	// ErrFieldNotFound is returned when a field name is not present in the header.
	ErrFieldNotFound = errors.New("field not found in header")

	// ErrPositionOutOfRange is returned when a positional access falls outside the row.
	ErrPositionOutOfRange = errors.New("position out of range for row")
)
