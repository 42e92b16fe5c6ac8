package csvtable

import "errors"

var (
	// ErrFailedToOpenSource is returned when a pass cannot open the underlying source.
	ErrFailedToOpenSource = errors.New("failed to open csv source")

	// ErrFailedToParse is returned when the csv reader rejects the input mid-pass.
	ErrFailedToParse = errors.New("failed to parse csv input")

	// ErrConsumed is returned when a single-pass source is asked for a second pass.
	ErrConsumed = errors.New("single-pass csv source already consumed")
)
