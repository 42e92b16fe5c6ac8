package validator

import "errors"

// Configuration errors surfaced before any row is scanned.
var (
	// ErrInvalidConstraint is returned when a constraint declaration is malformed.
	ErrInvalidConstraint = errors.New("invalid constraint")

	// ErrEmptyTable is returned when a pass cannot pull a header row.
	ErrEmptyTable = errors.New("table has no header row")
)

// Value-check failure categories. Checks wrap these sentinels so report
// consumers can group problems with errors.Is instead of parsing messages.
var (
	ErrMissingValue = errors.New("value is missing")
	ErrNotInt       = errors.New("value is not an integer")
	ErrNotFloat     = errors.New("value is not a number")
	ErrNotBool      = errors.New("value is not a recognized boolean")
	ErrNotDate      = errors.New("value is not a valid date")
	ErrNotUUID      = errors.New("value is not a valid UUID")
)
