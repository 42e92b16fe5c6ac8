package schema

import "errors"

var (
	// ErrFailedToParse is returned when the yaml document cannot be decoded.
	ErrFailedToParse = errors.New("failed to parse schema yaml")

	// ErrUnsupportedVersion is returned for schema versions this package does not know.
	ErrUnsupportedVersion = errors.New("unsupported schema version")

	// ErrMissingName is returned when a check has no name.
	ErrMissingName = errors.New("check is missing a name")

	// ErrAmbiguousFields is returned when a check declares both field and fields.
	ErrAmbiguousFields = errors.New("check declares both field and fields")

	// ErrUnknownType is returned when a check names an unknown value type.
	ErrUnknownType = errors.New("unknown check type")

	// ErrUnknownAssertion is returned when a check names an unknown row assertion.
	ErrUnknownAssertion = errors.New("unknown row assertion")

	// ErrInvalidPattern is returned when a check's pattern does not compile.
	ErrInvalidPattern = errors.New("invalid check pattern")
)
