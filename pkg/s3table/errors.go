package s3table

import "errors"

var (
	// Configuration errors
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")

	// Object access errors for proper error classification
	ErrObjectNotFound     = errors.New("object not found")
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
)
