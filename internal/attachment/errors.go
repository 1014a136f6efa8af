package attachment

import "errors"

var (
	// ErrNotFound is returned when the named attachment does not exist in its scope.
	ErrNotFound = errors.New("attachment not found")
	// ErrInvalidSegment is returned when an identifier or file name cannot be used as a path segment.
	ErrInvalidSegment = errors.New("invalid path segment")
	// ErrInvalidPattern is returned for a malformed list filter.
	ErrInvalidPattern = errors.New("invalid list pattern")
	// ErrInvalidDestination is returned when an export has no usable target path.
	ErrInvalidDestination = errors.New("invalid export destination")
	// ErrCancelled marks a destination selection the user dismissed. It is not a failure.
	ErrCancelled = errors.New("operation cancelled")
)
