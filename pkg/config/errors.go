package config

import "errors"

var (
	// ErrParsingConfig wraps env tag parsing failures.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrNilPointer is returned when Load receives a nil destination.
	ErrNilPointer = errors.New("config: nil pointer provided")
)
