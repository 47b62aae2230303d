package singleton

import "errors"

var (
	// ErrNoRegistry is returned when the context carries no registry,
	// usually because Middleware is missing from the chain.
	ErrNoRegistry = errors.New("singleton: no registry in context")

	// ErrTypeMismatch is returned when a key already holds a value of a
	// different type.
	ErrTypeMismatch = errors.New("singleton: type mismatch")
)
