package intent

import "errors"

var (
	// ErrMissingIntent is returned when neither the query string nor the
	// form body carries an action name.
	ErrMissingIntent = errors.New("intent: missing intent")

	// ErrUnknownIntent is returned by Dispatch when the submitted intent
	// has no registered action and no default exists.
	ErrUnknownIntent = errors.New("intent: unknown intent")

	// ErrInvalidForm is returned when the request body cannot be parsed.
	ErrInvalidForm = errors.New("intent: invalid form data")
)
