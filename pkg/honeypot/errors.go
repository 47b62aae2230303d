package honeypot

import "errors"

var (
	// ErrSpam marks a submission as bot-generated. Every rejection Check
	// produces wraps this sentinel, so callers match with errors.Is and
	// special-case bot handling while other failures propagate normally.
	ErrSpam = errors.New("honeypot: spam detected")

	// ErrSecretTooShort is returned by New when the encryption secret is
	// shorter than 32 characters.
	ErrSecretTooShort = errors.New("honeypot: secret too short")

	// ErrEncryptionFailed is returned when the valid-from timestamp cannot
	// be sealed.
	ErrEncryptionFailed = errors.New("honeypot: encryption failed")

	// ErrInvalidForm is returned by CheckRequest when the request body
	// cannot be parsed as form data.
	ErrInvalidForm = errors.New("honeypot: invalid form data")
)
