package honeypot

// Option configures a Honeypot.
type Option func(*Honeypot)

// WithInputName sets the decoy field name rendered into forms.
func WithInputName(name string) Option {
	return func(h *Honeypot) {
		if name != "" {
			h.inputName = name
		}
	}
}

// WithRandomizedInputName appends a random suffix to the decoy field name on
// every render, so bots cannot hardcode the field to skip.
func WithRandomizedInputName(randomize bool) Option {
	return func(h *Honeypot) {
		h.randomizeInputName = randomize
	}
}

// WithValidFromFieldName sets the field carrying the encrypted render
// timestamp.
func WithValidFromFieldName(name string) Option {
	return func(h *Honeypot) {
		if name != "" {
			h.validFromFieldName = name
		}
	}
}

// WithoutValidFrom disables the time-window signal entirely; only the decoy
// field is checked.
func WithoutValidFrom() Option {
	return func(h *Honeypot) {
		h.validFromFieldName = ""
	}
}
