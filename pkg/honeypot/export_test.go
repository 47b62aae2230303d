package honeypot

import "time"

// WithNow overrides the clock. Test-only.
func WithNow(now func() time.Time) Option {
	return func(h *Honeypot) {
		if now != nil {
			h.now = now
		}
	}
}

// Seal exposes timestamp encryption so tests can forge values.
func (h *Honeypot) Seal(plaintext string) (string, error) {
	return h.seal(plaintext)
}
