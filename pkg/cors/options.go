package cors

import "time"

// Option configures a Policy.
type Option func(*Policy)

// WithOrigin sets the origin matcher. Nil matchers are ignored so the
// wildcard default stays in place.
func WithOrigin(origin Origin) Option {
	return func(p *Policy) {
		if origin != nil {
			p.origin = origin
		}
	}
}

// WithMethods replaces the default method list advertised on preflights.
func WithMethods(methods ...string) Option {
	return func(p *Policy) {
		if len(methods) > 0 {
			p.methods = methods
		}
	}
}

// WithAllowedHeaders sets the header allow-list advertised on preflights.
// When unset, the preflight's Access-Control-Request-Headers is reflected.
func WithAllowedHeaders(headers ...string) Option {
	return func(p *Policy) {
		p.allowedHeaders = headers
	}
}

// WithExposedHeaders lists response headers the browser may read on actual
// (non-preflight) responses.
func WithExposedHeaders(headers ...string) Option {
	return func(p *Policy) {
		p.exposedHeaders = headers
	}
}

// WithCredentials enables Access-Control-Allow-Credentials. Combine with a
// reflecting origin matcher; browsers reject credentialed wildcards.
func WithCredentials(allow bool) Option {
	return func(p *Policy) {
		p.credentials = allow
	}
}

// WithMaxAge sets how long browsers may cache preflight results. Zero or
// negative durations leave the header out.
func WithMaxAge(d time.Duration) Option {
	return func(p *Policy) {
		p.maxAge = d
	}
}

// WithPreflightContinue makes Middleware pass OPTIONS requests through to
// the next handler instead of answering them with 204.
func WithPreflightContinue(cont bool) Option {
	return func(p *Policy) {
		p.preflightContinue = cont
	}
}
