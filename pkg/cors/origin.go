package cors

import (
	"context"
	"regexp"
)

// Origin decides how the Access-Control-Allow-Origin header is produced for
// an incoming request origin.
//
// Implementations report the header value to emit (empty means the origin is
// not permitted and the header is omitted) and whether the response depends
// on the request origin, in which case "Vary: Origin" must be appended so
// shared caches do not serve one origin's response to another.
type Origin interface {
	allow(ctx context.Context, origin string) (value string, vary bool)
}

type anyOrigin struct{}

func (anyOrigin) allow(context.Context, string) (string, bool) {
	return "*", false
}

// AnyOrigin permits every origin via the "*" wildcard. The response does not
// vary by origin, so no Vary header is added.
func AnyOrigin() Origin { return anyOrigin{} }

type staticOrigin string

func (s staticOrigin) allow(context.Context, string) (string, bool) {
	return string(s), true
}

// Static always emits the configured origin verbatim, regardless of the
// request origin. Use it when exactly one cross-origin client exists.
func Static(origin string) Origin { return staticOrigin(origin) }

type originList []string

func (l originList) allow(_ context.Context, origin string) (string, bool) {
	for _, o := range l {
		if o == origin {
			return origin, true
		}
	}
	return "", true
}

// Origins permits the listed origins only. A matching request origin is
// reflected back verbatim; anything else gets no allow-origin header.
func Origins(origins ...string) Origin { return originList(origins) }

type originPattern struct {
	re *regexp.Regexp
}

func (p originPattern) allow(_ context.Context, origin string) (string, bool) {
	if p.re.MatchString(origin) {
		return origin, true
	}
	return "", true
}

// Pattern permits origins matching the regular expression, reflecting the
// request origin verbatim on match.
func Pattern(re *regexp.Regexp) Origin { return originPattern{re: re} }

type originGroup []Origin

func (g originGroup) allow(ctx context.Context, origin string) (string, bool) {
	for _, member := range g {
		if member == nil {
			continue
		}
		if value, _ := member.allow(ctx, origin); value != "" {
			return value, true
		}
	}
	return "", true
}

// Match combines several Origin matchers; members are tested in order
// (recursively, so groups may nest) and the first permitting member wins.
func Match(members ...Origin) Origin { return originGroup(members) }

type originFunc func(ctx context.Context, origin string) Origin

func (f originFunc) allow(ctx context.Context, origin string) (string, bool) {
	resolved := f(ctx, origin)
	if resolved == nil {
		return "", true
	}
	return resolved.allow(ctx, origin)
}

// OriginFunc resolves the effective origin policy per request, e.g. from a
// tenant database keyed by the request origin. The request context is passed
// through so resolution can perform I/O and honor cancellation. Returning
// nil denies the origin.
func OriginFunc(fn func(ctx context.Context, origin string) Origin) Origin {
	return originFunc(fn)
}
