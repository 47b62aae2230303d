package cors

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"
)

const (
	headerOrigin           = "Origin"
	headerAllowOrigin      = "Access-Control-Allow-Origin"
	headerAllowMethods     = "Access-Control-Allow-Methods"
	headerAllowHeaders     = "Access-Control-Allow-Headers"
	headerAllowCredentials = "Access-Control-Allow-Credentials"
	headerExposeHeaders    = "Access-Control-Expose-Headers"
	headerMaxAge           = "Access-Control-Max-Age"
	headerRequestHeaders   = "Access-Control-Request-Headers"
	headerVary             = "Vary"
)

// Policy holds resolved CORS configuration. It is read-only after New and
// safe to share across requests.
type Policy struct {
	origin            Origin
	methods           []string
	allowedHeaders    []string
	exposedHeaders    []string
	credentials       bool
	maxAge            time.Duration
	preflightContinue bool
}

// New builds a Policy. Without options it permits every origin with the
// conventional method set GET, HEAD, PUT, PATCH, POST, DELETE.
func New(opts ...Option) *Policy {
	p := &Policy{
		origin: AnyOrigin(),
		methods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Apply adds the Access-Control-* headers the policy grants for the request.
// It only ever mutates response headers: a request without an Origin header
// is not a CORS request and leaves the response untouched, and a denied
// origin simply gets no allow-origin header. Apply never fails and is
// idempotent for a given request.
func (p *Policy) Apply(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get(headerOrigin)
	if origin == "" {
		return
	}

	h := w.Header()

	value, vary := p.origin.allow(r.Context(), origin)
	if vary {
		addVary(h, headerOrigin)
	}
	if value != "" {
		h.Set(headerAllowOrigin, value)
	}
	if p.credentials {
		h.Set(headerAllowCredentials, "true")
	}

	if r.Method == http.MethodOptions {
		h.Set(headerAllowMethods, strings.Join(p.methods, ","))

		if len(p.allowedHeaders) > 0 {
			h.Set(headerAllowHeaders, strings.Join(p.allowedHeaders, ","))
		} else if requested := r.Header.Get(headerRequestHeaders); requested != "" {
			// Reflect whatever the browser asked for, and tell caches the
			// answer depends on the question.
			h.Set(headerAllowHeaders, requested)
			addVary(h, headerRequestHeaders)
		}

		if p.maxAge > 0 {
			h.Set(headerMaxAge, strconv.Itoa(int(p.maxAge.Seconds())))
		}
		return
	}

	if len(p.exposedHeaders) > 0 {
		h.Set(headerExposeHeaders, strings.Join(p.exposedHeaders, ","))
	}
}

// addVary appends a Vary member at most once, keeping repeated Apply calls
// idempotent.
func addVary(h http.Header, value string) {
	if !slices.Contains(h.Values(headerVary), value) {
		h.Add(headerVary, value)
	}
}
