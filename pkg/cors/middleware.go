package cors

import "net/http"

// Middleware applies the policy's headers to every response and answers
// preflight OPTIONS requests with 204 No Content so they never reach the
// next handler (disable with WithPreflightContinue). An OPTIONS request
// without an Origin header is not a preflight and passes through, so plain
// capability queries still reach the handler.
func (p *Policy) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.Apply(w, r)

		if r.Method == http.MethodOptions && r.Header.Get(headerOrigin) != "" && !p.preflightContinue {
			// Preflights have no body; some clients hang without an
			// explicit zero length on 204.
			w.Header().Set("Content-Length", "0")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
