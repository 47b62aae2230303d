// Package clientip resolves the originating client IP address of an HTTP
// request behind any number of proxies.
//
// Resolution walks the well-known proxy headers (X-Client-IP,
// X-Forwarded-For, CF-Connecting-IP, Fastly-Client-Ip, True-Client-IP,
// X-Real-IP, X-Cluster-Client-IP, X-Forwarded, Forwarded-For, then the
// RFC 7239 Forwarded header) and falls back to the connection's remote
// address. Every candidate is validated, so a header stuffed with garbage is
// skipped rather than trusted.
//
// Note that all of these headers are client-controllable unless a trusted
// proxy strips them; treat the result as a hint for logging and rate
// limiting, not as an authentication signal.
//
//	r.Use(clientip.Middleware)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		ip := clientip.FromContext(r.Context())
//		...
//	}
package clientip
