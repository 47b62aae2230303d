// Package cors negotiates Cross-Origin Resource Sharing headers for HTTP
// responses.
//
// A Policy is built once from options and applied per request, either
// directly with Apply or as standard net/http middleware. The policy decides
// whether and how to add Access-Control-* headers; it never rejects a
// request itself. A request the policy does not permit simply receives no
// Access-Control-Allow-Origin header and the browser enforces the rest.
//
// # Origin matching
//
// The allow-origin decision is pluggable through the Origin type:
//
//   - AnyOrigin emits the "*" wildcard.
//   - Static always emits one configured origin.
//   - Origins and Pattern test the request origin against an exact list or
//     a regular expression and reflect it back on match.
//   - Match nests other matchers and takes the first that permits.
//   - OriginFunc resolves the matcher per request, with the request context,
//     so the decision can come from a database or tenant configuration.
//
// Matchers that reflect or test the request origin add "Vary: Origin" so
// shared caches keep responses for different origins apart.
//
// # Usage
//
//	policy := cors.New(
//		cors.WithOrigin(cors.Origins("https://app.example.com")),
//		cors.WithCredentials(true),
//		cors.WithMaxAge(10*time.Minute),
//	)
//
//	r := chi.NewRouter()
//	r.Use(policy.Middleware)
//
// Middleware answers preflight OPTIONS requests with 204 No Content and an
// explicit Content-Length of 0. Handlers that must see OPTIONS themselves
// can opt out with WithPreflightContinue and call Apply on their own.
//
// # Error Handling
//
// The package returns no errors. Misconfiguration shows up as missing
// headers, which browsers report in their console.
package cors
