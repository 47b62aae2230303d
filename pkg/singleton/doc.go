// Package singleton provides a keyed registry of lazily-constructed values
// scoped to a single HTTP request.
//
// The pattern replaces ambient per-request globals (a request-local data
// loader, a batcher, a memoized lookup) with explicit context passing: the
// middleware puts a fresh Registry into each request's context, and
// GetOrCreate constructs a value at most once per request and key.
//
//	r.Use(singleton.Middleware)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		loader, err := singleton.GetOrCreate(r.Context(), "user-loader", func() *UserLoader {
//			return NewUserLoader(db)
//		})
//		...
//	}
//
// The registry is mutex-guarded, so goroutines spawned within one request
// may share it; nothing is shared between requests. Constructors run under
// that mutex and therefore must not call GetOrCreate on the same registry
// themselves.
package singleton
