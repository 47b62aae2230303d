package clientip

import "context"

type contextKey struct{}

// WithContext stores the client IP in the context.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext retrieves the client IP stored by Middleware. Returns an empty
// string when the middleware did not run.
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}
