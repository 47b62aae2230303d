package singleton

import (
	"context"
	"fmt"
	"net/http"
	"sync"
)

// Registry is a keyed store of lazily-constructed values scoped to a single
// request's lifetime. One registry is created per request by Middleware and
// discarded when the request finishes; nothing leaks across requests.
type Registry struct {
	mu     sync.Mutex
	values map[string]any
}

// NewRegistry creates an empty registry. Most callers get one implicitly via
// Middleware; constructing one directly is useful in tests and background
// jobs that have no HTTP request.
func NewRegistry() *Registry {
	return &Registry{values: make(map[string]any)}
}

// getOrCreate returns the value under key, constructing it on first use.
// The constructor runs under the registry lock, so it executes at most once
// per key even when handler goroutines race.
func (reg *Registry) getOrCreate(key string, create func() any) any {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if v, ok := reg.values[key]; ok {
		return v
	}

	v := create()
	reg.values[key] = v
	return v
}

type contextKey struct{}

// WithContext attaches a registry to the context.
func WithContext(ctx context.Context, reg *Registry) context.Context {
	return context.WithValue(ctx, contextKey{}, reg)
}

// FromContext returns the registry attached to the context, or nil.
func FromContext(ctx context.Context) *Registry {
	reg, _ := ctx.Value(contextKey{}).(*Registry)
	return reg
}

// Middleware injects a fresh registry into every request's context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithContext(r.Context(), NewRegistry())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetOrCreate returns the request-scoped instance stored under key,
// constructing it with create on first use. Subsequent calls within the same
// request return the same instance; a new request gets a new one. Reusing a
// key with a different type is a programming error and returns
// ErrTypeMismatch.
//
// The constructor runs under the registry lock — that is what makes it
// at-most-once per key — so create must not call GetOrCreate on the same
// registry itself, or it deadlocks. Resolve nested dependencies before
// calling, or construct them lazily inside the returned value.
func GetOrCreate[T any](ctx context.Context, key string, create func() T) (T, error) {
	var zero T

	reg := FromContext(ctx)
	if reg == nil {
		return zero, ErrNoRegistry
	}

	v := reg.getOrCreate(key, func() any { return create() })

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T", ErrTypeMismatch, key, v)
	}
	return typed, nil
}
