package cors_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webkit/pkg/cors"
)

func TestMiddlewarePreflightShortCircuit(t *testing.T) {
	t.Parallel()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	handler := cors.New().Middleware(next)

	r := httptest.NewRequest(http.MethodOptions, "/resource", nil)
	r.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	require.False(t, called, "preflight must not reach the next handler")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "0", w.Header().Get("Content-Length"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMiddlewarePassThrough(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	handler := cors.New().Middleware(next)

	r := httptest.NewRequest(http.MethodGet, "/resource", nil)
	r.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMiddlewarePreflightContinue(t *testing.T) {
	t.Parallel()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	handler := cors.New(cors.WithPreflightContinue(true)).Middleware(next)

	r := httptest.NewRequest(http.MethodOptions, "/resource", nil)
	r.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	require.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMiddlewareOptionsWithoutOriginPassesThrough(t *testing.T) {
	t.Parallel()

	called := false
	handler := cors.New().Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodOptions, "/resource", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	require.True(t, called, "capability-query OPTIONS must reach the handler")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "GET, POST", w.Header().Get("Allow"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMiddlewareNonCORSRequestUntouched(t *testing.T) {
	t.Parallel()

	handler := cors.New().Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/resource", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
