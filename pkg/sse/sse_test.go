package sse_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webkit/pkg/sse"
)

// plainWriter hides httptest.ResponseRecorder's Flush method.
type plainWriter struct {
	h http.Header
}

func (p *plainWriter) Header() http.Header         { return p.h }
func (p *plainWriter) Write(b []byte) (int, error) { return len(b), nil }
func (p *plainWriter) WriteHeader(int)             {}

func TestUpgrade(t *testing.T) {
	t.Parallel()

	t.Run("sets streaming headers", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/events", nil)

		stream, err := sse.Upgrade(w, r)
		require.NoError(t, err)
		require.NotNil(t, stream)

		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects non-flushing writer", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/events", nil)
		_, err := sse.Upgrade(&plainWriter{h: http.Header{}}, r)
		require.ErrorIs(t, err, sse.ErrStreamingUnsupported)
	})
}

func TestSend(t *testing.T) {
	t.Parallel()

	t.Run("named event frame", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/events", nil)

		stream, err := sse.Upgrade(w, r)
		require.NoError(t, err)

		require.NoError(t, stream.Send("update", "hello"))
		assert.Equal(t, "event: update\ndata: hello\n\n", w.Body.String())
	})

	t.Run("unnamed event omits event line", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/events", nil)

		stream, err := sse.Upgrade(w, r)
		require.NoError(t, err)

		require.NoError(t, stream.Send("", "ping"))
		assert.Equal(t, "data: ping\n\n", w.Body.String())
	})

	t.Run("multiline data split into data lines", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/events", nil)

		stream, err := sse.Upgrade(w, r)
		require.NoError(t, err)

		require.NoError(t, stream.Send("log", "line one\nline two"))
		assert.Equal(t, "event: log\ndata: line one\ndata: line two\n\n", w.Body.String())
	})

	t.Run("json payload", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/events", nil)

		stream, err := sse.Upgrade(w, r)
		require.NoError(t, err)

		require.NoError(t, stream.SendJSON("state", map[string]int{"count": 3}))
		assert.Equal(t, "event: state\ndata: {\"count\":3}\n\n", w.Body.String())
	})

	t.Run("send after disconnect errors", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		ctx, cancel := context.WithCancel(context.Background())
		r := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)

		stream, err := sse.Upgrade(w, r)
		require.NoError(t, err)

		cancel()

		select {
		case <-stream.Done():
		default:
			t.Fatal("Done must be closed after cancellation")
		}

		require.ErrorIs(t, stream.Send("update", "too late"), sse.ErrStreamClosed)
	})
}

func TestComment(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/events", nil)

	stream, err := sse.Upgrade(w, r)
	require.NoError(t, err)

	require.NoError(t, stream.Comment("keep-alive"))
	assert.Equal(t, ": keep-alive\n\n", w.Body.String())
}
