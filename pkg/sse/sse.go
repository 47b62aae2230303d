package sse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Stream is a server-sent event connection bound to one request. It is safe
// for concurrent sends; frames are written whole.
type Stream struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	flusher http.Flusher
	ctx     context.Context
}

// Upgrade switches the response to a text/event-stream and returns a Stream
// bound to the request context. The headers disable caching and proxy
// buffering so events reach the client as they are sent.
func Upgrade(w http.ResponseWriter, r *http.Request) (*Stream, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, ErrStreamingUnsupported
	}

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")

	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &Stream{w: w, flusher: flusher, ctx: r.Context()}, nil
}

// Done is closed when the client disconnects or the request is cancelled.
// Typical handlers select on it in their event loop.
func (s *Stream) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Send writes one event frame and flushes it. Multi-line data is split into
// consecutive data: lines per the SSE wire format. An empty event name sends
// an unnamed ("message") event. Sending after the client disconnected
// returns ErrStreamClosed.
func (s *Stream) Send(event, data string) error {
	select {
	case <-s.ctx.Done():
		return ErrStreamClosed
	default:
	}

	var frame strings.Builder
	if event != "" {
		frame.WriteString("event: ")
		frame.WriteString(event)
		frame.WriteByte('\n')
	}
	for line := range strings.SplitSeq(data, "\n") {
		frame.WriteString("data: ")
		frame.WriteString(line)
		frame.WriteByte('\n')
	}
	frame.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := io.WriteString(s.w, frame.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrStreamClosed, err)
	}
	s.flusher.Flush()
	return nil
}

// SendJSON marshals v and sends it as a single event frame.
func (s *Stream) SendJSON(event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Send(event, string(data))
}

// Comment writes an SSE comment frame. Comments are invisible to
// EventSource clients and serve as keep-alive traffic through proxies that
// drop idle connections.
func (s *Stream) Comment(text string) error {
	select {
	case <-s.ctx.Done():
		return ErrStreamClosed
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintf(s.w, ": %s\n\n", text); err != nil {
		return fmt.Errorf("%w: %v", ErrStreamClosed, err)
	}
	s.flusher.Flush()
	return nil
}
