package sse

import "errors"

var (
	// ErrStreamingUnsupported is returned by Upgrade when the response
	// writer cannot flush, e.g. behind a buffering middleware.
	ErrStreamingUnsupported = errors.New("sse: response writer does not support streaming")

	// ErrStreamClosed is returned when sending after the client
	// disconnected or the request was cancelled.
	ErrStreamClosed = errors.New("sse: stream closed")
)
