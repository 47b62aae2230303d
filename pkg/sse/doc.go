// Package sse writes server-sent event streams consumable by the browser
// EventSource API.
//
// Upgrade sets the streaming headers and hands back a Stream; the handler
// then pushes frames until the client goes away:
//
//	func events(w http.ResponseWriter, r *http.Request) {
//		stream, err := sse.Upgrade(w, r)
//		if err != nil {
//			http.Error(w, err.Error(), http.StatusInternalServerError)
//			return
//		}
//
//		for tick := range timer.Interval(r.Context(), time.Second) {
//			if err := stream.Send("time", tick.Format(time.RFC3339)); err != nil {
//				return
//			}
//		}
//	}
//
// Client disconnect is not an error condition for the stream as a whole —
// the request context ends and the handler returns. Only an explicit Send
// after disconnect reports ErrStreamClosed.
package sse
