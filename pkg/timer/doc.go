// Package timer attaches deadlines to arbitrary operations and provides
// abortable wait and interval primitives on top of context cancellation.
//
// Timeout races a function against a time bound and reports the loss as a
// typed *TimeoutError, distinguishable from the operation's own failure.
// When the bound is exceeded the operation's context is cancelled so it can
// free its resources; termination stays cooperative.
//
// Interval yields an infinite tick sequence consumable with range-over-func
// iteration; cancelling the context ends the sequence silently, because for
// a repeating timer cancellation is the normal way to stop, not an error.
//
//	result, err := timer.Timeout(ctx, 2*time.Second, func(ctx context.Context) (string, error) {
//		return fetchSlowThing(ctx)
//	})
//	var te *timer.TimeoutError
//	if errors.As(err, &te) {
//		// too slow, not broken
//	}
package timer
