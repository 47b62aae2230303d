package timer

import (
	"context"
	"iter"
	"time"
)

// Timeout races fn against a timer of the given limit.
//
// If fn settles first its result and error propagate unchanged and the timer
// is stopped. If the timer wins, Timeout returns a *TimeoutError carrying
// the limit and cancels the context passed to fn, so the operation can
// release whatever it holds (close a connection, abort a request). The
// cancellation is cooperative: fn keeps its goroutine until it observes the
// context, matching the usual context contract.
//
// Exactly one outcome is returned; neither timer nor result channel leaks.
func Timeout[T any](ctx context.Context, limit time.Duration, fn func(context.Context) (T, error)) (T, error) {
	fnCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		value T
		err   error
	}

	// Buffered so a late fn completion never blocks its goroutine.
	done := make(chan outcome, 1)
	go func() {
		value, err := fn(fnCtx)
		done <- outcome{value: value, err: err}
	}()

	t := time.NewTimer(limit)
	defer t.Stop()

	select {
	case out := <-done:
		return out.value, out.err
	case <-t.C:
		var zero T
		return zero, &TimeoutError{Limit: limit}
	}
}

// Wait sleeps for d or until the context is done, whichever comes first.
// It returns nil after a full wait and the context's error on abort.
func Wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Interval returns a lazy, infinite sequence of ticks spaced d apart. The
// first tick arrives no earlier than d after iteration starts. The sequence
// ends without error the moment ctx is done, whether that happens between
// ticks or while waiting for one; once the context is cancelled, ranging
// again yields nothing.
//
//	for tick := range timer.Interval(ctx, time.Second) {
//		refresh(tick)
//	}
func Interval(ctx context.Context, d time.Duration) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		ticker := time.NewTicker(d)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case tick := <-ticker.C:
				if !yield(tick) {
					return
				}
			}
		}
	}
}
