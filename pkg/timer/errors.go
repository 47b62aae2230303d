package timer

import (
	"context"
	"fmt"
	"time"
)

// TimeoutError reports that an operation exceeded its time bound. It is a
// distinct type so callers can tell "the work was too slow" from "the work
// failed" with errors.As.
type TimeoutError struct {
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timer: operation timed out after %s", e.Limit)
}

// Is makes the error match context.DeadlineExceeded, so code that already
// checks for deadline errors keeps working.
func (e *TimeoutError) Is(target error) bool {
	return target == context.DeadlineExceeded
}

// Timeout reports true, satisfying the net.Error timeout convention.
func (e *TimeoutError) Timeout() bool { return true }
