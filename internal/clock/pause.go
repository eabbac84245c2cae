// Package clock paces loops that must stay responsive to cancellation.
package clock

import (
	"context"
	"time"
)

// Pause blocks for d or until ctx is done, returning the context's cause in
// the latter case. A non-positive d only reports whether ctx is already done.
func Pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return context.Cause(ctx)
	case <-timer.C:
		return nil
	}
}
