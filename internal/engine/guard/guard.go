// Package guard serializes access to the shared target-data storage.
package guard

import (
	"context"
	"errors"
	"time"

	"go.trai.ch/fwtarget/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/semaphore"
)

// DefaultTimeout bounds lock acquisition when no positive timeout is given.
const DefaultTimeout = 60 * time.Second

// Guard grants exclusive access to one holder at a time.
// The zero value is not usable; call New.
type Guard struct {
	sem *semaphore.Weighted
}

// New creates an unlocked Guard.
func New() *Guard {
	return &Guard{sem: semaphore.NewWeighted(1)}
}

// Do runs body while holding the guard.
//
// If the guard cannot be acquired within timeout, Do fails with domain.ErrLockTimeout
// and body is not run. The guard is released on every exit path of body, panics included.
func Do[T any](ctx context.Context, g *Guard, timeout time.Duration, body func(context.Context) (T, error)) (T, error) {
	var zero T
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	acquireCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := g.sem.Acquire(acquireCtx, 1); err != nil {
		// A cancelled caller is not a timeout.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, zerr.Wrap(ctxErr, "waiting for exclusive access")
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return zero, zerr.With(zerr.Wrap(domain.ErrLockTimeout, timeout.String()), "timeout", timeout.String())
		}
		return zero, zerr.Wrap(err, "waiting for exclusive access")
	}
	defer g.sem.Release(1)

	return body(ctx)
}
