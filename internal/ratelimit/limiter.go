package ratelimit

import (
	"context"
	"errors"
	"time"
)

// ErrLimitExceeded is returned by Admit when the client's quota for the
// current window is spent.
var ErrLimitExceeded = errors.New("rate limit exceeded")

// Limiter decides whether a request from a hashed client identifier is
// admitted.
type Limiter interface {
	// Admit records the request and admits it, or returns ErrLimitExceeded.
	Admit(ctx context.Context, clientHash string) error
}

// SlidingWindowLimiter admits up to quota requests per client hash in a
// trailing window. Staleness is computed lazily on each admission check, so
// no background sweep is needed.
type SlidingWindowLimiter struct {
	store  Store
	quota  int
	window time.Duration
}

// NewSlidingWindowLimiter creates a limiter with the given quota and window.
func NewSlidingWindowLimiter(store Store, quota int, window time.Duration) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		store:  store,
		quota:  quota,
		window: window,
	}
}

// Admit fetches the client's entries, counts the ones still inside the
// window and inserts a new entry if the quota allows. Stale entries are
// evicted fire-and-forget: the admission decision never waits on them.
//
// Concurrent admissions for the same client can transiently overshoot the
// quota by the number of in-flight requests. That margin is accepted.
func (l *SlidingWindowLimiter) Admit(ctx context.Context, clientHash string) error {
	entries, err := l.store.Entries(ctx, clientHash)
	if err != nil {
		return err
	}

	now := time.Now()
	cutoff := now.Add(-l.window).UnixMilli()

	active := 0
	stale := false

	for _, entry := range entries {
		if entry.When <= cutoff {
			stale = true
		} else {
			active++
		}
	}

	if stale {
		go func(ctx context.Context) {
			_ = l.store.EvictBefore(ctx, clientHash, cutoff+1)
		}(context.WithoutCancel(ctx))
	}

	if active >= l.quota {
		return ErrLimitExceeded
	}

	return l.store.Insert(ctx, Entry{ClientHash: clientHash, When: now.UnixMilli()})
}
