package ratelimit

import "context"

// Entry is one admitted request for a client hash. When is epoch milliseconds.
type Entry struct {
	ClientHash string
	When       int64
}

// Store defines the interface for rate limit entry storage. All shared
// limiter state lives here, never in process memory shared across handlers.
type Store interface {
	// Entries returns every entry recorded for clientHash, stale ones included.
	Entries(ctx context.Context, clientHash string) ([]Entry, error)

	// Insert records a newly admitted request.
	Insert(ctx context.Context, entry Entry) error

	// EvictBefore deletes entries for clientHash with When < cutoff.
	EvictBefore(ctx context.Context, clientHash string, cutoff int64) error
}
