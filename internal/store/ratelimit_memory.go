package store

import (
	"context"
	"sync"

	"github.com/coolurl/coolurl/internal/ratelimit"
)

// RateLimitMemoryStore is an in-memory implementation of ratelimit.Store.
type RateLimitMemoryStore struct {
	mu      sync.Mutex
	entries map[string][]ratelimit.Entry
}

// NewRateLimitMemoryStore creates a new in-memory rate limit entry store.
func NewRateLimitMemoryStore() *RateLimitMemoryStore {
	return &RateLimitMemoryStore{
		entries: make(map[string][]ratelimit.Entry),
	}
}

func (s *RateLimitMemoryStore) Entries(_ context.Context, clientHash string) ([]ratelimit.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]ratelimit.Entry(nil), s.entries[clientHash]...), nil
}

func (s *RateLimitMemoryStore) Insert(_ context.Context, entry ratelimit.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entry.ClientHash] = append(s.entries[entry.ClientHash], entry)

	return nil
}

func (s *RateLimitMemoryStore) EvictBefore(_ context.Context, clientHash string, cutoff int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[clientHash][:0]
	for _, entry := range s.entries[clientHash] {
		if entry.When >= cutoff {
			kept = append(kept, entry)
		}
	}

	if len(kept) == 0 {
		delete(s.entries, clientHash)
	} else {
		s.entries[clientHash] = kept
	}

	return nil
}
