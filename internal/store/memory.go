package store

import (
	"context"
	"sync"

	"github.com/coolurl/coolurl/internal/shortener"
)

// MemoryStore is an in-memory implementation of shortener.Repository, used
// in tests and single-process development.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[shortener.Slug]*shortener.ShortURL
	keys    map[shortener.Key]shortener.Slug
}

// NewMemoryStore creates a new in-memory record store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[shortener.Slug]*shortener.ShortURL),
		keys:    make(map[shortener.Key]shortener.Slug),
	}
}

func (m *MemoryStore) Insert(_ context.Context, record *shortener.ShortURL) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.Slug]; ok {
		return shortener.ErrDuplicate
	}

	if _, ok := m.keys[record.Key]; ok {
		return shortener.ErrDuplicate
	}

	m.records[record.Slug] = clone(record)
	m.keys[record.Key] = record.Slug

	return nil
}

func (m *MemoryStore) FindBySlug(_ context.Context, slug shortener.Slug) (*shortener.ShortURL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[slug]
	if !ok || !record.Live() {
		return nil, shortener.ErrNotFound
	}

	return clone(record), nil
}

func (m *MemoryStore) SlugOrKeyExists(_ context.Context, slug shortener.Slug, key shortener.Key) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.records[slug]; ok {
		return true, nil
	}

	if _, ok := m.keys[key]; ok {
		return true, nil
	}

	// Cross-matches cannot happen at the current lengths, but the contract
	// checks either candidate against either field.
	if _, ok := m.records[shortener.Slug(key)]; ok {
		return true, nil
	}

	if _, ok := m.keys[shortener.Key(slug)]; ok {
		return true, nil
	}

	return false, nil
}

func (m *MemoryStore) AppendClick(_ context.Context, slug shortener.Slug, entry shortener.LogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[slug]
	if !ok || !record.Live() {
		return shortener.ErrNotFound
	}

	record.Clicks = append(record.Clicks, entry)

	return nil
}

func (m *MemoryStore) AppendAccess(_ context.Context, slug shortener.Slug, key shortener.Key, entry shortener.LogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[slug]
	if !ok || !record.Live() || record.Key != key {
		return shortener.ErrNotFound
	}

	record.Accesses = append(record.Accesses, entry)

	return nil
}

func (m *MemoryStore) SoftDelete(_ context.Context, slug shortener.Slug, key shortener.Key, entry shortener.LogEntry, deletedAt int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.records[slug]
	if !ok || !record.Live() || record.Key != key {
		return shortener.ErrNotFound
	}

	record.Accesses = append(record.Accesses, entry)
	record.DeletedAt = deletedAt

	return nil
}

func (m *MemoryStore) All(_ context.Context) ([]*shortener.ShortURL, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*shortener.ShortURL, 0, len(m.records))
	for _, record := range m.records {
		records = append(records, clone(record))
	}

	return records, nil
}

func clone(record *shortener.ShortURL) *shortener.ShortURL {
	c := *record
	c.Clicks = append([]shortener.LogEntry(nil), record.Clicks...)
	c.Accesses = append([]shortener.LogEntry(nil), record.Accesses...)

	return &c
}
