package store_test

import (
	"context"
	"testing"

	"github.com/coolurl/coolurl/internal/shortener"
	"github.com/coolurl/coolurl/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(slug, key string) *shortener.ShortURL {
	return &shortener.ShortURL{
		Slug:      shortener.Slug(slug),
		URL:       "https://example.com",
		Key:       shortener.Key(key),
		Clicks:    []shortener.LogEntry{},
		Accesses:  []shortener.LogEntry{},
		CreatedAt: 1700000000000,
		DeletedAt: shortener.DeletedAtLive,
	}
}

func TestMemoryStore_Insert(t *testing.T) {
	t.Run("inserts a record", func(t *testing.T) {
		s := store.NewMemoryStore()

		err := s.Insert(context.Background(), newRecord("ab3x9", "q7c2m0p4kfh8t1wzr5ye"))

		require.NoError(t, err)
	})

	t.Run("rejects duplicate slug", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Insert(context.Background(), newRecord("ab3x9", "q7c2m0p4kfh8t1wzr5ye"))

		err := s.Insert(context.Background(), newRecord("ab3x9", "aaaaaaaaaaaaaaaaaaaa"))

		assert.ErrorIs(t, err, shortener.ErrDuplicate)
	})

	t.Run("rejects duplicate key", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Insert(context.Background(), newRecord("ab3x9", "q7c2m0p4kfh8t1wzr5ye"))

		err := s.Insert(context.Background(), newRecord("zzzzz", "q7c2m0p4kfh8t1wzr5ye"))

		assert.ErrorIs(t, err, shortener.ErrDuplicate)
	})
}

func TestMemoryStore_FindBySlug(t *testing.T) {
	t.Run("returns live record", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Insert(context.Background(), newRecord("ab3x9", "q7c2m0p4kfh8t1wzr5ye"))

		record, err := s.FindBySlug(context.Background(), "ab3x9")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", record.URL)
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		s := store.NewMemoryStore()

		_, err := s.FindBySlug(context.Background(), "zzzzz")

		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("deleted record is invisible", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Insert(context.Background(), newRecord("ab3x9", "q7c2m0p4kfh8t1wzr5ye"))
		_ = s.SoftDelete(context.Background(), "ab3x9", "q7c2m0p4kfh8t1wzr5ye",
			shortener.LogEntry{Time: 1}, 1)

		_, err := s.FindBySlug(context.Background(), "ab3x9")

		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})

	t.Run("returned record is a copy", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Insert(context.Background(), newRecord("ab3x9", "q7c2m0p4kfh8t1wzr5ye"))

		record, err := s.FindBySlug(context.Background(), "ab3x9")
		require.NoError(t, err)

		record.URL = "https://tampered.example.com"

		fresh, err := s.FindBySlug(context.Background(), "ab3x9")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", fresh.URL)
	})
}

func TestMemoryStore_SlugOrKeyExists(t *testing.T) {
	s := store.NewMemoryStore()
	_ = s.Insert(context.Background(), newRecord("ab3x9", "q7c2m0p4kfh8t1wzr5ye"))

	t.Run("matches existing slug", func(t *testing.T) {
		exists, err := s.SlugOrKeyExists(context.Background(), "ab3x9", "aaaaaaaaaaaaaaaaaaaa")

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("matches existing key", func(t *testing.T) {
		exists, err := s.SlugOrKeyExists(context.Background(), "zzzzz", "q7c2m0p4kfh8t1wzr5ye")

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("free pair does not exist", func(t *testing.T) {
		exists, err := s.SlugOrKeyExists(context.Background(), "zzzzz", "aaaaaaaaaaaaaaaaaaaa")

		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestMemoryStore_AppendClick(t *testing.T) {
	t.Run("appends to live record", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Insert(context.Background(), newRecord("ab3x9", "q7c2m0p4kfh8t1wzr5ye"))

		err := s.AppendClick(context.Background(), "ab3x9", shortener.LogEntry{Time: 1})
		require.NoError(t, err)
		err = s.AppendClick(context.Background(), "ab3x9", shortener.LogEntry{Time: 2})
		require.NoError(t, err)

		record, err := s.FindBySlug(context.Background(), "ab3x9")
		require.NoError(t, err)
		assert.Equal(t, []shortener.LogEntry{{Time: 1}, {Time: 2}}, record.Clicks)
	})

	t.Run("deleted record is not found", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Insert(context.Background(), newRecord("ab3x9", "q7c2m0p4kfh8t1wzr5ye"))
		_ = s.SoftDelete(context.Background(), "ab3x9", "q7c2m0p4kfh8t1wzr5ye",
			shortener.LogEntry{Time: 1}, 1)

		err := s.AppendClick(context.Background(), "ab3x9", shortener.LogEntry{Time: 2})

		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})
}

func TestMemoryStore_AppendAccess(t *testing.T) {
	t.Run("filters on key as well as slug", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Insert(context.Background(), newRecord("ab3x9", "q7c2m0p4kfh8t1wzr5ye"))

		err := s.AppendAccess(context.Background(), "ab3x9", "aaaaaaaaaaaaaaaaaaaa",
			shortener.LogEntry{Time: 1})

		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})
}

func TestMemoryStore_SoftDelete(t *testing.T) {
	t.Run("appends the access entry and marks deleted in one step", func(t *testing.T) {
		s := store.NewMemoryStore()
		record := newRecord("ab3x9", "q7c2m0p4kfh8t1wzr5ye")
		_ = s.Insert(context.Background(), record)

		err := s.SoftDelete(context.Background(), "ab3x9", "q7c2m0p4kfh8t1wzr5ye",
			shortener.LogEntry{Time: 42}, 42)
		require.NoError(t, err)

		all, err := s.All(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, int64(42), all[0].DeletedAt)
		assert.Equal(t, []shortener.LogEntry{{Time: 42}}, all[0].Accesses)
	})

	t.Run("second delete is not found", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Insert(context.Background(), newRecord("ab3x9", "q7c2m0p4kfh8t1wzr5ye"))
		_ = s.SoftDelete(context.Background(), "ab3x9", "q7c2m0p4kfh8t1wzr5ye",
			shortener.LogEntry{Time: 1}, 1)

		err := s.SoftDelete(context.Background(), "ab3x9", "q7c2m0p4kfh8t1wzr5ye",
			shortener.LogEntry{Time: 2}, 2)

		assert.ErrorIs(t, err, shortener.ErrNotFound)
	})
}
