package shortener

import "context"

// Repository defines the storage operations for short URL records.
//
// The append and delete operations are filtered updates: they match the record
// server-side (slug, optionally key, and the live sentinel) and apply the log
// append in the same statement, so concurrent requests for the same slug
// cannot lose entries. All of them return ErrNotFound when no live record
// matched the filter.
type Repository interface {
	// Insert persists a new record. Returns ErrDuplicate if the slug or key
	// is already taken.
	Insert(ctx context.Context, record *ShortURL) error

	// FindBySlug returns the live record for slug, or ErrNotFound.
	FindBySlug(ctx context.Context, slug Slug) (*ShortURL, error)

	// SlugOrKeyExists reports whether any record's slug or key collides with
	// either candidate. Deleted records still count: uniqueness is global.
	SlugOrKeyExists(ctx context.Context, slug Slug, key Key) (bool, error)

	// AppendClick appends a click entry to the live record for slug.
	AppendClick(ctx context.Context, slug Slug, entry LogEntry) error

	// AppendAccess appends an access entry to the live record matching both
	// slug and key.
	AppendAccess(ctx context.Context, slug Slug, key Key, entry LogEntry) error

	// SoftDelete appends an access entry and sets DeletedAt in a single
	// update on the live record matching both slug and key.
	SoftDelete(ctx context.Context, slug Slug, key Key, entry LogEntry, deletedAt int64) error

	// All returns every record, deleted ones included. Used by the dev-only
	// listing endpoint.
	All(ctx context.Context) ([]*ShortURL, error)
}
