package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/coolurl/coolurl/internal/shortener"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// PostgresStore is a PostgreSQL implementation of shortener.Repository.
//
// Expected schema:
//
//	CREATE TABLE short_urls (
//	    slug       text   PRIMARY KEY,
//	    url        text   NOT NULL,
//	    key        text   NOT NULL UNIQUE,
//	    clicks     jsonb  NOT NULL DEFAULT '[]',
//	    accesses   jsonb  NOT NULL DEFAULT '[]',
//	    created_at bigint NOT NULL,
//	    deleted_at bigint NOT NULL DEFAULT -1
//	);
//
// Log appends use server-side jsonb concatenation so concurrent updates on
// the same slug never lose entries.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgreSQL-backed record store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (p *PostgresStore) Insert(ctx context.Context, record *shortener.ShortURL) error {
	query := `
		INSERT INTO short_urls (slug, url, key, clicks, accesses, created_at, deleted_at)
		VALUES ($1, $2, $3, '[]', '[]', $4, $5)
	`

	_, err := p.pool.Exec(ctx, query,
		string(record.Slug),
		record.URL,
		string(record.Key),
		record.CreatedAt,
		record.DeletedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return shortener.ErrDuplicate
		}

		return err
	}

	return nil
}

func (p *PostgresStore) FindBySlug(ctx context.Context, slug shortener.Slug) (*shortener.ShortURL, error) {
	query := `
		SELECT slug, url, key, clicks, accesses, created_at, deleted_at
		FROM short_urls
		WHERE slug = $1 AND deleted_at = -1
	`

	var (
		record   shortener.ShortURL
		clicks   []byte
		accesses []byte
	)

	err := p.pool.QueryRow(ctx, query, string(slug)).Scan(
		&record.Slug,
		&record.URL,
		&record.Key,
		&clicks,
		&accesses,
		&record.CreatedAt,
		&record.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shortener.ErrNotFound
		}

		return nil, err
	}

	if err := json.Unmarshal(clicks, &record.Clicks); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(accesses, &record.Accesses); err != nil {
		return nil, err
	}

	return &record, nil
}

func (p *PostgresStore) SlugOrKeyExists(ctx context.Context, slug shortener.Slug, key shortener.Key) (bool, error) {
	// Deleted records are included on purpose: slugs and keys are unique for
	// the lifetime of the system, not just among live records.
	query := `
		SELECT EXISTS (
			SELECT 1 FROM short_urls
			WHERE slug IN ($1, $2) OR key IN ($1, $2)
		)
	`

	var exists bool
	if err := p.pool.QueryRow(ctx, query, string(slug), string(key)).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (p *PostgresStore) AppendClick(ctx context.Context, slug shortener.Slug, entry shortener.LogEntry) error {
	query := `
		UPDATE short_urls
		SET clicks = clicks || $2::jsonb
		WHERE slug = $1 AND deleted_at = -1
	`

	return p.appendOne(ctx, query, entry, string(slug))
}

func (p *PostgresStore) AppendAccess(ctx context.Context, slug shortener.Slug, key shortener.Key, entry shortener.LogEntry) error {
	query := `
		UPDATE short_urls
		SET accesses = accesses || $3::jsonb
		WHERE slug = $1 AND key = $2 AND deleted_at = -1
	`

	return p.appendOne(ctx, query, entry, string(slug), string(key))
}

func (p *PostgresStore) SoftDelete(ctx context.Context, slug shortener.Slug, key shortener.Key, entry shortener.LogEntry, deletedAt int64) error {
	payload, err := json.Marshal([]shortener.LogEntry{entry})
	if err != nil {
		return err
	}

	query := `
		UPDATE short_urls
		SET accesses = accesses || $3::jsonb, deleted_at = $4
		WHERE slug = $1 AND key = $2 AND deleted_at = -1
	`

	tag, err := p.pool.Exec(ctx, query, string(slug), string(key), payload, deletedAt)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return shortener.ErrNotFound
	}

	return nil
}

func (p *PostgresStore) All(ctx context.Context) ([]*shortener.ShortURL, error) {
	query := `
		SELECT slug, url FROM short_urls ORDER BY created_at
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*shortener.ShortURL

	for rows.Next() {
		var record shortener.ShortURL
		if err := rows.Scan(&record.Slug, &record.URL); err != nil {
			return nil, err
		}

		records = append(records, &record)
	}

	return records, rows.Err()
}

// appendOne runs a filtered log-append update; args are the filter values and
// the marshalled entry is appended as the last argument.
func (p *PostgresStore) appendOne(ctx context.Context, query string, entry shortener.LogEntry, args ...any) error {
	payload, err := json.Marshal([]shortener.LogEntry{entry})
	if err != nil {
		return err
	}

	args = append(args, payload)

	tag, err := p.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return shortener.ErrNotFound
	}

	return nil
}
