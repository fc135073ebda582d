package shortener

import (
	"context"
	"time"
)

// PublicView is the subset of a record exposed on unauthenticated paths.
type PublicView struct {
	Slug Slug
	URL  string
}

// Service is the shortened-URL registry. It owns the record lifecycle:
// creation, lookup, click and access logging, and logical deletion.
type Service struct {
	store    Repository
	resolver *CollisionResolver
}

// NewService creates a registry over the given repository and resolver.
func NewService(store Repository, resolver *CollisionResolver) *Service {
	return &Service{
		store:    store,
		resolver: resolver,
	}
}

// authorize is the access-control predicate: exact equality between the
// record's stored key and the caller-supplied key.
func authorize(record *ShortURL, supplied Key) bool {
	return record.Key == supplied
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// Create validates url, allocates a unique (slug, key) pair and persists a
// new live record. The key is returned exactly once, here; it is not
// recoverable afterwards.
func (s *Service) Create(ctx context.Context, url string) (Slug, Key, error) {
	if !ValidURL(url) {
		return "", "", ErrInvalidURL
	}

	slug, key, err := s.resolver.Resolve(ctx)
	if err != nil {
		return "", "", err
	}

	record := &ShortURL{
		Slug:      slug,
		URL:       url,
		Key:       key,
		Clicks:    []LogEntry{},
		Accesses:  []LogEntry{},
		CreatedAt: nowMillis(),
		DeletedAt: DeletedAtLive,
	}

	if err := s.store.Insert(ctx, record); err != nil {
		return "", "", err
	}

	return slug, key, nil
}

// ResolvePublic returns the public view of the live record for slug.
func (s *Service) ResolvePublic(ctx context.Context, slug Slug) (*PublicView, error) {
	if !ValidSlug(slug) {
		return nil, ErrInvalidSlug
	}

	record, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return &PublicView{Slug: record.Slug, URL: record.URL}, nil
}

// ResolvePrivileged returns the full record for slug, key included logs,
// after validating the supplied key against the stored one. On success an
// access entry with a redacted IP is appended and persisted.
func (s *Service) ResolvePrivileged(ctx context.Context, slug Slug, key Key) (*ShortURL, error) {
	record, err := s.authorized(ctx, slug, key)
	if err != nil {
		return nil, err
	}

	entry := LogEntry{IP: "", Time: nowMillis()}
	if err := s.store.AppendAccess(ctx, slug, key, entry); err != nil {
		return nil, err
	}

	record.Accesses = append(record.Accesses, entry)

	return record, nil
}

// RecordClick appends a click entry to the live record for slug and returns
// its public view. The click path is unauthenticated.
func (s *Service) RecordClick(ctx context.Context, slug Slug) (*PublicView, error) {
	if !ValidSlug(slug) {
		return nil, ErrInvalidSlug
	}

	record, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	entry := LogEntry{IP: "", Time: nowMillis()}
	if err := s.store.AppendClick(ctx, slug, entry); err != nil {
		return nil, err
	}

	return &PublicView{Slug: record.Slug, URL: record.URL}, nil
}

// SoftDelete logically deletes the record for slug after key validation. The
// access entry and the DeletedAt timestamp are applied as one update. Deleted
// records are invisible, so repeating the call fails with ErrNotFound.
func (s *Service) SoftDelete(ctx context.Context, slug Slug, key Key) error {
	if _, err := s.authorized(ctx, slug, key); err != nil {
		return err
	}

	now := nowMillis()

	return s.store.SoftDelete(ctx, slug, key, LogEntry{IP: "", Time: now}, now)
}

// List returns the public view of every record, for the dev-only listing.
func (s *Service) List(ctx context.Context) ([]*PublicView, error) {
	records, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*PublicView, 0, len(records))
	for _, record := range records {
		views = append(views, &PublicView{Slug: record.Slug, URL: record.URL})
	}

	return views, nil
}

// authorized validates slug/key syntax, loads the live record and checks the
// key. The pre-read distinguishes ErrNotFound from ErrAccessDenied; the
// mutation that follows re-matches slug and key server-side.
func (s *Service) authorized(ctx context.Context, slug Slug, key Key) (*ShortURL, error) {
	if !ValidSlug(slug) {
		return nil, ErrInvalidSlug
	}

	if !ValidKey(key) {
		return nil, ErrInvalidKey
	}

	record, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if !authorize(record, key) {
		return nil, ErrAccessDenied
	}

	return record, nil
}
