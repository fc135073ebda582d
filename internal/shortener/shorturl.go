package shortener

import "errors"

var (
	// ErrInvalidURL is returned when a URL fails the full-URL syntax check.
	ErrInvalidURL = errors.New("invalid url")
	// ErrInvalidSlug is returned when a slug fails the syntax check.
	ErrInvalidSlug = errors.New("invalid slug")
	// ErrInvalidKey is returned when a key fails the syntax check.
	ErrInvalidKey = errors.New("invalid key")
	// ErrNotFound is returned when no live record matches a slug.
	ErrNotFound = errors.New("slug not found")
	// ErrAccessDenied is returned when the supplied key does not match the record.
	ErrAccessDenied = errors.New("access denied")
	// ErrDuplicate is returned when an insert hits a residual slug/key collision.
	ErrDuplicate = errors.New("duplicate slug or key")
)

// Slug is the short public identifier for a URL.
type Slug string

// Key is the secret capability token for managing a slug.
type Key string

// LogEntry is a single timestamped click or access event.
// The IP may be empty when the entry is recorded redacted.
type LogEntry struct {
	IP   string `json:"ip"`
	Time int64  `json:"time"`
}

// DeletedAtLive is the DeletedAt sentinel for records that have not been
// logically deleted.
const DeletedAtLive int64 = -1

// ShortURL is a shortened URL record. Timestamps are epoch milliseconds.
type ShortURL struct {
	Slug      Slug
	URL       string
	Key       Key
	Clicks    []LogEntry
	Accesses  []LogEntry
	CreatedAt int64
	DeletedAt int64
}

// Live reports whether the record has not been logically deleted.
func (s *ShortURL) Live() bool {
	return s.DeletedAt == DeletedAtLive
}
