package handlers

import "github.com/coolurl/coolurl/internal/shortener"

// CreateURLRequest is the request body for shortening a URL.
type CreateURLRequest struct {
	Body struct {
		URL string `doc:"The URL to shorten" example:"https://example.com/very/long/path" json:"url"`
	}
}

// CreateURLResponse returns the allocated slug and its management key. The
// key is shown exactly once, here; it cannot be recovered later.
type CreateURLResponse struct {
	Body struct {
		Slug string `doc:"The public slug"        example:"ab3x9"                json:"slug"`
		Key  string `doc:"The secret manage key"  example:"q7c2m0p4kfh8t1wzr5ye" json:"key"`
	}
}

// SlugRequest addresses a record by its slug.
type SlugRequest struct {
	Slug string `doc:"The public slug" example:"ab3x9" path:"slug"`
}

// PrivilegedRequest addresses a record by slug and supplies its key.
type PrivilegedRequest struct {
	Slug string `doc:"The public slug" example:"ab3x9" path:"slug"`
	Body struct {
		Key string `doc:"The secret manage key" example:"q7c2m0p4kfh8t1wzr5ye" json:"key"`
	}
}

// PublicURLResponse is the public view of a record.
type PublicURLResponse struct {
	Body struct {
		Slug string `doc:"The public slug"  example:"ab3x9"               json:"slug"`
		URL  string `doc:"The original URL" example:"https://example.com" json:"url"`
	}
}

// RecordResponse is the full record returned on privileged reads.
type RecordResponse struct {
	Body struct {
		Slug      string               `json:"slug"`
		URL       string               `json:"url"`
		Key       string               `json:"key"`
		Clicks    []shortener.LogEntry `json:"clicks"`
		Accesses  []shortener.LogEntry `json:"accesses"`
		CreatedAt int64                `json:"createdAt"`
		DeletedAt int64                `json:"deletedAt"`
	}
}

// StatusResponse is a plain acknowledgment payload.
type StatusResponse struct {
	Body struct {
		Message string `doc:"Status message" example:"OK" json:"message"`
	}
}

// URLListItem is one entry of the dev-only listing.
type URLListItem struct {
	Slug string `json:"slug"`
	URL  string `json:"url"`
}

// ListURLsResponse is the dev-only listing of all records.
type ListURLsResponse struct {
	Body []URLListItem
}
