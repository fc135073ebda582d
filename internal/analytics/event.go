package analytics

// Topics for URL lifecycle events.
const (
	TopicURLCreated = "url.created"
	TopicURLClicked = "url.clicked"
	TopicURLDeleted = "url.deleted"
)

// URLCreatedEvent is emitted when a URL is shortened. It carries the public
// fields only; the management key never leaves the create response.
type URLCreatedEvent struct {
	Slug      string `json:"slug"`
	URL       string `json:"url"`
	CreatedAt int64  `json:"createdAt"`
}

// URLClickedEvent is emitted when a slug is resolved through the click path.
type URLClickedEvent struct {
	Slug      string `json:"slug"`
	ClickedAt int64  `json:"clickedAt"`
}

// URLDeletedEvent is emitted when a slug is soft deleted.
type URLDeletedEvent struct {
	Slug      string `json:"slug"`
	DeletedAt int64  `json:"deletedAt"`
}
