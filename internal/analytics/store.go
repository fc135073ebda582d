package analytics

import "context"

// Store persists raw lifecycle events. Events are timestamped append-only
// logs; nothing is aggregated here.
type Store interface {
	SaveURLCreated(ctx context.Context, event *URLCreatedEvent) error
	SaveURLClicked(ctx context.Context, event *URLClickedEvent) error
	SaveURLDeleted(ctx context.Context, event *URLDeletedEvent) error
}
