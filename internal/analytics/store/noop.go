package store

import (
	"context"

	"github.com/coolurl/coolurl/internal/analytics"
	"go.uber.org/zap"
)

// Noop is a no-op implementation of analytics.Store that logs events.
type Noop struct {
	logger *zap.Logger
}

// NewNoop creates a new no-op analytics store.
func NewNoop(logger *zap.Logger) *Noop {
	return &Noop{logger: logger}
}

func (n *Noop) SaveURLCreated(_ context.Context, event *analytics.URLCreatedEvent) error {
	n.logger.Info("url created event received",
		zap.String("slug", event.Slug),
		zap.String("url", event.URL),
		zap.Int64("createdAt", event.CreatedAt),
	)

	return nil
}

func (n *Noop) SaveURLClicked(_ context.Context, event *analytics.URLClickedEvent) error {
	n.logger.Info("url clicked event received",
		zap.String("slug", event.Slug),
		zap.Int64("clickedAt", event.ClickedAt),
	)

	return nil
}

func (n *Noop) SaveURLDeleted(_ context.Context, event *analytics.URLDeletedEvent) error {
	n.logger.Info("url deleted event received",
		zap.String("slug", event.Slug),
		zap.Int64("deletedAt", event.DeletedAt),
	)

	return nil
}
