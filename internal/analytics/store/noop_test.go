package store_test

import (
	"context"
	"testing"

	"github.com/coolurl/coolurl/internal/analytics"
	"github.com/coolurl/coolurl/internal/analytics/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewNoop(t *testing.T) {
	logger := zap.NewNop()
	noop := store.NewNoop(logger)

	assert.NotNil(t, noop)
}

func TestNoop_SaveURLCreated(t *testing.T) {
	logger := zap.NewNop()
	noop := store.NewNoop(logger)

	event := &analytics.URLCreatedEvent{
		Slug:      "ab3x9",
		URL:       "https://example.com",
		CreatedAt: 1700000000000,
	}

	err := noop.SaveURLCreated(context.Background(), event)

	require.NoError(t, err)
}

func TestNoop_SaveURLClicked(t *testing.T) {
	logger := zap.NewNop()
	noop := store.NewNoop(logger)

	event := &analytics.URLClickedEvent{
		Slug:      "ab3x9",
		ClickedAt: 1700000000000,
	}

	err := noop.SaveURLClicked(context.Background(), event)

	require.NoError(t, err)
}

func TestNoop_SaveURLDeleted(t *testing.T) {
	logger := zap.NewNop()
	noop := store.NewNoop(logger)

	event := &analytics.URLDeletedEvent{
		Slug:      "ab3x9",
		DeletedAt: 1700000000000,
	}

	err := noop.SaveURLDeleted(context.Background(), event)

	require.NoError(t, err)
}
