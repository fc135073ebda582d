package handlers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/coolurl/coolurl/internal/shortener"
	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errMock = errors.New("mock error")

const testURL = "https://example.com"

// assertStatus asserts that err carries the given HTTP status.
func assertStatus(t *testing.T, err error, status int) {
	t.Helper()

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, status, statusErr.GetStatus())
}

// mockStore is a test double for shortener.Repository that can be configured
// to return errors.
type mockStore struct {
	insertErr       error
	findErr         error
	existsErr       error
	appendClickErr  error
	appendAccessErr error
	softDeleteErr   error
	allErr          error
	record          *shortener.ShortURL
}

func (m *mockStore) Insert(_ context.Context, record *shortener.ShortURL) error {
	if m.insertErr != nil {
		return m.insertErr
	}

	m.record = record

	return nil
}

func (m *mockStore) FindBySlug(_ context.Context, _ shortener.Slug) (*shortener.ShortURL, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}

	return m.record, nil
}

func (m *mockStore) SlugOrKeyExists(_ context.Context, _ shortener.Slug, _ shortener.Key) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}

	return false, nil
}

func (m *mockStore) AppendClick(_ context.Context, _ shortener.Slug, _ shortener.LogEntry) error {
	return m.appendClickErr
}

func (m *mockStore) AppendAccess(_ context.Context, _ shortener.Slug, _ shortener.Key, _ shortener.LogEntry) error {
	return m.appendAccessErr
}

func (m *mockStore) SoftDelete(_ context.Context, _ shortener.Slug, _ shortener.Key, _ shortener.LogEntry, _ int64) error {
	return m.softDeleteErr
}

func (m *mockStore) All(_ context.Context) ([]*shortener.ShortURL, error) {
	if m.allErr != nil {
		return nil, m.allErr
	}

	if m.record == nil {
		return nil, nil
	}

	return []*shortener.ShortURL{m.record}, nil
}
