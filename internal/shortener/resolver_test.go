package shortener_test

import (
	"context"
	"errors"
	"testing"

	"github.com/coolurl/coolurl/internal/shortener"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStore = errors.New("store error")

// collidingRepo reports collisions for the first n existence checks.
type collidingRepo struct {
	shortener.Repository

	collisions int
	checks     int
	existsErr  error
}

func (r *collidingRepo) SlugOrKeyExists(_ context.Context, _ shortener.Slug, _ shortener.Key) (bool, error) {
	if r.existsErr != nil {
		return false, r.existsErr
	}

	r.checks++

	return r.checks <= r.collisions, nil
}

func TestCollisionResolver(t *testing.T) {
	gen, err := shortener.NewGenerator()
	require.NoError(t, err)

	t.Run("returns first pair when nothing collides", func(t *testing.T) {
		repo := &collidingRepo{}
		resolver := shortener.NewCollisionResolver(gen, repo)

		slug, key, err := resolver.Resolve(context.Background())

		require.NoError(t, err)
		assert.True(t, shortener.ValidSlug(slug))
		assert.True(t, shortener.ValidKey(key))
		assert.Equal(t, 1, repo.checks, "one existence query per attempt")
	})

	t.Run("regenerates both until the pair is free", func(t *testing.T) {
		repo := &collidingRepo{collisions: 3}
		resolver := shortener.NewCollisionResolver(gen, repo)

		slug, key, err := resolver.Resolve(context.Background())

		require.NoError(t, err)
		assert.True(t, shortener.ValidSlug(slug))
		assert.True(t, shortener.ValidKey(key))
		assert.Equal(t, 4, repo.checks)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		repo := &collidingRepo{existsErr: errStore}
		resolver := shortener.NewCollisionResolver(gen, repo)

		_, _, err := resolver.Resolve(context.Background())

		assert.ErrorIs(t, err, errStore)
	})

	t.Run("aborts on cancelled context", func(t *testing.T) {
		repo := &collidingRepo{}
		resolver := shortener.NewCollisionResolver(gen, repo)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := resolver.Resolve(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
