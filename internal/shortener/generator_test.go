package shortener_test

import (
	"testing"

	"github.com/coolurl/coolurl/internal/shortener"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator(t *testing.T) {
	gen, err := shortener.NewGenerator()
	require.NoError(t, err)

	t.Run("slugs match the slug syntax", func(t *testing.T) {
		for range 100 {
			slug := gen.Slug()

			assert.True(t, shortener.ValidSlug(slug), "generated slug %q should be valid", slug)
		}
	})

	t.Run("keys match the key syntax", func(t *testing.T) {
		for range 100 {
			key := gen.Key()

			assert.True(t, shortener.ValidKey(key), "generated key %q should be valid", key)
		}
	})

	t.Run("keys are pairwise distinct", func(t *testing.T) {
		seen := make(map[shortener.Key]struct{})

		for range 1000 {
			key := gen.Key()

			_, dup := seen[key]
			require.False(t, dup, "key %q generated twice", key)

			seen[key] = struct{}{}
		}
	})
}
